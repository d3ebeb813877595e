package smash

import "time"

// Player is a row from the data service's players table. The lifetime
// counters are optional upstream; treat a nil counter as zero.
type Player struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	DisplayName   *string   `json:"display_name"`
	Elo           int       `json:"elo"`
	CreatedAt     time.Time `json:"created_at"`
	MainCharacter *string   `json:"main_character"`
	TotalWins     *int      `json:"total_wins"`
	TotalLosses   *int      `json:"total_losses"`
	TotalKOs      *int      `json:"total_kos"`
	TotalFalls    *int      `json:"total_falls"`
	TotalSDs      *int      `json:"total_sds"`
}

// ShownName prefers the display name over the account name.
func (p Player) ShownName() string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return p.Name
}

// Match is one played game together with its participant rows, as returned
// by the data service (newest first).
type Match struct {
	ID           int64         `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	Participants []Participant `json:"participants"`
}

// Participant is a player's record within one specific match.
type Participant struct {
	ID                int64  `json:"id"`
	PlayerID          int64  `json:"player"`
	PlayerName        string `json:"player_name"`
	PlayerDisplayName string `json:"player_display_name"`
	SmashCharacter    string `json:"smash_character"`
	IsCPU             bool   `json:"is_cpu"`
	TotalKOs          int    `json:"total_kos"`
	TotalFalls        int    `json:"total_falls"`
	TotalSDs          int    `json:"total_sds"`
	HasWon            bool   `json:"has_won"`
}

// ShownName prefers the display name over the account name.
func (p Participant) ShownName() string {
	if p.PlayerDisplayName != "" {
		return p.PlayerDisplayName
	}
	return p.PlayerName
}
