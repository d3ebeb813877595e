package main

import (
	"flag"
	"time"

	"github.com/charmbracelet/log"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/cache"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/database"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
)

// Seeds the local snapshot cache with a sample roster and match history so the
// server has something to show before the first successful fetch.
func main() {
	dbName := flag.String("db", "smash.db", "Path to the local SQLite database")
	migrationsDir := flag.String("migrations", "./migrations", "Path to the migrations directory")
	flag.Parse()

	db, teardown, err := database.InitDB(*dbName, "", "", *migrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := cache.New(db)

	players := samplePlayers()
	if err := store.SavePlayers(players); err != nil {
		log.Fatalf("Failed to seed players: %s", err)
	}
	matches := sampleMatches()
	if err := store.SaveMatches(matches); err != nil {
		log.Fatalf("Failed to seed matches: %s", err)
	}

	log.Info("Seeded snapshot cache", "players", len(players), "matches", len(matches))
}

func samplePlayers() []smash.Player {
	now := time.Now().UTC()
	return []smash.Player{
		newPlayer(1, "kai", "Kai", 1980, "Fox", 42, 10, 130, 55, 4, now.Add(-90*24*time.Hour)),
		newPlayer(2, "mira", "Mira", 1875, "Samus", 35, 15, 110, 62, 2, now.Add(-80*24*time.Hour)),
		newPlayer(3, "dex", "Dex", 1740, "Captain Falcon", 28, 20, 95, 70, 6, now.Add(-70*24*time.Hour)),
		newPlayer(4, "juno", "Juno", 1610, "Kirby", 22, 24, 78, 81, 3, now.Add(-60*24*time.Hour)),
		newPlayer(5, "rex", "Rex", 1495, "Donkey Kong", 18, 26, 64, 88, 7, now.Add(-50*24*time.Hour)),
		newPlayer(6, "ana", "Ana", 1370, "Pikachu", 12, 30, 51, 96, 5, now.Add(-40*24*time.Hour)),
		newPlayer(7, "theo", "Theo", 1245, "Link", 8, 33, 40, 104, 9, now.Add(-30*24*time.Hour)),
		newPlayer(8, "zoe", "Zoe", 1120, "Yoshi", 5, 36, 28, 112, 8, now.Add(-20*24*time.Hour)),
	}
}

func newPlayer(id int64, name, display string, elo int, character string, wins, losses, kos, falls, sds int, createdAt time.Time) smash.Player {
	return smash.Player{
		ID:            id,
		Name:          name,
		DisplayName:   &display,
		Elo:           elo,
		CreatedAt:     createdAt,
		MainCharacter: &character,
		TotalWins:     &wins,
		TotalLosses:   &losses,
		TotalKOs:      &kos,
		TotalFalls:    &falls,
		TotalSDs:      &sds,
	}
}

func sampleMatches() []smash.Match {
	now := time.Now().UTC()
	return []smash.Match{
		{
			ID:        101,
			CreatedAt: now.Add(-2 * time.Hour),
			Participants: []smash.Participant{
				newParticipant(1, "kai", "Kai", "Fox", 3, 1, 0, true),
				newParticipant(2, "mira", "Mira", "Samus", 1, 3, 0, false),
			},
		},
		{
			ID:        102,
			CreatedAt: now.Add(-26 * time.Hour),
			Participants: []smash.Participant{
				newParticipant(3, "dex", "Dex", "Captain Falcon", 2, 3, 1, false),
				newParticipant(4, "juno", "Juno", "Kirby", 3, 2, 0, true),
				newParticipant(5, "rex", "Rex", "Donkey Kong", 1, 3, 0, false),
			},
		},
		{
			ID:        103,
			CreatedAt: now.Add(-50 * time.Hour),
			Participants: []smash.Participant{
				newParticipant(6, "ana", "Ana", "Pikachu", 3, 0, 0, true),
				newParticipant(7, "theo", "Theo", "Link", 0, 2, 1, false),
			},
		},
	}
}

func newParticipant(playerID int64, name, display, character string, kos, falls, sds int, hasWon bool) smash.Participant {
	return smash.Participant{
		ID:                playerID * 1000,
		PlayerID:          playerID,
		PlayerName:        name,
		PlayerDisplayName: display,
		SmashCharacter:    character,
		IsCPU:             false,
		TotalKOs:          kos,
		TotalFalls:        falls,
		TotalSDs:          sds,
		HasWon:            hasWon,
	}
}
