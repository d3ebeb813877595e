package cache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
)

// New creates a new SnapshotStore backed by the given database.
func New(db *sql.DB) SnapshotStore {
	return &store{
		db: db,
	}
}

// SavePlayers replaces the cached roster with the given one in a single
// transaction, so readers never see a half-written roster.
func (s *store) SavePlayers(players []smash.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM cached_players"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear cached players: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO cached_players (id, name, display_name, elo, created_at, main_character, total_wins, total_losses, total_kos, total_falls, total_sds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		_, err := stmt.Exec(p.ID, p.Name, p.DisplayName, p.Elo, p.CreatedAt.Unix(), p.MainCharacter, p.TotalWins, p.TotalLosses, p.TotalKOs, p.TotalFalls, p.TotalSDs)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert cached player %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// SaveMatches replaces the cached match history. The position column keeps
// the service's newest-first ordering; participants travel as a msgpack blob.
func (s *store) SaveMatches(matches []smash.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM cached_matches"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear cached matches: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO cached_matches (id, created_at, position, participants_blob)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, m := range matches {
		blob, err := msgpack.Marshal(m.Participants)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to marshal participants for match %d: %w", m.ID, err)
		}
		if _, err := stmt.Exec(m.ID, m.CreatedAt.Unix(), i, blob); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert cached match %d: %w", m.ID, err)
		}
	}

	return tx.Commit()
}

// LoadPlayers returns the cached roster.
func (s *store) LoadPlayers() ([]smash.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, display_name, elo, created_at, main_character, total_wins, total_losses, total_kos, total_falls, total_sds
		FROM cached_players ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []smash.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan cached player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// LoadMatches returns the cached match history in its original order.
func (s *store) LoadMatches() ([]smash.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, created_at, participants_blob
		FROM cached_matches ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []smash.Match
	for rows.Next() {
		var (
			m         smash.Match
			createdAt int64
			blob      []byte
		)
		if err := rows.Scan(&m.ID, &createdAt, &blob); err != nil {
			log.Error("Failed to scan cached match row", "error", err)
			continue
		}
		m.CreatedAt = unixTime(createdAt)
		if len(blob) > 0 {
			if err := msgpack.Unmarshal(blob, &m.Participants); err != nil {
				log.Error("Failed to unmarshal participants blob", "error", err, "matchID", m.ID)
			}
		}
		if m.Participants == nil {
			m.Participants = []smash.Participant{}
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Clear drops everything from the cache.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM cached_matches"); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM cached_players"); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func scanPlayer(scanner interface{ Scan(...any) error }) (smash.Player, error) {
	var (
		p           smash.Player
		displayName sql.NullString
		mainChar    sql.NullString
		createdAt   int64
		wins        sql.NullInt64
		losses      sql.NullInt64
		kos         sql.NullInt64
		falls       sql.NullInt64
		sds         sql.NullInt64
	)
	err := scanner.Scan(&p.ID, &p.Name, &displayName, &p.Elo, &createdAt, &mainChar, &wins, &losses, &kos, &falls, &sds)
	if err != nil {
		return smash.Player{}, err
	}
	p.CreatedAt = unixTime(createdAt)
	if displayName.Valid {
		p.DisplayName = &displayName.String
	}
	if mainChar.Valid {
		p.MainCharacter = &mainChar.String
	}
	p.TotalWins = nullableInt(wins)
	p.TotalLosses = nullableInt(losses)
	p.TotalKOs = nullableInt(kos)
	p.TotalFalls = nullableInt(falls)
	p.TotalSDs = nullableInt(sds)
	return p, nil
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
