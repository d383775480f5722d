package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// GameRecord is the full result of one finished game.
type GameRecord struct {
	ID        string // uuid
	GameID    string
	Score     int
	Level     int
	Extreme   bool
	Lines     int
	Frames    int
	Cleared   bool
	Stats     map[string]int
	CreatedAt time.Time
}

const recordColumns = `id, game_id, score, level, extreme, lines, frames, cleared, stats, created_at`

// SaveGame stores the score and the record of a finished game in one
// transaction and returns the new record ID.
func (s *Store) SaveGame(sum core.Summary) (string, error) {
	stats := []byte("{}")
	if sum.Stats != nil {
		var err error
		if stats, err = json.Marshal(sum.Stats); err != nil {
			return "", fmt.Errorf("storage: cannot encode stats: %w", err)
		}
	}
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", sum.GameID, sum.Score); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO game_records (id, game_id, score, level, extreme, lines, frames, cleared, stats)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sum.GameID, sum.Score, sum.Level, sum.Extreme, sum.Lines, sum.Frames, sum.Cleared, string(stats),
	); err != nil {
		return "", fmt.Errorf("storage: cannot save record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit record: %w", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (GameRecord, error) {
	var r GameRecord
	var stats string
	var createdAt any
	if err := row.Scan(&r.ID, &r.GameID, &r.Score, &r.Level, &r.Extreme, &r.Lines, &r.Frames, &r.Cleared, &stats, &createdAt); err != nil {
		return r, err
	}
	if err := json.Unmarshal([]byte(stats), &r.Stats); err != nil {
		return r, fmt.Errorf("storage: corrupt stats for record %s: %w", r.ID, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RecordByID returns a record, or nil if it does not exist.
func (s *Store) RecordByID(id string) (*GameRecord, error) {
	r, err := scanRecord(s.db.QueryRow(`SELECT `+recordColumns+` FROM game_records WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query record: %w", err)
	}
	return &r, nil
}

// RecentRecords returns the latest records of a mode, newest first.
func (s *Store) RecentRecords(gameID string, limit int) ([]GameRecord, error) {
	return s.queryRecords(gameID, "created_at DESC, rowid DESC", limit)
}

// TopRecords returns the best records of a mode, highest score first.
// Equal scores keep the order they were reached in.
func (s *Store) TopRecords(gameID string, limit int) ([]GameRecord, error) {
	return s.queryRecords(gameID, "score DESC, rowid ASC", limit)
}

func (s *Store) queryRecords(gameID, order string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+recordColumns+`
		 FROM game_records
		 WHERE game_id = ?
		 ORDER BY `+order+`
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// RecordTotals sums the counters of every record of a mode.
func (s *Store) RecordTotals(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(`SELECT stats FROM game_records WHERE game_id = ?`, gameID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("storage: cannot scan record: %w", err)
		}
		var stats map[string]int
		if err := json.Unmarshal([]byte(raw), &stats); err != nil {
			return nil, fmt.Errorf("storage: corrupt stats: %w", err)
		}
		for k, v := range stats {
			totals[k] += v
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return totals, nil
}
