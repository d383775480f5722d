package storage

import (
	"fmt"
	"time"
)

// GameStats aggregates every finished game of a mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Cleared    int // games that reached the line target
	MaxLines   int
	LastPlayed time.Time
}

// statsQuery aggregates scores per mode, joined with the record counters.
// %s is an optional WHERE clause on s.game_id.
const statsQuery = `
	SELECT s.game_id, COUNT(*), MAX(s.score), AVG(s.score), SUM(s.score), MAX(s.created_at),
	       COALESCE(MAX(r.cleared), 0), COALESCE(MAX(r.max_lines), 0)
	FROM scores s
	LEFT JOIN (
		SELECT game_id, SUM(cleared) AS cleared, MAX(lines) AS max_lines
		FROM game_records
		GROUP BY game_id
	) r ON r.game_id = s.game_id
	%s
	GROUP BY s.game_id`

func (s *Store) queryStats(where string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query(fmt.Sprintf(statsQuery, where), args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
			&lastPlayed, &gs.Cleared, &gs.MaxLines); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// GetGameStats aggregates one mode. A mode never played has zero counts.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	all, err := s.queryStats("WHERE s.game_id = ?", gameID)
	if err != nil {
		return nil, err
	}
	if gs, ok := all[gameID]; ok {
		return gs, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats aggregates every mode that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	return s.queryStats("")
}
