// Package storage provides SQLite-based persistence for replay journals.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/replay"
)

// ErrReplayNotFound is returned when no journal has the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplaySummary is the listing view of a stored journal.
type ReplaySummary struct {
	ID        string
	GameID    string
	Seed      int64
	Ticks     int
	Score     int
	Cause     core.Cause
	Inputs    int
	EndedAt   time.Time
	CreatedAt time.Time
}

// Completed reports whether the round ended in a terminal state.
func (r ReplaySummary) Completed() bool {
	return r.Cause != core.CauseNone
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// SQLite allows one writer; SSH sessions share the store.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			inputs INTEGER NOT NULL DEFAULT 0,
			journal TEXT NOT NULL,
			started_ms INTEGER NOT NULL DEFAULT 0,
			ended_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
		CREATE INDEX IF NOT EXISTS idx_replays_top ON replays(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_replays_recent ON replays(ended_ms DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a finished journal. Saving the same ID twice
// replaces the earlier row.
func (s *Store) SaveReplay(log replay.Log) error {
	if log.ID == "" {
		return fmt.Errorf("storage: cannot save replay: empty id")
	}

	journal, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("storage: cannot encode replay: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO replays
		 (id, game_id, seed, ticks, score, cause, inputs, journal, started_ms, ended_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID,
		log.Game,
		log.Seed,
		log.Ticks,
		log.Score,
		string(log.Cause),
		len(log.Entries),
		string(journal),
		log.StartedAt.UnixMilli(),
		log.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save replay: %w", err)
	}
	return nil
}

// Replay loads a full journal by ID.
func (s *Store) Replay(id string) (replay.Log, error) {
	var journal string
	err := s.db.QueryRow("SELECT journal FROM replays WHERE id = ?", id).Scan(&journal)
	if errors.Is(err, sql.ErrNoRows) {
		return replay.Log{}, fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	if err != nil {
		return replay.Log{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	var log replay.Log
	if err := json.Unmarshal([]byte(journal), &log); err != nil {
		return replay.Log{}, fmt.Errorf("storage: cannot decode replay %s: %w", id, err)
	}
	return log, nil
}

// RecentReplays lists the most recently finished journals, newest
// first. An empty gameID lists every game.
func (s *Store) RecentReplays(gameID string, limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, ticks, score, cause, inputs, ended_ms, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY ended_ms DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// TopReplays lists the best completed rounds for the given game.
func (s *Store) TopReplays(gameID string, limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, ticks, score, cause, inputs, ended_ms, created_at
		 FROM replays
		 WHERE game_id = ? AND cause != ''
		 ORDER BY score DESC, ended_ms ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// HighScore returns the highest completed score for the given game.
// Returns 0 if no rounds have been stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM replays WHERE game_id = ? AND cause != ''",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// DeleteReplays removes every journal for the given game.
func (s *Store) DeleteReplays(gameID string) error {
	_, err := s.db.Exec("DELETE FROM replays WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replays: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalTicks int64
	LastPlayed time.Time
}

// AllGamesStats retrieves statistics for all games with completed rounds.
func (s *Store) AllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(ticks), MAX(ended_ms)
		 FROM replays
		 WHERE cause != ''
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastMS int64
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalTicks, &lastMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = time.UnixMilli(lastMS)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

func scanSummaries(rows *sql.Rows) ([]ReplaySummary, error) {
	var out []ReplaySummary
	for rows.Next() {
		var r ReplaySummary
		var cause string
		var endedMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.Ticks, &r.Score, &cause, &r.Inputs, &endedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Cause = core.Cause(cause)
		r.EndedAt = time.UnixMilli(endedMS)
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime handles the driver returning DATETIME columns either as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
