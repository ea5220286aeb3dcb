// Package storage provides SQLite-based persistence for finished runs and
// stage clears. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for results.
type Store struct {
	db *sql.DB
}

// RunResult is a finished campaign run.
type RunResult struct {
	ID        int64
	Player    string
	Steps     int
	Rank      string
	Stages    int // stages cleared
	CreatedAt time.Time
}

// StageClear is a single cleared stage.
type StageClear struct {
	ID        int64
	Player    string
	StageID   string
	Steps     int // moves spent on this stage alone
	CreatedAt time.Time
}

// StageStats contains aggregated statistics for a stage.
type StageStats struct {
	StageID    string
	Clears     int
	BestSteps  int
	AvgSteps   float64
	LastPlayed time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			steps INTEGER NOT NULL,
			rank TEXT NOT NULL,
			stages INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(steps ASC);

		CREATE TABLE IF NOT EXISTS stage_clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			stage_id TEXT NOT NULL,
			steps INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_stage_clears_best ON stage_clears(stage_id, steps ASC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunResult) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player, steps, rank, stages) VALUES (?, ?, ?, ?)",
		r.Player, r.Steps, r.Rank, r.Stages,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveStageClear records a cleared stage.
// Returns the ID of the inserted record.
func (s *Store) SaveStageClear(c StageClear) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO stage_clears (player, stage_id, steps) VALUES (?, ?, ?)",
		c.Player, c.StageID, c.Steps,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save stage clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRuns retrieves the N runs with the fewest steps.
func (s *Store) BestRuns(limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, steps, rank, stages, created_at
		 FROM runs
		 ORDER BY steps ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		var r RunResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Steps, &r.Rank, &r.Stages, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestStageClears retrieves the N fastest clears of a stage.
func (s *Store) BestStageClears(stageID string, limit int) ([]StageClear, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, stage_id, steps, created_at
		 FROM stage_clears
		 WHERE stage_id = ?
		 ORDER BY steps ASC, id ASC
		 LIMIT ?`,
		stageID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stage clears: %w", err)
	}
	defer rows.Close()

	var clears []StageClear
	for rows.Next() {
		var c StageClear
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Player, &c.StageID, &c.Steps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		clears = append(clears, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return clears, nil
}

// BestSteps returns the fewest steps any run took.
// Returns 0 and false if no run has been recorded.
func (s *Store) BestSteps() (int, bool, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow("SELECT MIN(steps) FROM runs").Scan(&steps)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best steps: %w", err)
	}
	if !steps.Valid {
		return 0, false, nil
	}
	return int(steps.Int64), true, nil
}

// AllStageStats retrieves statistics for every stage that has been cleared.
func (s *Store) AllStageStats() (map[string]*StageStats, error) {
	rows, err := s.db.Query(
		`SELECT stage_id, COUNT(*), MIN(steps), AVG(steps), MAX(created_at)
		 FROM stage_clears
		 GROUP BY stage_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stage stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*StageStats)
	for rows.Next() {
		var st StageStats
		var lastPlayed any
		if err := rows.Scan(&st.StageID, &st.Clears, &st.BestSteps, &st.AvgSteps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.StageID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearResults deletes every run and stage clear.
func (s *Store) ClearResults() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin clear: %w", err)
	}
	for _, table := range []string{"runs", "stage_clears"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return errors.Join(
				fmt.Errorf("storage: cannot clear %s: %w", table, err),
				tx.Rollback(),
			)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// parseTime converts a DATETIME column, which the driver may hand back as
// either time.Time or a string.
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
