// Package storage provides SQLite-based persistence for generation audits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run represents a single recorded maze generation.
type Run struct {
	ID            string
	Seed          int64
	Cols          int
	Rows          int
	Target        int
	Kind          string
	CellsRaw      int
	CellsShaped   int
	CellsFinal    int
	MinDistance   int
	Distance      int
	MergeAttempts int
	Bridged       int
	Trimmed       int
	Fallbacks     []string
	Violations    int
	CreatedAt     time.Time
}

// NewRun builds a Run record from a generated maze.
func NewRun(seed int64, m *maze.Maze, violations int) Run {
	rep := m.Report()
	fallbacks := make([]string, len(rep.Fallbacks))
	for i, f := range rep.Fallbacks {
		fallbacks[i] = string(f)
	}
	return Run{
		Seed:          seed,
		Cols:          m.Cols(),
		Rows:          m.Rows(),
		Target:        rep.Target,
		Kind:          rep.Kind,
		CellsRaw:      rep.CellsRaw,
		CellsShaped:   rep.CellsShaped,
		CellsFinal:    rep.CellsFinal,
		MinDistance:   rep.MinDistance,
		Distance:      rep.Distance,
		MergeAttempts: rep.MergeAttempts,
		Bridged:       rep.Bridged,
		Trimmed:       rep.Trimmed,
		Fallbacks:     fallbacks,
		Violations:    violations,
	}
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
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			target INTEGER NOT NULL,
			kind TEXT NOT NULL,
			cells_raw INTEGER NOT NULL DEFAULT 0,
			cells_shaped INTEGER NOT NULL DEFAULT 0,
			cells_final INTEGER NOT NULL DEFAULT 0,
			min_distance INTEGER NOT NULL DEFAULT 0,
			distance INTEGER NOT NULL DEFAULT 0,
			merge_attempts INTEGER NOT NULL DEFAULT 0,
			bridged INTEGER NOT NULL DEFAULT 0,
			trimmed INTEGER NOT NULL DEFAULT 0,
			fallbacks TEXT NOT NULL DEFAULT '',
			violations INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_fallbacks (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			fallback TEXT NOT NULL,
			PRIMARY KEY (run_id, fallback)
		);
		CREATE INDEX IF NOT EXISTS idx_run_fallbacks_fallback ON run_fallbacks(fallback);
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

// SaveRun records a generation run. A missing ID is filled with a new UUID.
// Returns the ID of the stored run.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, seed, cols, rows, target, kind, cells_raw, cells_shaped, cells_final,
			min_distance, distance, merge_attempts, bridged, trimmed, fallbacks, violations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Seed, run.Cols, run.Rows, run.Target, run.Kind,
		run.CellsRaw, run.CellsShaped, run.CellsFinal,
		run.MinDistance, run.Distance, run.MergeAttempts, run.Bridged, run.Trimmed,
		strings.Join(run.Fallbacks, ","), run.Violations,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for _, f := range run.Fallbacks {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO run_fallbacks (run_id, fallback) VALUES (?, ?)",
			run.ID, f,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save fallback: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `id, seed, cols, rows, target, kind, cells_raw, cells_shaped, cells_final,
	min_distance, distance, merge_attempts, bridged, trimmed, fallbacks, violations, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var fallbacks string
	var createdAt any
	err := row.Scan(&r.ID, &r.Seed, &r.Cols, &r.Rows, &r.Target, &r.Kind,
		&r.CellsRaw, &r.CellsShaped, &r.CellsFinal,
		&r.MinDistance, &r.Distance, &r.MergeAttempts, &r.Bridged, &r.Trimmed,
		&fallbacks, &r.Violations, &createdAt)
	if err != nil {
		return r, err
	}
	if fallbacks != "" {
		r.Fallbacks = strings.Split(fallbacks, ",")
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
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

// RunByID retrieves a run by its ID.
// Returns nil if not found.
func (s *Store) RunByID(id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// FallbackStats returns how many runs fired each fallback.
func (s *Store) FallbackStats() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT fallback, COUNT(*) FROM run_fallbacks GROUP BY fallback`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get fallback stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[name] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// KindStats contains aggregated statistics for a shape kind.
type KindStats struct {
	Kind        string
	Runs        int
	AvgCells    float64
	AvgDistance float64
	Violations  int
	LastRun     time.Time
}

// AllKindStats retrieves statistics for every kind that has been generated.
func (s *Store) AllKindStats() (map[string]*KindStats, error) {
	rows, err := s.db.Query(
		`SELECT kind, COUNT(*), AVG(cells_final), AVG(distance), SUM(violations), MAX(created_at)
		 FROM runs
		 GROUP BY kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get kind stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*KindStats)
	for rows.Next() {
		var k KindStats
		var lastRun any
		if err := rows.Scan(&k.Kind, &k.Runs, &k.AvgCells, &k.AvgDistance, &k.Violations, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		k.LastRun = parseTime(lastRun)
		stats[k.Kind] = &k
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearRuns removes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM run_fallbacks"); err != nil {
		return fmt.Errorf("storage: cannot clear fallbacks: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
