// Package storage provides SQLite-based persistence for the session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished run of a scene.
type Session struct {
	ID        int64
	SceneID   string
	Mode      string
	Origin    string // "local" or "ssh"
	Frames    uint64
	Duration  time.Duration
	StartedAt time.Time
}

// SceneTotals aggregates every stored session of one scene.
type SceneTotals struct {
	SceneID  string
	Sessions int
	Frames   uint64
	Duration time.Duration
	LastRun  time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			origin TEXT NOT NULL DEFAULT 'local',
			frames INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene_id ON sessions(scene_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
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

// SaveSession records a finished session and returns its ID.
// A zero StartedAt is stored as the current time.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.SceneID == "" {
		return 0, errors.New("storage: session has no scene id")
	}
	if sess.Origin == "" {
		sess.Origin = "local"
	}
	started := sess.StartedAt
	if started.IsZero() {
		started = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (scene_id, mode, origin, frames, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.SceneID, sess.Mode, sess.Origin, int64(sess.Frames),
		sess.Duration.Milliseconds(), started.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions returns the newest sessions first.
// An empty sceneID returns sessions of every scene.
func (s *Store) RecentSessions(sceneID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, scene_id, mode, origin, frames, duration_ms, started_at
		 FROM sessions`
	args := []any{}
	if sceneID != "" {
		query += " WHERE scene_id = ?"
		args = append(args, sceneID)
	}
	query += " ORDER BY started_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess      Session
			frames    int64
			durMS     int64
			startedAt any
		)
		if err := rows.Scan(&sess.ID, &sess.SceneID, &sess.Mode, &sess.Origin, &frames, &durMS, &startedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Frames = uint64(frames)
		sess.Duration = time.Duration(durMS) * time.Millisecond
		sess.StartedAt = parseTime(startedAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals returns per-scene aggregates keyed by scene ID.
func (s *Store) Totals() (map[string]*SceneTotals, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), SUM(frames), SUM(duration_ms), MAX(started_at)
		 FROM sessions
		 GROUP BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]*SceneTotals)
	for rows.Next() {
		var (
			t       SceneTotals
			frames  int64
			durMS   int64
			lastRun any
		)
		if err := rows.Scan(&t.SceneID, &t.Sessions, &frames, &durMS, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan totals row: %w", err)
		}
		t.Frames = uint64(frames)
		t.Duration = time.Duration(durMS) * time.Millisecond
		t.LastRun = parseTime(lastRun)
		totals[t.SceneID] = &t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return totals, nil
}

// ClearSessions deletes the history of one scene, or all of it when sceneID is empty.
// Returns the number of deleted rows.
func (s *Store) ClearSessions(sceneID string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if sceneID == "" {
		res, err = s.db.Exec("DELETE FROM sessions")
	} else {
		res, err = s.db.Exec("DELETE FROM sessions WHERE scene_id = ?", sceneID)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return res.RowsAffected()
}

// parseTime handles both time.Time and string, depending on how the driver
// reports the column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
