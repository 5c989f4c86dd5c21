// Package storage provides SQLite-based persistence for score history and
// the play log. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
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

// Store manages the SQLite database connection. It is safe for concurrent
// use; SSH sessions share one Store.
type Store struct {
	db *sql.DB
}

// Play is one finished game in the play log.
type Play struct {
	ID        int64
	Player    string
	Score     int
	Length    int
	Ticks     uint64
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates the play log.
type Stats struct {
	Games      int
	HighScore  int
	AvgScore   float64
	TotalTicks int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
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

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_top ON plays(score DESC);
		CREATE INDEX IF NOT EXISTS idx_plays_player ON plays(player);
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

// Get returns the value stored under key. It implements scores.KV.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// Namespace returns a view of the kv table whose keys are prefixed with
// prefix and a colon.
func (s *Store) Namespace(prefix string) *Namespace {
	return &Namespace{store: s, prefix: prefix}
}

// Namespace is a prefixed view of a Store's kv table.
type Namespace struct {
	store  *Store
	prefix string
}

func (n *Namespace) key(k string) string {
	if n.prefix == "" {
		return k
	}
	return n.prefix + ":" + k
}

// Get implements scores.KV.
func (n *Namespace) Get(key string) (string, bool, error) {
	return n.store.Get(n.key(key))
}

// Delete removes the prefixed key.
func (n *Namespace) Delete(key string) error {
	return n.store.Delete(n.key(key))
}

// Set implements scores.KV.
func (n *Namespace) Set(key, value string) error {
	return n.store.Set(n.key(key), value)
}

// RecordPlay appends a finished game to the play log.
// Returns the ID of the inserted record.
func (s *Store) RecordPlay(p Play) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO plays (player, score, length, ticks, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		p.Player, p.Score, p.Length, int64(p.Ticks), p.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record play: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopPlays retrieves the highest scoring plays, best first.
func (s *Store) TopPlays(limit int) ([]Play, error) {
	return s.queryPlays(
		`SELECT id, player, score, length, ticks, duration_ms, created_at
		 FROM plays ORDER BY score DESC, id ASC LIMIT ?`,
		defaultLimit(limit),
	)
}

// RecentPlays retrieves the latest plays, newest first.
func (s *Store) RecentPlays(limit int) ([]Play, error) {
	return s.queryPlays(
		`SELECT id, player, score, length, ticks, duration_ms, created_at
		 FROM plays ORDER BY id DESC LIMIT ?`,
		defaultLimit(limit),
	)
}

// PlayerPlays retrieves the latest plays of one player, newest first.
func (s *Store) PlayerPlays(player string, limit int) ([]Play, error) {
	return s.queryPlays(
		`SELECT id, player, score, length, ticks, duration_ms, created_at
		 FROM plays WHERE player = ? ORDER BY id DESC LIMIT ?`,
		player, defaultLimit(limit),
	)
}

func defaultLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}

func (s *Store) queryPlays(query string, args ...any) ([]Play, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var (
			p          Play
			ticks      int64
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&p.ID, &p.Player, &p.Score, &p.Length, &ticks, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Ticks = uint64(ticks)
		p.Duration = time.Duration(durationMS) * time.Millisecond
		p.CreatedAt = parseTime(createdAt)
		plays = append(plays, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return plays, nil
}

// Stats returns aggregates over the whole play log.
func (s *Store) Stats() (Stats, error) {
	var (
		stats      Stats
		lastPlayed any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM plays`,
	).Scan(&stats.Games, &stats.HighScore, &stats.AvgScore, &stats.TotalTicks, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearPlays deletes the whole play log.
func (s *Store) ClearPlays() error {
	if _, err := s.db.Exec("DELETE FROM plays"); err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}
	return nil
}

// parseTime handles the driver returning DATETIME as either time.Time or text.
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
