package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent SQL driver over the journal database and provides
// access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	now func() time.Time
}

// MemoryDSN returns a DSN for a private in-memory database. Nothing written
// to it outlives the process.
func MemoryDSN() string {
	return "file:academy-" + uuid.New().String() + "?mode=memory&cache=shared"
}

// Open creates a new Store connected to the SQLite database at dsn. An empty
// dsn opens a private in-memory database. It applies recommended pragmas
// and creates the journal tables.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN()
	}
	memory := strings.Contains(dsn, "mode=memory") || strings.Contains(dsn, ":memory:")
	if !memory {
		if err := ensureDir(dsn); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A shared-cache memory database disappears with its last connection.
	db.SetMaxOpenConns(1)
	if memory {
		db.SetConnMaxLifetime(0)
		db.SetMaxIdleConns(1)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, drv: entsql.OpenDB(dialect.SQLite, db), now: time.Now}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{drv: s.drv, now: s.now}
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates one table per event type. Every row carries the global
// sequence so events of different types can be ordered against each other.
func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS event_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		counter INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS course_events (
		sequence INTEGER PRIMARY KEY,
		session_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attempt_events (
		sequence INTEGER PRIMARY KEY,
		session_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		course_title TEXT NOT NULL,
		answered INTEGER NOT NULL,
		questions INTEGER NOT NULL,
		percentage INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_attempt_events_course ON attempt_events(course_id);

	CREATE TABLE IF NOT EXISTS certificate_events (
		sequence INTEGER PRIMARY KEY,
		session_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		serial TEXT NOT NULL UNIQUE,
		path TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ensureDir creates the parent directory of a file DSN if it doesn't exist.
func ensureDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
