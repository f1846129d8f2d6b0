// apps/go-cli/internal/store/sqlite.go
//
// SQLite backend for the answer cache.
// Responsibilities:
//   - Opening cache.db with safe defaults (WAL, busy timeout).
//   - Applying the schema once, recorded in _migrations.
//   - Get/Put/Dates over the words table.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// DBFileName is the SQLite file inside the cache dir.
const DBFileName = "cache.db"

// migrations are applied in order; the name is recorded in _migrations.
var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "001_words",
		sql: `CREATE TABLE IF NOT EXISTS words (
			date       TEXT PRIMARY KEY,
			word       TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);`,
	},
}

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and creates if missing) dir/cache.db.
func NewSQLiteStore(dir string) (Store, error) {
	db, err := openDB(filepath.Join(dir, DBFileName))
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

/**
 * openDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists.
 * - Configures busy timeout and WAL journaling mode.
 */
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies pending migrations, each inside its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Debug().Str("migration", m.name).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, date string) (string, error) {
	var w string
	err := s.db.QueryRowContext(ctx, `SELECT word FROM words WHERE date=?`, date).Scan(&w)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query word %s: %w", date, err)
	}
	return w, nil
}

func (s *sqliteStore) Put(ctx context.Context, date, word string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO words (date, word, fetched_at) VALUES (?, ?, ?)
        ON CONFLICT(date) DO UPDATE SET word=excluded.word, fetched_at=excluded.fetched_at`,
		date, word, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert word %s: %w", date, err)
	}
	return nil
}

func (s *sqliteStore) Dates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date FROM words ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }
