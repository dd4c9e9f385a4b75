package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite implements Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite repository and runs migrations.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS parses (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			input      TEXT NOT NULL,
			resolver   TEXT NOT NULL,
			language   TEXT NOT NULL DEFAULT '',
			base_time  TEXT NOT NULL,
			result     TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_parses_created ON parses(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating parses table: %w", err)
	}

	return nil
}

// Record appends an entry and sets its ID.
func (s *SQLite) Record(ctx context.Context, e *Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO parses (input, resolver, language, base_time, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Input,
		e.Resolver,
		e.Language,
		e.Base.Format(time.RFC3339Nano),
		e.Result.Format(time.RFC3339Nano),
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// List returns the most recent entries, newest first, up to limit.
func (s *SQLite) List(ctx context.Context, limit int) ([]*Entry, error) {
	query := `
		SELECT id, input, resolver, language, base_time, result, created_at
		FROM parses
		ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*Entry
	for rows.Next() {
		var (
			e         Entry
			baseTime  string
			result    string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Input, &e.Resolver, &e.Language, &baseTime, &result, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if e.Base, err = time.Parse(time.RFC3339Nano, baseTime); err != nil {
			return nil, fmt.Errorf("parsing base time: %w", err)
		}
		if e.Result, err = time.Parse(time.RFC3339Nano, result); err != nil {
			return nil, fmt.Errorf("parsing result: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return entries, nil
}

// Clear removes all entries.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM parses`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
