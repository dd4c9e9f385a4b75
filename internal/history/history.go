// Package history records resolved parse results for later recall.
package history

import (
	"context"
	"time"
)

// Entry is one recorded parse.
type Entry struct {
	ID        int64
	Input     string    // raw expression as typed
	Resolver  string    // pipeline stage that claimed it
	Language  string    // language key for compound matches, empty otherwise
	Base      time.Time // base time the expression was resolved against
	Result    time.Time
	CreatedAt time.Time
}

// Repository defines the storage interface for parse history.
type Repository interface {
	// Record appends an entry and sets its ID.
	Record(ctx context.Context, e *Entry) error

	// List returns the most recent entries, newest first, up to limit.
	// A limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Entry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any resources held by the repository.
	Close() error
}
