// Package store defines the datastore abstraction for stampdesk. The
// pipeline depends on the Store interface, never on concrete
// implementations, so tests run without a database.
package store

import (
	"context"
	"errors"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// ErrNotFound is returned when no attempt exists for the given SKU.
var ErrNotFound = errors.New("attempt not found")

// AttemptQuery defines optional filters for attempt history queries.
type AttemptQuery struct {
	Status      *domain.AttemptStatus
	Environment *domain.Environment
	ListingType *domain.ListingType
	SKUPrefix   *string
	Limit       int // default 50
	Offset      int
}

// Store records every listing attempt, success or failure, keyed by SKU.
type Store interface {
	// InsertAttempt writes one attempt row. Rows are immutable.
	InsertAttempt(ctx context.Context, a *domain.Attempt) error
	// GetAttempt fetches an attempt by SKU, or ErrNotFound.
	GetAttempt(ctx context.Context, sku string) (*domain.Attempt, error)
	// ListAttempts queries attempt history, returning results and total count.
	ListAttempts(ctx context.Context, opts *AttemptQuery) ([]domain.Attempt, int, error)

	// Migrate applies pending SQL schema migrations.
	Migrate(ctx context.Context) error
	// Ping verifies the database connection is alive.
	Ping(ctx context.Context) error
}
