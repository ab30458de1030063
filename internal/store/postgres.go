package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stampdesk/stampdesk/internal/metrics"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled
// PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// InsertAttempt writes one attempt row.
func (s *PostgresStore) InsertAttempt(ctx context.Context, a *domain.Attempt) error {
	aspects := a.Aspects
	if len(aspects) == 0 {
		aspects = []byte("{}")
	}

	args := pgx.NamedArgs{
		"sku":              a.SKU,
		"item_id":          a.ItemID,
		"status":           string(a.Status),
		"error_text":       a.ErrorText,
		"title":            a.Title,
		"price":            a.Price,
		"currency":         a.Currency,
		"condition":        a.Condition,
		"aspects":          aspects,
		"environment":      string(a.Environment),
		"listing_type":     string(a.ListingType),
		"listing_duration": string(a.ListingDuration),
		"schedule_time":    a.ScheduleTime,
		"listing_url":      a.ListingURL,
	}

	err := s.pool.QueryRow(ctx, queryInsertAttempt, args).Scan(&a.CreatedAt)
	if err != nil {
		metrics.AttemptWritesTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("inserting attempt %s: %w", a.SKU, err)
	}
	metrics.AttemptWritesTotal.WithLabelValues("success").Inc()
	return nil
}

// GetAttempt fetches an attempt by SKU.
func (s *PostgresStore) GetAttempt(ctx context.Context, sku string) (*domain.Attempt, error) {
	a := &domain.Attempt{}
	err := scanAttempt(s.pool.QueryRow(ctx, queryGetAttempt, sku), a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching attempt %s: %w", sku, err)
	}
	return a, nil
}

// ListAttempts queries attempt history with optional filters, returning
// results and total count.
func (s *PostgresStore) ListAttempts(
	ctx context.Context,
	opts *AttemptQuery,
) ([]domain.Attempt, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting attempts: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.Attempt
	for rows.Next() {
		var a domain.Attempt
		if err := scanAttempt(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("scanning attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating attempts: %w", err)
	}

	return attempts, total, nil
}

// scanAttempt reads one attempt row in the column order used by
// baseAttemptsSelect and queryGetAttempt.
func scanAttempt(row pgx.Row, a *domain.Attempt) error {
	return row.Scan(
		&a.SKU, &a.ItemID, &a.Status, &a.ErrorText,
		&a.Title, &a.Price, &a.Currency, &a.Condition, &a.Aspects,
		&a.Environment, &a.ListingType, &a.ListingDuration,
		&a.ScheduleTime, &a.ListingURL, &a.CreatedAt,
	)
}
