package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const queryTimeout = 5 * time.Second

// PageStore keeps listing-screen page numbers in the kv_pages table.
type PageStore struct {
	db     *sql.DB
	tracer trace.Tracer
}

func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{
		db:     db,
		tracer: otel.Tracer("postgres-page-store"),
	}
}

func (s *PageStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "pageStore.Get")
	defer span.End()

	span.SetAttributes(attribute.String("kv.key", key))

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_pages WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			span.SetAttributes(attribute.Bool("not_found", true))
			return "", false, nil
		}
		span.RecordError(err)
		return "", false, fmt.Errorf("failed to get page %s: %w", key, err)
	}

	return value, true, nil
}

func (s *PageStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "pageStore.Set")
	defer span.End()

	span.SetAttributes(attribute.String("kv.key", key))

	query := `
		INSERT INTO kv_pages (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to set page %s: %w", key, err)
	}

	return nil
}

func (s *PageStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "pageStore.Remove")
	defer span.End()

	span.SetAttributes(attribute.String("kv.key", key))

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_pages WHERE key = $1`, key); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to remove page %s: %w", key, err)
	}

	return nil
}
