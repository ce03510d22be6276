// Package kv implements the collection key-value store on a PostgreSQL table.
// Each key is one row of kv_store holding the collection as a JSONB array.
package kv

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Rkreels/powerbi-sub001/internal/adapter/postgres"
	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

const table = "kv_store"

// Store provides key-value persistence backed by PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
	psql sq.StatementBuilderType
}

// New creates a new key-value store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get returns the value stored under key.
// Inside a transaction the key is locked until commit: an advisory lock covers
// keys that have no row yet, and FOR UPDATE covers the row itself.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	q := postgres.QuerierFromCtx(ctx, s.pool)

	query := s.psql.Select("value").From(table).Where(sq.Eq{"key": key})

	if postgres.InTx(ctx) {
		if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key); err != nil {
			return nil, false, mapError(err, "lock", key)
		}
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get %s: %w", key, err)
	}

	var value []byte
	if err := q.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, mapError(err, "get", key)
	}

	return value, true, nil
}

// Set upserts value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	sql, args, err := s.psql.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, string(value), sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set %s: %w", key, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, s.pool).Exec(ctx, sql, args...); err != nil {
		return mapError(err, "set", key)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	sql, args, err := s.psql.Delete(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", key, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, s.pool).Exec(ctx, sql, args...); err != nil {
		return mapError(err, "delete", key)
	}
	return nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func mapError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("kv %s %s: %w", op, key, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02", "22032": // invalid_text_representation, invalid_json_text
			return fmt.Errorf("kv %s %s: %w", op, key, domain.ErrValidation)
		case "23505": // unique_violation
			return fmt.Errorf("kv %s %s: %w", op, key, domain.ErrAlreadyExists)
		}
	}

	return fmt.Errorf("kv %s %s: %w", op, key, err)
}
