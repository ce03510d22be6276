//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rkreels/powerbi-sub001/internal/adapter/postgres"
	"github.com/Rkreels/powerbi-sub001/internal/adapter/postgres/testhelper"
)

// keyExists checks whether a kv_store row with the given key exists.
func keyExists(t *testing.T, pool *pgxpool.Pool, key string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM kv_store WHERE key = $1)`,
		key,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("keyExists query: %v", err)
	}
	return exists
}

func insertKey(ctx context.Context, pool *pgxpool.Pool, key string) error {
	q := postgres.QuerierFromCtx(ctx, pool)
	_, err := q.Exec(ctx, `INSERT INTO kv_store (key, value) VALUES ($1, '[]'::jsonb)`, key)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	key := testhelper.UniqueKey("commit")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if !postgres.InTx(ctx) {
			t.Error("expected transaction in callback context")
		}
		return insertKey(ctx, pool, key)
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !keyExists(t, pool, key) {
		t.Fatal("expected key to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	key := testhelper.UniqueKey("rollback")
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertKey(ctx, pool, key); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if keyExists(t, pool, key) {
		t.Fatal("expected key NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	key := testhelper.UniqueKey("panic")

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			if err := insertKey(ctx, pool, key); err != nil {
				t.Fatalf("insert inside tx failed: %v", err)
			}
			panic("boom")
		})
	}()

	if keyExists(t, pool, key) {
		t.Fatal("expected key NOT to exist after panic")
	}
}

func TestRunInTx_NestedJoinsOuter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	key := testhelper.UniqueKey("nested")
	sentinel := errors.New("outer failure")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := tm.RunInTx(ctx, func(ctx context.Context) error {
			return insertKey(ctx, pool, key)
		}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if keyExists(t, pool, key) {
		t.Fatal("inner write should roll back with the outer transaction")
	}
}

func TestQuerierFromCtx_NoTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	if postgres.InTx(context.Background()) {
		t.Fatal("background context should not carry a transaction")
	}
	if q := postgres.QuerierFromCtx(context.Background(), pool); q != postgres.Querier(pool) {
		t.Fatal("expected pool as querier outside a transaction")
	}
}
