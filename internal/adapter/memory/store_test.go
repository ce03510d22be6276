package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

func TestStore_GetAbsentKey(t *testing.T) {
	t.Parallel()
	s := NewStore()

	v, found, err := s.Get(context.Background(), "bi_reports")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, v)
}

func TestStore_SetThenGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "k", []byte(`[1]`)))

	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1]`, string(v))
	assert.Equal(t, 1, s.Keys())
}

func TestStore_ValuesAreCopied(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	in := []byte(`[1]`)
	require.NoError(t, s.Set(ctx, "k", in))
	in[1] = '9'

	out, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	out[1] = '7'

	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(again))
}

func TestStore_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore()

	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Set(ctx, "k", nil), context.Canceled)
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}

func TestStore_RunInTx_PropagatesError(t *testing.T) {
	t.Parallel()
	s := NewStore()
	boom := errors.New("boom")

	err := s.RunInTx(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStore_RunInTx_Serializes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Set(ctx, "n", []byte{0}))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.RunInTx(ctx, func(ctx context.Context) error {
				v, _, err := s.Get(ctx, "n")
				if err != nil {
					return err
				}
				return s.Set(ctx, "n", []byte{v[0] + 1})
			})
		}()
	}
	wg.Wait()

	v, _, err := s.Get(ctx, "n")
	require.NoError(t, err)
	assert.Equal(t, byte(50), v[0])
}

func TestStore_RunInTx_NestedJoinsOuter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	other := NewStore()

	done := make(chan error, 1)
	go func() {
		done <- s.RunInTx(ctx, func(ctx context.Context) error {
			// A different store must still take its own lock.
			if err := other.RunInTx(ctx, func(context.Context) error { return nil }); err != nil {
				return err
			}
			return s.RunInTx(ctx, func(ctx context.Context) error {
				return s.Set(ctx, "k", []byte("v"))
			})
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("nested RunInTx deadlocked")
	}

	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), v)
}

func TestBlobStore_PutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewBlobStore("memory://exports")

	url, err := b.Put(ctx, "exports/r1/e1.csv", "text/csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, "memory://exports/exports/r1/e1.csv", url)

	obj, err := b.Get(ctx, "exports/r1/e1.csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", obj.ContentType)
	assert.Equal(t, "a,b\n", string(obj.Data))
	assert.Equal(t, 1, b.Len())
}

func TestBlobStore_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewBlobStore("memory://x")

	_, err := b.Put(ctx, "", "text/csv", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = b.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventLog_Publish(t *testing.T) {
	t.Parallel()
	l := NewEventLog(0)

	require.NoError(t, l.Publish(context.Background(), "report.exported", map[string]string{"reportId": "r1"}))

	events := l.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "report.exported", events[0].RoutingKey)
	assert.JSONEq(t, `{"reportId":"r1"}`, string(events[0].Body))
}

func TestEventLog_UnmarshalablePayload(t *testing.T) {
	t.Parallel()
	l := NewEventLog(0)

	err := l.Publish(context.Background(), "x", make(chan int))
	assert.Error(t, err)
	assert.Empty(t, l.Events())
}

func TestEventLog_KeepsMostRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l := NewEventLog(2)

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, l.Publish(ctx, key, key))
	}

	events := l.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "b", events[0].RoutingKey)
	assert.Equal(t, "c", events[1].RoutingKey)
}
