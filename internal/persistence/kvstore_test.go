package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKeyValueStore(t *testing.T, store KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "employee_tickets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "employee_tickets", `[{"id":"TKT-001"}]`))
	val, found, err := store.Get(ctx, "employee_tickets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"TKT-001"}]`, val)

	require.NoError(t, store.Set(ctx, "employee_tickets", `[]`))
	val, _, err = store.Get(ctx, "employee_tickets")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)
}

func TestMemoryKeyValueStore(t *testing.T) {
	exerciseKeyValueStore(t, NewMemoryKeyValueStore())
}

func TestRedisKeyValueStore(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseKeyValueStore(t, NewRedisKeyValueStore(client))
	srv.CheckGet(t, "employee_tickets", `[]`)
}

func TestRedisKeyValueStorePropagatesErrors(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	srv.Close()

	_, _, err := NewRedisKeyValueStore(client).Get(context.Background(), "k")
	require.Error(t, err)
}
