package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: These tests require a Redis instance running on localhost:6379
// Run with: go test -v
// Skip integration tests: go test -v -short

func setupTestClient(t *testing.T) (*Client, func()) {
	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	cfg := &Config{
		Host:         "localhost",
		Port:         6379,
		Password:     "",
		DB:           15, // Use DB 15 for testing
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MaxRetries:   3,
	}

	client, err := NewClient(cfg)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		ctx := context.Background()
		client.universal.FlushDB(ctx)
		client.Close()
	}

	return client, cleanup
}

func TestClient_SetAndGet(t *testing.T) {
	client, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	err := client.Set(ctx, "test:key", "test-value", time.Minute)
	require.NoError(t, err)

	result, err := client.Get(ctx, "test:key")
	require.NoError(t, err)
	assert.Equal(t, "test-value", result)
}

func TestClient_GetMiss(t *testing.T) {
	client, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()
	_, err := client.Get(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestClient_EmptyValueIsNotAMiss(t *testing.T) {
	client, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:empty", "", time.Minute))

	result, err := client.Get(ctx, "test:empty")
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestClient_SetAppliesDefaultTTL(t *testing.T) {
	client, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:defaultttl", "v", 0))

	ttl, err := client.TTL(ctx, "test:defaultttl")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, DefaultTTL)
}

func TestClient_DeleteIsIdempotent(t *testing.T) {
	client, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:del", "v", time.Minute))
	require.NoError(t, client.Delete(ctx, "test:del", "test:never-existed"))
	require.NoError(t, client.Delete(ctx, "test:del"))
	require.NoError(t, client.Delete(ctx))

	_, err := client.Get(ctx, "test:del")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestClient_Exists(t *testing.T) {
	client, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	ok, err := client.Exists(ctx, "test:exists")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, client.Set(ctx, "test:exists", "v", time.Minute))

	ok, err = client.Exists(ctx, "test:exists")
	require.NoError(t, err)
	assert.True(t, ok)
}
