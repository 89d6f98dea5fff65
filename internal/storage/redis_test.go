package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStorage on top of it
func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	s := NewRedisStorage(client, "storefront")

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return s, mr, cleanup
}

func TestRedisGet_Success(t *testing.T) {
	s, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set("storefront:cart-state-v1", `{"cart":{"items":[],"isOpen":true}}`))

	got, err := s.Get(context.Background(), "cart-state-v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cart":{"items":[],"isOpen":true}}`, string(got))
}

func TestRedisGet_Missing(t *testing.T) {
	s, _, cleanup := setupTestRedis(t)
	defer cleanup()

	got, err := s.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func TestRedisSet_NoExpiry(t *testing.T) {
	s, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	err := s.Set(context.Background(), "cart-state-v1", []byte(`{"cart":null}`))
	require.NoError(t, err)

	stored, err := mr.Get("storefront:cart-state-v1")
	require.NoError(t, err)
	assert.Equal(t, `{"cart":null}`, stored)
	assert.Zero(t, mr.TTL("storefront:cart-state-v1"))
}

func TestRedisDelete(t *testing.T) {
	s, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set("storefront:k", "v"))
	require.NoError(t, s.Delete(context.Background(), "k"))
	assert.False(t, mr.Exists("storefront:k"))

	// deleting a missing key is not an error
	assert.NoError(t, s.Delete(context.Background(), "k"))
}

func TestRedis_ServerDown(t *testing.T) {
	s, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Close()

	_, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, s.Set(context.Background(), "k", []byte("v")), "redis set failed")
}

func TestRedisKey_Format(t *testing.T) {
	assert.Equal(t, "storefront:cart-state-v1", RedisStorage{prefix: "storefront"}.redisKey("cart-state-v1"))
	assert.Equal(t, "cart-state-v1", RedisStorage{}.redisKey("cart-state-v1"))
}
