package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client, err := NewClient(&Config{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestNewClient(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		client, err := NewClient(nil)
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("applies defaults", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		assert.Equal(t, defaultPoolSize, client.config.PoolSize)
		assert.Equal(t, defaultDialTimeout, client.config.DialTimeout)
		assert.Equal(t, defaultOpTimeout, client.config.OpTimeout)
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		client, err := NewClient(&Config{Address: addr, DialTimeout: time.Second})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), addr)
		assert.Nil(t, client)
	})
}

func TestClient_Health(t *testing.T) {
	client, mr := setupTestRedis(t)

	assert.NoError(t, client.Health())

	mr.Close()
	assert.Error(t, client.Health())
}

func TestClient_KeyValue(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	t.Run("bytes round trip", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "search:abc", []byte(`[{"alias":"jdoe"}]`), 0))
		got, err := client.Get(ctx, "search:abc")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"alias":"jdoe"}]`, string(got))
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := client.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expiration", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "short", []byte("x"), time.Second))
		assert.Equal(t, time.Second, mr.TTL("short"))

		mr.FastForward(2 * time.Second)
		_, err := client.Get(ctx, "short")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, client.Set(ctx, "b", []byte("2"), 0))
		require.NoError(t, client.Delete(ctx, "a", "b"))
		assert.False(t, mr.Exists("a"))
		assert.False(t, mr.Exists("b"))
		assert.NoError(t, client.Delete(ctx))
	})
}

func TestClient_ServerDown(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())

	client, err := NewClient(&Config{Address: mr.Addr(), OpTimeout: 100 * time.Millisecond})
	require.NoError(t, err)
	defer client.Close()

	mr.Close()

	_, err = client.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Error(t, client.Set(context.Background(), "k", []byte("v"), 0))
}
