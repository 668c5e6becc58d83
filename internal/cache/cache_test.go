package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

func sampleCart(t *testing.T) domain.Cart {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cart := domain.NewCart("u-1", now)
	cart.AddQuantity("p-1", 2, decimal.RequireFromString("10.50"), now)
	cart.AddQuantity("p-2", 1, decimal.RequireFromString("3.25"), now)
	cart.Version = 4
	return cart
}

func TestEncodeDecodeCart_RecomputesTotal(t *testing.T) {
	cart := sampleCart(t)

	raw, err := encodeCart(cart)
	require.NoError(t, err)

	restored, err := decodeCart(raw)
	require.NoError(t, err)
	require.Equal(t, cart.ID, restored.ID)
	require.Equal(t, int64(4), restored.Version)
	require.True(t, restored.TotalPrice().Equal(decimal.RequireFromString("24.25")))
	require.Len(t, restored.Items(), 2)
	require.Equal(t, "p-1", restored.Items()[0].ProductID)

	_, err = decodeCart([]byte("{broken"))
	require.Error(t, err)
}

func TestMemory_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	_, ok, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, sampleCart(t)))
	got, ok, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, got.TotalPrice().Equal(decimal.RequireFromString("24.25")))

	require.NoError(t, c.Invalidate(ctx, "u-1"))
	_, ok, _ = c.Get(ctx, "u-1")
	require.False(t, ok)
}

func TestMemory_SetKeepsNewerVersion(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	newer := sampleCart(t)
	require.NoError(t, c.Set(ctx, newer))

	older := sampleCart(t)
	older.Version = 3
	older.Remove("p-2", time.Now())
	require.NoError(t, c.Set(ctx, older))

	got, ok, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), got.Version)
	require.Len(t, got.Items(), 2)

	newer.Version = 5
	require.NoError(t, c.Set(ctx, newer))
	got, _, _ = c.Get(ctx, "u-1")
	require.Equal(t, int64(5), got.Version)
}

func TestMemory_ExpiredEntryDoesNotBlockOlderVersion(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Second)
	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, sampleCart(t)))
	current = current.Add(2 * time.Second)

	older := sampleCart(t)
	older.Version = 1
	require.NoError(t, c.Set(ctx, older))
	got, ok, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), got.Version)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Second)
	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, sampleCart(t)))
	current = current.Add(2 * time.Second)

	_, ok, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c CartCache = Noop{}
	require.NoError(t, c.Set(ctx, sampleCart(t)))
	_, ok, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, c.Invalidate(ctx, "u-1"))
}

func TestRedisCartCache_Integration(t *testing.T) {
	addr := os.Getenv("SHOP_REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("SHOP_REDIS_TEST_ADDR is not set")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCartCache(client, time.Minute)
	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Invalidate(ctx, "u-1"))

	require.NoError(t, c.Set(ctx, sampleCart(t)))
	got, ok, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), got.Version)

	ttl, err := client.TTL(ctx, cartKey("u-1")).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	older := sampleCart(t)
	older.Version = 3
	require.NoError(t, c.Set(ctx, older))
	got, _, err = c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, int64(4), got.Version, "older snapshot must not replace newer one")

	require.NoError(t, client.HSet(ctx, cartKey("u-1"), fieldPayload, "garbage").Err())
	_, ok, err = c.Get(ctx, "u-1")
	require.NoError(t, err)
	require.False(t, ok)
	require.ErrorIs(t, client.Get(ctx, cartKey("u-1")).Err(), redis.Nil)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := NewRedisClient(ctx, "127.0.0.1:1", "", 0)
	require.Error(t, err)
}
