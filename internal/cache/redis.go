package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// DefaultTTL: время жизни снимка корзины в Redis.
const DefaultTTL = 10 * time.Minute

const fieldPayload = "p"

// setIfNotOlder записывает снимок, только если сохранённая версия не больше новой.
// KEYS[1]: ключ корзины; ARGV: версия, JSON-снимок, TTL в миллисекундах.
var setIfNotOlder = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'v')
if current and tonumber(current) > tonumber(ARGV[1]) then
  return 0
end
redis.call('HSET', KEYS[1], 'v', ARGV[1], 'p', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// RedisCartCache хранит корзины в Redis: hash с версией и JSON-снимком, с TTL.
type RedisCartCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCartCache создаёт кеш поверх готового клиента.
func NewRedisCartCache(client redis.UniversalClient, ttl time.Duration) *RedisCartCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCartCache{client: client, ttl: ttl}
}

// NewRedisClient открывает клиент и проверяет соединение.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (c *RedisCartCache) Get(ctx context.Context, userID string) (domain.Cart, bool, error) {
	raw, err := c.client.HGet(ctx, cartKey(userID), fieldPayload).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, false, nil
	}
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("redis get cart %s: %w", userID, err)
	}

	cart, err := decodeCart(raw)
	if err != nil {
		// битую запись просто выбрасываем
		_ = c.client.Del(ctx, cartKey(userID)).Err()
		return domain.Cart{}, false, nil
	}
	return cart, true, nil
}

func (c *RedisCartCache) Set(ctx context.Context, cart domain.Cart) error {
	payload, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cart.UserID, err)
	}

	args := []any{strconv.FormatInt(cart.Version, 10), payload, c.ttl.Milliseconds()}
	if err := setIfNotOlder.Run(ctx, c.client, []string{cartKey(cart.UserID)}, args...).Err(); err != nil {
		return fmt.Errorf("redis set cart %s: %w", cart.UserID, err)
	}
	return nil
}

func (c *RedisCartCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete cart %s: %w", userID, err)
	}
	return nil
}

// Ping используется health-проверкой готовности.
func (c *RedisCartCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

var _ CartCache = (*RedisCartCache)(nil)
