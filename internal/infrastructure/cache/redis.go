package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/kardex-api/internal/application/report"
)

var _ report.Cache = (*RedisCache)(nil)

// RedisCache implementación Redis del puerto report.Cache. Cachea el
// read-model de reportes; nunca toca el ledger ni los saldos.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache crea el cliente y verifica la conexión con un PING.
func NewRedisCache(ctx context.Context, addr, password string) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{rdb: rdb}, nil
}

// Get recupera el valor de una clave; report.ErrCacheMiss si no existe.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", report.ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set escribe una clave con expiración.
func (c *RedisCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Delete elimina una clave (no es error si no existe).
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// Close cierra la conexión.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
