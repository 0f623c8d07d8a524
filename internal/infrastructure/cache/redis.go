package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/pkg/config"
)

var _ ports.Cache = (*RedisCache)(nil)

// RedisCache caché compartido sobre Redis. Cada etiqueta es un SET con las claves que la usan.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache conecta con Redis y verifica la conexión.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return NewRedisCacheWithClient(client, cfg.Prefix), nil
}

// NewRedisCacheWithClient usa un cliente existente (tests o cliente compartido).
func NewRedisCacheWithClient(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "daftar:"
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) key(k string) string    { return c.prefix + "cache:" + k }
func (c *RedisCache) tagKey(t string) string { return c.prefix + "tag:" + t }

// Get devuelve el valor si existe.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

// Set guarda el valor con TTL y registra la clave en el SET de cada etiqueta.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	full := c.key(key)
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, full, value, ttl)
		for _, t := range tags {
			p.SAdd(ctx, c.tagKey(t), full)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// InvalidateTags borra las claves de cada etiqueta y el propio SET.
func (c *RedisCache) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, t := range tags {
		tk := c.tagKey(t)
		keys, err := c.client.SMembers(ctx, tk).Result()
		if err != nil {
			return fmt.Errorf("redis smembers %s: %w", t, err)
		}
		if err := c.client.Del(ctx, append(keys, tk)...).Err(); err != nil {
			return fmt.Errorf("redis del %s: %w", t, err)
		}
	}
	return nil
}

// Close cierra el cliente.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
