// Package store provides the string key-value backends used to persist user
// preferences across restarts.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("kv miss")

// KV is a scoped string key-value store. A zero ttl never expires.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RedisKV stores keys in Redis under an optional prefix.
type RedisKV struct {
	c      *redis.Client
	prefix string
}

func NewRedisKV(c *redis.Client, prefix string) *RedisKV {
	return &RedisKV{c: c, prefix: prefix}
}

func (r *RedisKV) key(k string) string { return r.prefix + k }

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.c.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.c.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.c.Del(ctx, r.key(key)).Err()
}
