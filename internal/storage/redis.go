package storage

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"
)

// RedisBackend stores items as plain Redis strings.
type RedisBackend struct {
	pool *redis.Pool
}

// NewRedisPool creates a connection pool for the Redis server at addr.
func NewRedisPool(addr string, maxIdle int) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     maxIdle,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
	}
}

func NewRedisBackend(pool *redis.Pool) *RedisBackend {
	return &RedisBackend{pool: pool}
}

// Close releases the pool's connections.
func (b *RedisBackend) Close() error {
	return b.pool.Close()
}

func (b *RedisBackend) GetItem(key string) (string, bool, error) {
	conn := b.pool.Get()
	defer conn.Close()

	value, err := redis.String(conn.Do("GET", key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (b *RedisBackend) SetItem(key, value string) error {
	conn := b.pool.Get()
	defer conn.Close()

	_, err := conn.Do("SET", key, value)
	return err
}

func (b *RedisBackend) RemoveItem(key string) error {
	conn := b.pool.Get()
	defer conn.Close()

	_, err := conn.Do("DEL", key)
	return err
}
