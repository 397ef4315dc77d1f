// Package redis implements the explain.CacheStorage interface on top of a
// Redis server.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
	ttl  time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with a ping. A
// positive ttl bounds the lifetime of stored explanation entries; zero keeps
// them until explicitly invalidated.
func NewClient(ctx context.Context, addr, username, password string, db int, ttl time.Duration) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
		ttl:  ttl,
	}, nil
}
