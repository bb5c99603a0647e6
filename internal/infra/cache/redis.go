package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// New returns a Redis client, or nil when Redis is unconfigured or
// unreachable. Callers treat a nil client as "cache disabled".
func New(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("redis: connect failed, caching disabled: %v", err)
		return nil
	}
	return client
}
