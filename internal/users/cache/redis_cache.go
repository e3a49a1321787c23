package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"contra-api/internal/models"

	"github.com/go-redis/redis/v8"
)

// UserKeyPrefix namespaces cached detail records.
const UserKeyPrefix = "user:"

// RedisUserCache stores user detail projections in Redis as JSON.
type RedisUserCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisUserCache(client *redis.Client, ttl time.Duration) *RedisUserCache {
	return &RedisUserCache{
		Client: client,
		TTL:    ttl,
	}
}

func userKey(id string) string {
	return UserKeyPrefix + id
}

// GetUser returns the cached record, or nil on a miss.
func (c *RedisUserCache) GetUser(ctx context.Context, id string) (*models.UserDetail, error) {
	if c.Client == nil {
		return nil, fmt.Errorf("redis client not initialized")
	}

	raw, err := c.Client.Get(ctx, userKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user from Redis: %w", err)
	}

	var user models.UserDetail
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}

	return &user, nil
}

// SetUser stores user for TTL.
func (c *RedisUserCache) SetUser(ctx context.Context, user *models.UserDetail) error {
	if c.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := c.Client.Set(ctx, userKey(user.ID), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store user in Redis: %w", err)
	}

	return nil
}

// Connect dials addr and verifies the connection with a PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return client, nil
}
