package cache

import (
	"context"
	"fmt"

	"contra-api/internal/logger"
	"contra-api/internal/models"
	users "contra-api/internal/users/service"
)

type UserCache interface {
	GetUser(ctx context.Context, id string) (*models.UserDetail, error)
	SetUser(ctx context.Context, user *models.UserDetail) error
}

// CachedUserDB puts a read-through cache in front of detail lookups.
// Misses are never cached and cache failures fall through to the store.
type CachedUserDB struct {
	Next   users.UserDBLayer
	Cache  UserCache
	Logger *logger.Logger
}

var _ users.UserDBLayer = (*CachedUserDB)(nil)

func NewCachedUserDB(next users.UserDBLayer, cache UserCache, log *logger.Logger) *CachedUserDB {
	return &CachedUserDB{Next: next, Cache: cache, Logger: log}
}

func (c *CachedUserDB) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return c.Next.ListUsers(ctx)
}

func (c *CachedUserDB) GetUserByID(ctx context.Context, id string) (*models.UserDetail, error) {
	cached, err := c.Cache.GetUser(ctx, id)
	if err != nil {
		c.Logger.Warn("CACHE", fmt.Sprintf("Lookup for user %s failed: %v", id, err))
	} else if cached != nil {
		c.Logger.LogCache("HIT", userKey(id), "served from cache")
		return cached, nil
	}

	user, err := c.Next.GetUserByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	if err := c.Cache.SetUser(ctx, user); err != nil {
		c.Logger.Warn("CACHE", fmt.Sprintf("Storing user %s failed: %v", id, err))
	} else {
		c.Logger.LogCache("SET", userKey(id), "stored after miss")
	}

	return user, nil
}
