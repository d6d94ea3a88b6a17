// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// DefaultTTL is the expiry applied to cached user snapshots.
const DefaultTTL = 600 * time.Second

// CachingUserRepository decorates a UserRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The cache is strictly an optimization:
// every read has a store fallback, and cache failures never fail the request.
type CachingUserRepository struct {
	inner usecase.UserRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// Compile-time check that the decorator still satisfies UserRepository.
var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0 or negative, it defaults to DefaultTTL. A nil Redis client
// disables caching entirely.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository) *CachingUserRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachingUserRepository{inner: inner, rdb: rdb, ttl: ttl}
}

// userKey builds the cache key for a single user record.
func userKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// listKey builds the cache key for one page of the user listing.
func listKey(page, limit int) string {
	return fmt.Sprintf("users:page=%d:limit=%d", page, limit)
}

// Create passes through to the store. List pages cached before the create
// stay valid until their TTL expires; this staleness window is accepted.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	return c.inner.Create(ctx, u)
}

// FindByID retrieves a user, checking the cache first and falling back to the
// store on a miss. A successful store read populates the cache best-effort.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := userKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		// Delete corrupted cache entry.
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("cache read failed, falling back to store", "key", key, "error", err)
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, u)
	return u, nil
}

// FindByEmail is not cached; it passes through to the store.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// List retrieves one page of users, checking the cache first.
func (c *CachingUserRepository) List(ctx context.Context, page, limit int) ([]entity.User, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, page, limit)
	}

	key := listKey(page, limit)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("cache read failed, falling back to store", "key", key, "error", err)
	}

	out, err := c.inner.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, out)
	return out, nil
}

// Update writes through to the store, then synchronously invalidates the
// single-record cache entry so no later read observes the pre-update snapshot.
func (c *CachingUserRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	u, err := c.inner.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, userKey(id))
	return u, nil
}

// Delete removes the user from the store and invalidates its cache entry.
func (c *CachingUserRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, userKey(id))
	return nil
}

// set stores a value in the cache. Failures are logged, never returned.
func (c *CachingUserRepository) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}

// invalidate deletes a cache key. Idempotent on missing keys; failures are logged.
func (c *CachingUserRepository) invalidate(ctx context.Context, key string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("cache invalidation failed", "key", key, "error", err)
	}
}
