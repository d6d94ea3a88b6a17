// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/adapters"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available the GORM repository is wrapped with the caching
// decorator; otherwise reads always go to the store.
func NewUserRepository(rdb *redis.Client, db *gorm.DB) usecase.UserRepository {
	repo := adapters.NewUserGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingUserRepository(rdb, cache.DefaultTTL, repo)
}
