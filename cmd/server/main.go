package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"user_backend/internal/app/di"
	"user_backend/internal/app/router"
	"user_backend/internal/config"
	authhandler "user_backend/internal/feature/auth/transport/handler"
	authusecase "user_backend/internal/feature/auth/usecase"
	usersadapters "user_backend/internal/feature/users/adapters"
	usershandler "user_backend/internal/feature/users/transport/handler"
	usersusecase "user_backend/internal/feature/users/usecase"
	"user_backend/internal/middleware"
	infradb "user_backend/internal/platform/db"
	jwtmw "user_backend/internal/platform/jwt"
	"user_backend/internal/platform/queue"
	infraredis "user_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// DB
	db := infradb.OpenDB(cfg.Database)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Queue
	var events usersusecase.EventPublisher
	if q, err := queue.Connect(cfg.Queue.URI); err != nil {
		log.Println("[WARN] AMQP broker unavailable. Running without notifications.")
	} else {
		defer q.Close()
		events = queue.NewUserEvents(q)
	}

	// Tokens
	tokens := jwtmw.NewTokens(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireDays)*24*time.Hour)

	// Repository (cached when Redis is available)
	userRepo := di.NewUserRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(usersadapters.NewUserGorm(db), tokens)
	userUC := usersusecase.NewUserUsecase(userRepo, events)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := usershandler.NewUserHandler(userUC)

	r := router.NewRouter(authH, userH, tokens,
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
