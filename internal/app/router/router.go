package router

import (
	"github.com/gin-gonic/gin"

	authhandler "user_backend/internal/feature/auth/transport/handler"
	usershandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/platform/http/handler"
	jwtmw "user_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with the full route table. All /api/v1
// routes except register and login require a valid bearer token; an invalid
// token short-circuits with 401 before any store or cache access.
func NewRouter(auth *authhandler.AuthHandler, users *usershandler.UserHandler,
	verifier jwtmw.Verifier, rateLimit gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(rateLimit)

	r.GET("/healthz", handler.Health)

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", auth.Register)
	v1.POST("/auth/login", auth.Login)

	authed := v1.Group("/")
	authed.Use(jwtmw.AuthRequired(verifier))
	{
		authed.GET("/auth/me", auth.Me)
		authed.GET("/users", users.List)
		authed.GET("/users/:id", users.Get)
		authed.POST("/users", users.Create)
		authed.PUT("/users/:id", users.Update)
		authed.DELETE("/users/:id", users.Delete)
	}

	return r
}
