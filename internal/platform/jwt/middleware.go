package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the authenticated user's
// id is stored.
const ContextUserID = "userID"

// unauthorizedBody is the uniform 401 response for auth failures. The message
// never distinguishes missing, malformed and expired tokens.
var unauthorizedBody = gin.H{"success": false, "error": "Not authorized to access this route"}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only. On success the user id is
// stored in the context; on any failure the request is aborted with 401 before
// it reaches store or cache logic.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
