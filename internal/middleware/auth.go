// Package middleware provides HTTP middleware for the KPA form service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kpa-platform/form-service/internal/service"
)

const (
	// ClaimsKey is the gin context key holding the verified token claims.
	ClaimsKey = "auth_claims"
)

// UnauthorizedResponse is the 401 payload. Its message is the same for a
// missing, malformed and expired token.
type UnauthorizedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, UnauthorizedResponse{
		Success: false,
		Message: "invalid authentication credentials",
	})
}

// RequireAuth returns middleware that verifies the bearer token on the
// Authorization header. Requests with a missing, malformed or expired token
// are rejected with 401 before any handler or repository code runs. The
// response never says which check failed.
func RequireAuth(tokenService service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := tokenService.Validate(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the gin context.
// The boolean is false when the claims are missing or carry a garbled id.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return uuid.Nil, false
	}
	claims, ok := value.(*service.Claims)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
