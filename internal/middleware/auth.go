// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"coursehub/internal/models"
	"coursehub/pkg/auth"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)

// Auth returns a middleware that validates JWT tokens.
func Auth(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		claims, ok := validate(tokens, authHeader)
		if !ok {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func OptionalAuth(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := validate(tokens, c.GetHeader("Authorization")); ok {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not listed. It must run after Auth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(RoleKey)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "this route is restricted to "+strings.Join(roles, ", ")+" accounts")
		c.Abort()
	}
}

func validate(tokens auth.TokenManager, header string) (*auth.Claims, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, false
	}
	claims, err := tokens.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	if _, err := primitive.ObjectIDFromHex(claims.UserID); err != nil {
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(RoleKey, claims.Role)
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetActor returns the authenticated caller. ok is false for anonymous requests.
func GetActor(c *gin.Context) (actor models.Actor, ok bool) {
	id, err := primitive.ObjectIDFromHex(GetUserID(c))
	if err != nil {
		return models.Actor{}, false
	}
	return models.Actor{ID: id, Role: c.GetString(RoleKey)}, true
}
