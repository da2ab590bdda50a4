package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/pkg/apperrors"
)

const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
	ContextUserRoleKey  = "userRole"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the Gin context. Websocket clients cannot set headers
// from the browser, so a "token" query parameter is accepted as well.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("invalid or expired token").WithError(err))
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
// Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRoleKey)
		if !exists {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}

		role, _ := roleVal.(models.UserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.NewForbiddenError("insufficient permissions"))
		c.Abort()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// GetUserID returns the authenticated caller's ID from the Gin context.
func GetUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// GetUserEmail returns the authenticated caller's email.
func GetUserEmail(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextUserEmailKey)
	if !exists {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}

// GetUserRole returns the authenticated caller's role.
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(ContextUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}

// MustGetUserID is for handlers that only run behind AuthMiddleware;
// it aborts with 401 if identity is somehow missing.
func MustGetUserID(c *gin.Context) (string, bool) {
	id, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		c.Abort()
	}
	return id, ok
}
