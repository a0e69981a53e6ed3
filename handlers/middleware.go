package handlers

import (
	"net/http"
	"strings"

	"roomspace-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextUserIDKey = "auth_user_id"

// RequireAuth verifies the bearer token and stores the caller's user id on
// the request context. A missing token is 401; a present but invalid or
// expired token is 403.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Access token required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Access token required",
			})
			return
		}

		claims, err := auth.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Invalid or expired token",
			})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated caller's id. Only valid on routes
// behind RequireAuth.
func currentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(contextUserIDKey)
	id, _ := v.(uuid.UUID)
	return id
}
