package api

import (
	"net/http"
	"strings"

	"github.com/avevent/backend/internal/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "authClaims"

// RequireStaff rejects requests without a valid bearer token belonging to a
// STAFF or ADMIN account.
func RequireStaff(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			unauthorized(c, "Authentication required")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}
		if claims.Role != "ADMIN" && claims.Role != "STAFF" {
			unauthorized(c, "Insufficient permissions")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
