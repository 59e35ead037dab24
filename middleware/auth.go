package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mouvement-citoyen/adhesion-api/utils"
)

const (
	contextMemberID = "member_id"
	contextEmail    = "member_email"
	contextRole     = "member_role"
)

// AuthMiddleware validates the Bearer token and stores the member's
// identity on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(contextMemberID, claims.MemberID)
		c.Set(contextEmail, claims.Email)
		c.Set(contextRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects members that do not carry the admin role.
// Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetMemberID returns the authenticated member's ID, or "".
func GetMemberID(c *gin.Context) string {
	return c.GetString(contextMemberID)
}

// GetEmail returns the authenticated member's email, or "".
func GetEmail(c *gin.Context) string {
	return c.GetString(contextEmail)
}

// GetRole returns the authenticated member's role, or "".
func GetRole(c *gin.Context) string {
	return c.GetString(contextRole)
}
