package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/travelease/travelease-backend/internal/models"
	"github.com/travelease/travelease-backend/internal/store"
	"github.com/travelease/travelease-backend/pkg/utils"
)

// Auth verifies the Bearer token and re-resolves its subject against the
// users collection, so a token issued for a since-removed account is
// rejected. On success it stores userId and userRole in the context.
func Auth(s *store.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(401, gin.H{"message": "No token, authorization denied"})
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(tokenString, secret)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"message": "Token is not valid"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(401, gin.H{"message": "Token is not valid"})
			c.Abort()
			return
		}

		userID, _ := claims["id"].(string)
		role, _ := claims["role"].(string)

		var users []models.User
		if err := s.ReadCollection(c.Request.Context(), store.Users, &users); err != nil {
			c.JSON(401, gin.H{"message": "Token is not valid"})
			c.Abort()
			return
		}

		found := false
		for i := range users {
			if users[i].ID == userID {
				found = true
				break
			}
		}
		if !found {
			c.JSON(401, gin.H{"message": "Token is not valid"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// AdminOnly rejects requests whose authenticated role is not admin.
// It must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != models.RoleAdmin {
			c.JSON(403, gin.H{"message": "Access denied. Admin only."})
			c.Abort()
			return
		}
		c.Next()
	}
}
