package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/travelease/travelease-backend/internal/models"
	"github.com/travelease/travelease-backend/internal/store"
	"github.com/travelease/travelease-backend/pkg/utils"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// publicUser strips the password hash from API responses.
func publicUser(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	}
}

// Register creates an account and signs the caller in. Email is the
// uniqueness key; the role defaults to user when not supplied.
func Register(s *store.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}

		var users []models.User
		if err := s.ReadCollection(c.Request.Context(), store.Users, &users); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		for i := range users {
			if users[i].Email == input.Email {
				c.JSON(400, gin.H{"message": "User already exists"})
				return
			}
		}

		role := input.Role
		if role == "" {
			role = models.RoleUser
		}

		user := models.User{
			ID:       utils.NewID(),
			Username: input.Username,
			Email:    input.Email,
			Role:     role,
		}
		if err := user.HashPassword(input.Password); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		users = append(users, user)
		if err := s.WriteCollection(c.Request.Context(), store.Users, users); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		token, err := utils.GenerateToken(&user, secret)
		if err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(201, gin.H{
			"token": token,
			"user":  publicUser(&user),
		})
	}
}

// Login authenticates by email and password. Unknown email and wrong
// password answer identically so the response does not leak which
// accounts exist.
func Login(s *store.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}

		var users []models.User
		if err := s.ReadCollection(c.Request.Context(), store.Users, &users); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		var user *models.User
		for i := range users {
			if users[i].Email == input.Email {
				user = &users[i]
				break
			}
		}
		if user == nil {
			c.JSON(400, gin.H{"message": "Invalid credentials"})
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(400, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(user, secret)
		if err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"token": token,
			"user":  publicUser(user),
		})
	}
}
