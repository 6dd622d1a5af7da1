package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role constants for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. Password holds the bcrypt hash and is
// persisted with the record; handlers must never include it in responses.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HashPassword replaces Password with its bcrypt hash.
func (u *User) HashPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
