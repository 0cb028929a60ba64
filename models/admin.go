package models

import "time"

const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// AdminUser represents a dashboard account.
type AdminUser struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "owner" or "admin"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	LastLoginAt  time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
}

// AdminCredentials defines the sign-in payload.
type AdminCredentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminUserInput defines the payload for creating or updating a dashboard account.
type AdminUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
