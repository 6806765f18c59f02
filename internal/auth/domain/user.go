package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account. Email is the unique lookup key used to resolve
// the bearer token subject.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         Role
	IsActive     bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserInput carries the fields needed to register a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
	IsActive bool
}
