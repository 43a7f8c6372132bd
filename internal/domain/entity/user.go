package entity

import "time"

// Roles available to operators.
const (
	RoleAdmin = "admin"
)

// User is an operator account of the dashboard.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
