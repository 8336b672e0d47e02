package entity

import "time"

// Staff roles. Admin manages users; staff create and print invoices.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an internal staff account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
