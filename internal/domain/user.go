package domain

import "time"

// Role values are open strings; the admission layer only recognizes
// RoleAdmin, everything else is treated as non-admin.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the stored credential record for an account.
type User struct {
	ID           string
	Email        string
	Username     string
	NameFull     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
