package models

import "time"

// AccessLevel represents a user's authorization scope
type AccessLevel string

// Known access levels, ordered from least to most privileged
const (
	AccessLevelEmployee   AccessLevel = "employee"
	AccessLevelSupervisor AccessLevel = "supervisor"
	AccessLevelManager    AccessLevel = "manager"
)

// Valid reports whether the access level is one of the known levels
func (l AccessLevel) Valid() bool {
	switch l {
	case AccessLevelEmployee, AccessLevelSupervisor, AccessLevelManager:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"` // Never serialize password hash
	AccessLevel  AccessLevel `json:"access_level"`
	CreatedAt    time.Time   `json:"created_at"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	AccessLevel AccessLevel `json:"access_level"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
