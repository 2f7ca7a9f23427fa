package db

import (
	"time"

	"github.com/google/uuid"
)

// User role constants
const (
	RoleAdmin     = "Admin"
	RoleHR        = "HR"
	RoleManager   = "Manager"
	RoleCandidate = "Candidate"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleCandidate:
		return true
	}
	return false
}

// RecruiterRole reports whether r may manage jobs and candidates.
func RecruiterRole(r string) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager:
		return true
	}
	return false
}

// UserCreateInput is used when provisioning a profile row for an
// identity-provider user. ID is the subject from the verified token.
type UserCreateInput struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

// User represents a user profile. Authentication lives with the external
// identity provider; this record only carries profile data and role.
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Department      string    `json:"department,omitempty"`
	Company         string    `json:"company,omitempty"`
	ResumeURL       *string   `json:"resume_url,omitempty"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
