package db

import (
	"time"

	"github.com/google/uuid"
)

// Candidate status constants. A candidate is an application record tying a
// person to one job posting, not a standalone person profile.
const (
	StatusApplied     = "Applied"
	StatusShortlisted = "Shortlisted"
	StatusInterviewed = "Interviewed"
	StatusHired       = "Hired"
	StatusRejected    = "Rejected"
)

// statusTransitions is the allowed pipeline: forward-only through
// Applied -> Shortlisted -> Interviewed -> Hired, with Rejected reachable
// from any non-terminal state. Hired and Rejected are terminal.
var statusTransitions = map[string][]string{
	StatusApplied:     {StatusShortlisted, StatusInterviewed, StatusRejected},
	StatusShortlisted: {StatusInterviewed, StatusRejected},
	StatusInterviewed: {StatusHired, StatusRejected},
	StatusHired:       {},
	StatusRejected:    {},
}

// ValidStatus reports whether s is one of the five pipeline statuses.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether a candidate may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Candidate represents a job application record
type Candidate struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	ResumeText     string    `json:"resume_text,omitempty"`
	ResumeURL      *string   `json:"resume_url,omitempty"`
	JobID          uuid.UUID `json:"job_id"`
	Status         string    `json:"status"`
	AppliedAt      time.Time `json:"applied_at"`
	MatchScore     int       `json:"match_score"`
	MatchReasoning string    `json:"match_reasoning,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CandidateCreateInput is used when recording a new application
type CandidateCreateInput struct {
	Name           string
	Email          string
	Phone          string
	Skills         []string
	ResumeText     string
	ResumeURL      string
	JobID          uuid.UUID
	MatchScore     int
	MatchReasoning string
}

// ListCandidatesOptions contains filters for listing candidates
type ListCandidatesOptions struct {
	JobID  *uuid.UUID
	Status *string
	Limit  int
	Offset int
}
