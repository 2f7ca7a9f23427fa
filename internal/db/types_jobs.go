package db

import (
	"time"

	"github.com/google/uuid"
)

// Job status constants
const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

// Job represents a job posting created by an employer-role user.
// Jobs are never hard-deleted; closing a job is a status change.
type Job struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Department   string     `json:"department"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	Status       string     `json:"status"`
	PostedAt     time.Time  `json:"posted_at"`
	PostedBy     *uuid.UUID `json:"posted_by,omitempty"`
	SourceURL    *string    `json:"source_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// JobCreateInput is used when creating a new job posting
type JobCreateInput struct {
	Title        string
	Department   string
	Description  string
	Requirements []string
	PostedBy     *uuid.UUID
	SourceURL    string
}

// IsOpen returns true if the job is accepting applications
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}
