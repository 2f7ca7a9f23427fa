package db

import (
	"time"

	"github.com/google/uuid"
)

// Interview status constants
const (
	InterviewScheduled = "Scheduled"
	InterviewCompleted = "Completed"
	InterviewCancelled = "Cancelled"
)

// Interview represents a scheduled interview for a candidate. A candidate
// may have repeated interviews; callers usually surface the latest.
type Interview struct {
	ID          uuid.UUID  `json:"id"`
	CandidateID uuid.UUID  `json:"candidate_id"`
	JobID       uuid.UUID  `json:"job_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	ScheduledBy *uuid.UUID `json:"scheduled_by,omitempty"`
	Location    string     `json:"location,omitempty"`
	MeetingLink string     `json:"meeting_link,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InterviewCreateInput is used when scheduling an interview
type InterviewCreateInput struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
	ScheduledAt time.Time
	ScheduledBy *uuid.UUID
	Location    string
	MeetingLink string
	Notes       string
}
