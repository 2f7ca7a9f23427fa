package db

import (
	"time"

	"github.com/google/uuid"
)

// Activity type constants. The activity log is append-only and drives the
// per-candidate notification feed.
const (
	ActivityApplicationReceived = "application_received"
	ActivityShortlisted         = "shortlisted"
	ActivityInterviewScheduled  = "interview_scheduled"
	ActivityHired               = "hired"
	ActivityRejected            = "rejected"
)

// ActivityForStatus maps a candidate status to the activity type appended
// when a candidate enters that status. Returns "" for statuses that do not
// produce a feed entry.
func ActivityForStatus(status string) string {
	switch status {
	case StatusShortlisted:
		return ActivityShortlisted
	case StatusInterviewed:
		return ActivityInterviewScheduled
	case StatusHired:
		return ActivityHired
	case StatusRejected:
		return ActivityRejected
	}
	return ""
}

// Activity represents an audit/notification record
type Activity struct {
	ID          uuid.UUID      `json:"id"`
	Type        string         `json:"type"`
	CandidateID uuid.UUID      `json:"candidate_id"`
	JobID       uuid.UUID      `json:"job_id"`
	ActorID     *uuid.UUID     `json:"actor_id,omitempty"`
	ActorName   string         `json:"actor_name,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ActivityCreateInput is used when appending an activity record
type ActivityCreateInput struct {
	Type        string
	CandidateID uuid.UUID
	JobID       uuid.UUID
	ActorID     *uuid.UUID
	ActorName   string
	Metadata    map[string]any
}
