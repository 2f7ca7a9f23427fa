package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

// ScheduleInterviewRequest schedules an interview for a candidate.
// ScheduledAt is an RFC 3339 timestamp.
type ScheduleInterviewRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
	ScheduledAt string    `json:"scheduled_at" validate:"required"`
	Location    string    `json:"location,omitempty"`
	MeetingLink string    `json:"meeting_link,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// ScheduleInterview creates an interview record, advances the candidate to
// Interviewed when they are still earlier in the pipeline, and appends an
// interview_scheduled activity. An unparseable date is a field-scoped
// validation error and nothing is written.
func (s *Service) ScheduleInterview(ctx context.Context, req *ScheduleInterviewRequest, actorID *uuid.UUID, actorName string) (*db.Interview, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, firstValidationError(err)
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, &ErrValidation{Field: "scheduled_at", Message: "must be an RFC 3339 timestamp"}
	}

	candidate, err := s.store.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, &ErrCandidateNotFound{CandidateID: req.CandidateID}
	}

	job, err := s.store.GetJob(ctx, candidate.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: candidate.JobID}
	}

	// Candidates can be interviewed repeatedly; the activity feed labels
	// each one with its round number.
	prior, err := s.store.CountActivities(ctx, candidate.ID, db.ActivityInterviewScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to count prior interviews: %w", err)
	}

	interviewID, err := s.store.CreateInterview(ctx, &db.InterviewCreateInput{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		ScheduledAt: scheduledAt,
		ScheduledBy: actorID,
		Location:    req.Location,
		MeetingLink: req.MeetingLink,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	if candidate.Status == db.StatusApplied || candidate.Status == db.StatusShortlisted {
		if err := s.store.UpdateCandidateStatus(ctx, candidate.ID, db.StatusInterviewed); err != nil {
			return nil, fmt.Errorf("failed to advance candidate status: %w", err)
		}
	}

	if _, err := s.store.AppendActivity(ctx, &db.ActivityCreateInput{
		Type:        db.ActivityInterviewScheduled,
		CandidateID: candidate.ID,
		JobID:       job.ID,
		ActorID:     actorID,
		ActorName:   actorName,
		Metadata: map[string]any{
			"scheduled_at": scheduledAt.Format(time.RFC3339),
			"round":        prior + 1,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to append activity: %w", err)
	}

	s.publish(ctx, db.ActivityInterviewScheduled, map[string]any{
		"candidate_id": candidate.ID.String(),
		"job_id":       job.ID.String(),
		"scheduled_at": scheduledAt.Format(time.RFC3339),
	})

	interview, err := s.store.GetInterview(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created interview: %w", err)
	}
	return interview, nil
}
