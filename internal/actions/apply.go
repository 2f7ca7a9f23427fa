package actions

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/flows"
)

// AIFailedReasoning is the fixed reasoning recorded when the match analysis
// fails during an application. The application is still recorded; AI failure
// never blocks the write.
const AIFailedReasoning = "AI analysis failed. The application was recorded without an automated match score."

// ApplyRequest is a job application submission.
type ApplyRequest struct {
	JobID      uuid.UUID `json:"job_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=1"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      string    `json:"phone,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	ResumeText string    `json:"resume_text,omitempty"`
	ResumeURL  string    `json:"resume_url,omitempty"`
}

// Apply records a job application. The matching pipeline runs against the
// submitted resume text before the write; if the model call fails the
// candidate is still created with a zero score and the fixed fallback
// reasoning. Applying to a missing job is terminal and writes nothing.
func (s *Service) Apply(ctx context.Context, req *ApplyRequest) (*db.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, firstValidationError(err)
	}

	job, err := s.store.GetJob(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: req.JobID}
	}
	if !job.IsOpen() {
		return nil, &ErrJobClosed{JobID: req.JobID}
	}

	score := 0
	reasoning := AIFailedReasoning
	result, err := flows.MatchResumeToJob(ctx, s.llm, req.ResumeText, job.Description)
	if err != nil {
		log.Printf("[actions] match failed for application to job %s: %v", job.ID, err)
	} else {
		score = result.MatchScore
		reasoning = result.Reasoning
	}

	candidateID, err := s.store.CreateCandidate(ctx, &db.CandidateCreateInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Skills:         req.Skills,
		ResumeText:     req.ResumeText,
		ResumeURL:      req.ResumeURL,
		JobID:          job.ID,
		MatchScore:     score,
		MatchReasoning: reasoning,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	if _, err := s.store.AppendActivity(ctx, &db.ActivityCreateInput{
		Type:        db.ActivityApplicationReceived,
		CandidateID: candidateID,
		JobID:       job.ID,
		ActorName:   req.Name,
		Metadata:    map[string]any{"match_score": score},
	}); err != nil {
		return nil, fmt.Errorf("failed to append activity: %w", err)
	}

	s.publish(ctx, db.ActivityApplicationReceived, map[string]any{
		"candidate_id": candidateID.String(),
		"job_id":       job.ID.String(),
		"job_title":    job.Title,
	})

	candidate, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created candidate: %w", err)
	}
	return candidate, nil
}

// publish forwards an activity event when a broker is configured. Failures
// are logged and swallowed.
func (s *Service) publish(ctx context.Context, activityType string, payload map[string]any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishActivity(ctx, activityType, payload); err != nil {
		log.Printf("[events] publish %s failed: %v", activityType, err)
	}
}
