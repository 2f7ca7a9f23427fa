package actions

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

// UpdateStatus moves a candidate to a new pipeline status. The transition
// table is enforced: forward-only through the pipeline, Rejected reachable
// from any non-terminal state, terminal states immutable. Each successful
// change appends exactly one activity record.
func (s *Service) UpdateStatus(ctx context.Context, candidateID uuid.UUID, newStatus string, actorID *uuid.UUID, actorName string) (*db.Candidate, error) {
	if !db.ValidStatus(newStatus) {
		return nil, &ErrValidation{Field: "status", Message: "unknown status " + newStatus}
	}

	candidate, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, &ErrCandidateNotFound{CandidateID: candidateID}
	}

	if !db.CanTransition(candidate.Status, newStatus) {
		return nil, &ErrInvalidTransition{From: candidate.Status, To: newStatus}
	}

	if err := s.store.UpdateCandidateStatus(ctx, candidateID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	if activityType := db.ActivityForStatus(newStatus); activityType != "" {
		if _, err := s.store.AppendActivity(ctx, &db.ActivityCreateInput{
			Type:        activityType,
			CandidateID: candidateID,
			JobID:       candidate.JobID,
			ActorID:     actorID,
			ActorName:   actorName,
			Metadata:    map[string]any{"previous_status": candidate.Status},
		}); err != nil {
			return nil, fmt.Errorf("failed to append activity: %w", err)
		}

		s.publish(ctx, activityType, map[string]any{
			"candidate_id": candidateID.String(),
			"job_id":       candidate.JobID.String(),
			"status":       newStatus,
		})
	}

	updated, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated candidate: %w", err)
	}
	return updated, nil
}
