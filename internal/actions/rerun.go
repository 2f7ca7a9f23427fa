package actions

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/flows"
)

// rerunConcurrency bounds parallel model calls during a bulk re-match.
const rerunConcurrency = 4

// RerunMatch re-runs the match analysis for one candidate and persists the
// new score and reasoning. Like Apply, a model failure degrades to a zero
// score with the fixed fallback reasoning instead of failing the action.
func (s *Service) RerunMatch(ctx context.Context, candidateID uuid.UUID) (*db.Candidate, error) {
	candidate, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, &ErrCandidateNotFound{CandidateID: candidateID}
	}

	job, err := s.store.GetJob(ctx, candidate.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: candidate.JobID}
	}

	score, reasoning := s.matchOrDegrade(ctx, candidate, job)
	if err := s.store.UpdateCandidateMatch(ctx, candidateID, score, reasoning); err != nil {
		return nil, fmt.Errorf("failed to persist match: %w", err)
	}

	updated, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated candidate: %w", err)
	}
	return updated, nil
}

// RerunMatchForJob re-runs the match analysis for every candidate of a job.
// Model calls run concurrently with a bounded group; per-candidate AI
// failures degrade, store failures abort the batch. Returns the number of
// candidates updated.
func (s *Service) RerunMatchForJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return 0, &ErrJobNotFound{JobID: jobID}
	}

	candidates, err := s.store.ListCandidatesByJob(ctx, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to list candidates: %w", err)
	}

	var updated atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rerunConcurrency)

	for i := range candidates {
		candidate := candidates[i]
		g.Go(func() error {
			score, reasoning := s.matchOrDegrade(gctx, &candidate, job)
			if err := s.store.UpdateCandidateMatch(gctx, candidate.ID, score, reasoning); err != nil {
				return fmt.Errorf("failed to persist match for %s: %w", candidate.ID, err)
			}
			updated.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(updated.Load()), err
	}
	return int(updated.Load()), nil
}

// matchOrDegrade runs the matching flow, falling back to the fixed failure
// reasoning when the model call errors.
func (s *Service) matchOrDegrade(ctx context.Context, candidate *db.Candidate, job *db.Job) (int, string) {
	result, err := flows.MatchResumeToJob(ctx, s.llm, candidate.ResumeText, job.Description)
	if err != nil {
		log.Printf("[actions] match failed for candidate %s: %v", candidate.ID, err)
		return 0, AIFailedReasoning
	}
	return result.MatchScore, result.Reasoning
}
