// Package actions implements the recruiting workflows behind the HTTP API:
// applying to a job, scheduling interviews, moving candidates through the
// pipeline, and re-running the match analysis. Each action validates its
// request, touches the store, and appends activity records where the pipeline
// changes.
package actions

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/llm"
)

// Store is the subset of the database layer the actions need. *db.DB
// satisfies it; tests substitute a fake.
type Store interface {
	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*db.Candidate, error)
	CreateCandidate(ctx context.Context, input *db.CandidateCreateInput) (uuid.UUID, error)
	UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateCandidateMatch(ctx context.Context, id uuid.UUID, score int, reasoning string) error
	ListCandidatesByJob(ctx context.Context, jobID uuid.UUID) ([]db.Candidate, error)
	CreateInterview(ctx context.Context, input *db.InterviewCreateInput) (uuid.UUID, error)
	GetInterview(ctx context.Context, id uuid.UUID) (*db.Interview, error)
	AppendActivity(ctx context.Context, input *db.ActivityCreateInput) (uuid.UUID, error)
	CountActivities(ctx context.Context, candidateID uuid.UUID, activityType string) (int, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	CreateUser(ctx context.Context, input *db.UserCreateInput) error
	UpdateUser(ctx context.Context, u *db.User) error
}

// EventPublisher forwards activity events to downstream consumers. Publish
// failures never fail an action.
type EventPublisher interface {
	PublishActivity(ctx context.Context, activityType string, payload map[string]any) error
}

// Service provides the recruiting actions with their dependencies injected.
type Service struct {
	store     Store
	llm       llm.Client
	events    EventPublisher
	validator *validator.Validate
}

// New creates a Service. events may be nil when no broker is configured.
func New(store Store, client llm.Client, events EventPublisher) *Service {
	return &Service{
		store:     store,
		llm:       client,
		events:    events,
		validator: validator.New(),
	}
}
