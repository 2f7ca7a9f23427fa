package actions

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/llm"
)

// fakeStore is an in-memory Store for tests. Safe for concurrent use so the
// bulk re-match tests can exercise the bounded group.
type fakeStore struct {
	mu         sync.Mutex
	jobs       map[uuid.UUID]*db.Job
	candidates map[uuid.UUID]*db.Candidate
	interviews map[uuid.UUID]*db.Interview
	users      map[uuid.UUID]*db.User
	activities []db.Activity

	failCreateCandidate bool
	failUpdateMatch     bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:       make(map[uuid.UUID]*db.Job),
		candidates: make(map[uuid.UUID]*db.Candidate),
		interviews: make(map[uuid.UUID]*db.Interview),
		users:      make(map[uuid.UUID]*db.User),
	}
}

func (f *fakeStore) addJob(description string) *db.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := &db.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		Department:  "Engineering",
		Description: description,
		Status:      db.JobStatusOpen,
		PostedAt:    time.Now(),
	}
	f.jobs[job.ID] = job
	return job
}

func (f *fakeStore) addCandidate(jobID uuid.UUID, status, resumeText string) *db.Candidate {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &db.Candidate{
		ID:         uuid.New(),
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		JobID:      jobID,
		Status:     status,
		ResumeText: resumeText,
		AppliedAt:  time.Now(),
	}
	f.candidates[c.ID] = c
	return c
}

func (f *fakeStore) activityCount(activityType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.activities {
		if a.Type == activityType {
			n++
		}
	}
	return n
}

func (f *fakeStore) GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.jobs[id], nil
}

func (f *fakeStore) GetCandidate(ctx context.Context, id uuid.UUID) (*db.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.candidates[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateCandidate(ctx context.Context, input *db.CandidateCreateInput) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateCandidate {
		return uuid.Nil, errors.New("insert failed")
	}
	c := &db.Candidate{
		ID:             uuid.New(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Skills:         input.Skills,
		ResumeText:     input.ResumeText,
		JobID:          input.JobID,
		Status:         db.StatusApplied,
		AppliedAt:      time.Now(),
		MatchScore:     input.MatchScore,
		MatchReasoning: input.MatchReasoning,
	}
	f.candidates[c.ID] = c
	return c.ID, nil
}

func (f *fakeStore) UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.candidates[id]
	if !ok {
		return errors.New("candidate not found")
	}
	c.Status = status
	return nil
}

func (f *fakeStore) UpdateCandidateMatch(ctx context.Context, id uuid.UUID, score int, reasoning string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateMatch {
		return errors.New("update failed")
	}
	c, ok := f.candidates[id]
	if !ok {
		return errors.New("candidate not found")
	}
	c.MatchScore = score
	c.MatchReasoning = reasoning
	return nil
}

func (f *fakeStore) ListCandidatesByJob(ctx context.Context, jobID uuid.UUID) ([]db.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Candidate
	for _, c := range f.candidates {
		if c.JobID == jobID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateInterview(ctx context.Context, input *db.InterviewCreateInput) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	iv := &db.Interview{
		ID:          uuid.New(),
		CandidateID: input.CandidateID,
		JobID:       input.JobID,
		ScheduledAt: input.ScheduledAt,
		ScheduledBy: input.ScheduledBy,
		Location:    input.Location,
		MeetingLink: input.MeetingLink,
		Notes:       input.Notes,
		Status:      db.InterviewScheduled,
	}
	f.interviews[iv.ID] = iv
	return iv.ID, nil
}

func (f *fakeStore) GetInterview(ctx context.Context, id uuid.UUID) (*db.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interviews[id], nil
}

func (f *fakeStore) AppendActivity(ctx context.Context, input *db.ActivityCreateInput) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := db.Activity{
		ID:          uuid.New(),
		Type:        input.Type,
		CandidateID: input.CandidateID,
		JobID:       input.JobID,
		ActorID:     input.ActorID,
		ActorName:   input.ActorName,
		Metadata:    input.Metadata,
		CreatedAt:   time.Now(),
	}
	f.activities = append(f.activities, a)
	return a.ID, nil
}

func (f *fakeStore) CountActivities(ctx context.Context, candidateID uuid.UUID, activityType string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.activities {
		if a.CandidateID == candidateID && a.Type == activityType {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) GetUser(ctx context.Context, id uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateUser(ctx context.Context, input *db.UserCreateInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[input.ID]; ok {
		return nil
	}
	f.users[input.ID] = &db.User{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	return nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, u *db.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return errors.New("user not found")
	}
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

// fakeLLM implements llm.Client with a canned match response.
type fakeLLM struct {
	mu        sync.Mutex
	response  string
	err       error
	jsonCalls int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jsonCalls++
	return f.response, f.err
}

func (f *fakeLLM) GenerateJSONFromImage(ctx context.Context, prompt string, format string, image []byte, tier llm.ModelTier) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeLLM) Chat(ctx context.Context, system string, history []llm.Turn, tier llm.ModelTier) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeLLM) GetModel(tier llm.ModelTier) string { return "fake-model" }
func (f *fakeLLM) Close() error                       { return nil }

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.jsonCalls
}

// fakePublisher records published activity events.
type fakePublisher struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (f *fakePublisher) PublishActivity(ctx context.Context, activityType string, payload map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, activityType)
	return f.err
}

const testJobDescription = "We are hiring a backend engineer experienced with Go, PostgreSQL, and message queues."
const testResume = "Senior Go engineer with eight years building payment services on Postgres and Kafka."
const goodMatchJSON = `{"match_score": 78, "reasoning": "Solid overlap on the core stack."}`
