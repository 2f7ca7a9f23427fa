package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

func TestRerunMatch_UpdatesScore(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	candidate := store.addCandidate(job.ID, db.StatusApplied, testResume)
	svc := New(store, &fakeLLM{response: goodMatchJSON}, nil)

	updated, err := svc.RerunMatch(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, 78, updated.MatchScore)
	assert.Equal(t, "Solid overlap on the core stack.", updated.MatchReasoning)
}

func TestRerunMatch_AIFailureDegrades(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	candidate := store.addCandidate(job.ID, db.StatusApplied, testResume)
	svc := New(store, &fakeLLM{err: errors.New("model unavailable")}, nil)

	updated, err := svc.RerunMatch(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.MatchScore)
	assert.Equal(t, AIFailedReasoning, updated.MatchReasoning)
}

func TestRerunMatch_MissingCandidate(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeLLM{}, nil)

	_, err := svc.RerunMatch(context.Background(), uuid.New())
	var nf *ErrCandidateNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestRerunMatchForJob_UpdatesAllCandidates(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	for i := 0; i < 9; i++ {
		store.addCandidate(job.ID, db.StatusApplied, testResume)
	}
	svc := New(store, &fakeLLM{response: goodMatchJSON}, nil)

	updated, err := svc.RerunMatchForJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, updated)

	candidates, _ := store.ListCandidatesByJob(context.Background(), job.ID)
	for _, c := range candidates {
		assert.Equal(t, 78, c.MatchScore)
	}
}

func TestRerunMatchForJob_MissingJob(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeLLM{}, nil)

	_, err := svc.RerunMatchForJob(context.Background(), uuid.New())
	var nf *ErrJobNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestRerunMatchForJob_NoCandidates(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	svc := New(store, &fakeLLM{}, nil)

	updated, err := svc.RerunMatchForJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestRerunMatchForJob_StoreFailureAborts(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	store.addCandidate(job.ID, db.StatusApplied, testResume)
	store.failUpdateMatch = true
	svc := New(store, &fakeLLM{response: goodMatchJSON}, nil)

	_, err := svc.RerunMatchForJob(context.Background(), job.ID)
	assert.Error(t, err)
}
