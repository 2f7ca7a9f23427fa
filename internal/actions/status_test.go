package actions

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

func TestUpdateStatus_HiredAppendsExactlyOneActivity(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	candidate := store.addCandidate(job.ID, db.StatusInterviewed, testResume)
	events := &fakePublisher{}
	svc := New(store, &fakeLLM{}, events)

	updated, err := svc.UpdateStatus(context.Background(), candidate.ID, db.StatusHired, nil, "Priya Nair")
	require.NoError(t, err)
	assert.Equal(t, db.StatusHired, updated.Status)
	assert.Equal(t, 1, store.activityCount(db.ActivityHired))
	assert.Equal(t, []string{db.ActivityHired}, events.events)
}

func TestUpdateStatus_ForwardPipeline(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	candidate := store.addCandidate(job.ID, db.StatusApplied, testResume)
	svc := New(store, &fakeLLM{}, nil)

	for _, status := range []string{db.StatusShortlisted, db.StatusInterviewed, db.StatusHired} {
		updated, err := svc.UpdateStatus(context.Background(), candidate.ID, status, nil, "")
		require.NoError(t, err, "transition to %s", status)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatus_BackwardTransitionRejected(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	candidate := store.addCandidate(job.ID, db.StatusInterviewed, testResume)
	svc := New(store, &fakeLLM{}, nil)

	_, err := svc.UpdateStatus(context.Background(), candidate.ID, db.StatusApplied, nil, "")
	var it *ErrInvalidTransition
	require.ErrorAs(t, err, &it)
	assert.Zero(t, store.activityCount(db.ActivityShortlisted))

	unchanged, _ := store.GetCandidate(context.Background(), candidate.ID)
	assert.Equal(t, db.StatusInterviewed, unchanged.Status)
}

func TestUpdateStatus_TerminalStatesImmutable(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	svc := New(store, &fakeLLM{}, nil)

	for _, terminal := range []string{db.StatusHired, db.StatusRejected} {
		candidate := store.addCandidate(job.ID, terminal, testResume)
		_, err := svc.UpdateStatus(context.Background(), candidate.ID, db.StatusShortlisted, nil, "")
		var it *ErrInvalidTransition
		assert.ErrorAs(t, err, &it, "from %s", terminal)
	}
}

func TestUpdateStatus_RejectedFromAnyNonTerminal(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	svc := New(store, &fakeLLM{}, nil)

	for _, from := range []string{db.StatusApplied, db.StatusShortlisted, db.StatusInterviewed} {
		candidate := store.addCandidate(job.ID, from, testResume)
		updated, err := svc.UpdateStatus(context.Background(), candidate.ID, db.StatusRejected, nil, "")
		require.NoError(t, err, "rejecting from %s", from)
		assert.Equal(t, db.StatusRejected, updated.Status)
	}
	assert.Equal(t, 3, store.activityCount(db.ActivityRejected))
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	store := newFakeStore()
	job := store.addJob(testJobDescription)
	candidate := store.addCandidate(job.ID, db.StatusApplied, testResume)
	svc := New(store, &fakeLLM{}, nil)

	_, err := svc.UpdateStatus(context.Background(), candidate.ID, "OnHold", nil, "")
	var ve *ErrValidation
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateStatus_MissingCandidate(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeLLM{}, nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), db.StatusShortlisted, nil, "")
	var nf *ErrCandidateNotFound
	assert.ErrorAs(t, err, &nf)
}
