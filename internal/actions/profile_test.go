package actions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

func TestCompleteProfile_SetsFieldsAndFlag(t *testing.T) {
	store := newFakeStore()
	user := &db.User{
		ID:        uuid.New(),
		Name:      "Priya Nair",
		Email:     "priya@example.com",
		Role:      db.RoleHR,
		CreatedAt: time.Now(),
	}
	store.users[user.ID] = user
	svc := New(store, &fakeLLM{}, nil)

	updated, err := svc.CompleteProfile(context.Background(), user.ID, &CompleteProfileRequest{
		Department: "Engineering",
		Company:    "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", updated.Department)
	assert.Equal(t, "Acme", updated.Company)
	assert.True(t, updated.ProfileComplete)

	persisted, _ := store.GetUser(context.Background(), user.ID)
	assert.True(t, persisted.ProfileComplete)
}

func TestCompleteProfile_EmptyFieldsLeaveValues(t *testing.T) {
	store := newFakeStore()
	user := &db.User{
		ID:         uuid.New(),
		Name:       "Priya Nair",
		Email:      "priya@example.com",
		Role:       db.RoleHR,
		Department: "Engineering",
	}
	store.users[user.ID] = user
	svc := New(store, &fakeLLM{}, nil)

	updated, err := svc.CompleteProfile(context.Background(), user.ID, &CompleteProfileRequest{
		ResumeURL: "https://storage.example.com/resumes/priya.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", updated.Department)
	require.NotNil(t, updated.ResumeURL)
	assert.Equal(t, "https://storage.example.com/resumes/priya.pdf", *updated.ResumeURL)
}

func TestCompleteProfile_MissingUser(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeLLM{}, nil)

	_, err := svc.CompleteProfile(context.Background(), uuid.New(), &CompleteProfileRequest{})
	var nf *ErrUserNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestEnsureUser_ProvisionsFromClaims(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeLLM{}, nil)
	userID := uuid.New()

	user, err := svc.EnsureUser(context.Background(), userID, "Priya Nair", "priya@example.com", db.RoleHR)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.Equal(t, db.RoleHR, user.Role)
	assert.False(t, user.ProfileComplete)

	persisted, _ := store.GetUser(context.Background(), userID)
	require.NotNil(t, persisted, "first authenticated request creates the profile row")
}

func TestEnsureUser_ExistingUserUntouched(t *testing.T) {
	store := newFakeStore()
	user := &db.User{
		ID:         uuid.New(),
		Name:       "Priya Nair",
		Email:      "priya@example.com",
		Role:       db.RoleHR,
		Department: "Engineering",
	}
	store.users[user.ID] = user
	svc := New(store, &fakeLLM{}, nil)

	got, err := svc.EnsureUser(context.Background(), user.ID, "Stale Name", "stale@example.com", db.RoleCandidate)
	require.NoError(t, err)
	assert.Equal(t, "Priya Nair", got.Name, "existing profiles are not overwritten from claims")
	assert.Equal(t, "Engineering", got.Department)
}

func TestEnsureUser_UnknownRoleDefaultsToCandidate(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakeLLM{}, nil)

	user, err := svc.EnsureUser(context.Background(), uuid.New(), "Asha Rao", "asha@example.com", "Superuser")
	require.NoError(t, err)
	assert.Equal(t, db.RoleCandidate, user.Role)
}
