package actions

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

// EnsureUser loads the caller's profile, provisioning the row from the
// verified token claims on first authenticated request. The identity
// provider owns sign-up; this is the only place profile rows appear.
// Unknown roles are stored as Candidate.
func (s *Service) EnsureUser(ctx context.Context, userID uuid.UUID, name, email, role string) (*db.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	if !db.ValidRole(role) {
		role = db.RoleCandidate
	}
	if err := s.store.CreateUser(ctx, &db.UserCreateInput{
		ID:    userID,
		Name:  name,
		Email: email,
		Role:  role,
	}); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	user, err = s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provisioned user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return user, nil
}

// CompleteProfileRequest enriches a user profile after first sign-in.
type CompleteProfileRequest struct {
	Department string `json:"department,omitempty"`
	Company    string `json:"company,omitempty"`
	ResumeURL  string `json:"resume_url,omitempty"`
}

// CompleteProfile fills in profile fields and marks the profile complete.
// Empty fields leave the existing values untouched.
func (s *Service) CompleteProfile(ctx context.Context, userID uuid.UUID, req *CompleteProfileRequest) (*db.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Company != "" {
		user.Company = req.Company
	}
	if req.ResumeURL != "" {
		resumeURL := req.ResumeURL
		user.ResumeURL = &resumeURL
	}
	user.ProfileComplete = true

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
