package server

import (
	"encoding/json"
	"net/http"

	"github.com/Anandkumae/recruit-track-sub000/internal/actions"
	"github.com/Anandkumae/recruit-track-sub000/internal/server/middleware"
)

// handleGetMe returns the caller's profile, provisioning it from the token
// claims on first request. Sign-up lives with the identity provider, so the
// first authenticated call is where the profile row appears.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.actions.EnsureUser(r.Context(), identity.UserID, identity.Name, identity.Email, identity.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeErrorMessage(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Company    string `json:"company"`
}

// handleUpdateUser lets users edit their own profile fields.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	identity, _ := middleware.GetIdentity(r)
	if identity.UserID != userID {
		writeErrorMessage(w, http.StatusForbidden, "Forbidden")
		return
	}

	user, err := s.actions.EnsureUser(r.Context(), identity.UserID, identity.Name, identity.Email, identity.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Company != "" {
		user.Company = req.Company
	}

	if err := s.store.UpdateUser(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleCompleteProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req actions.CompleteProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := s.actions.EnsureUser(r.Context(), identity.UserID, identity.Name, identity.Email, identity.Role); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.actions.CompleteProfile(r.Context(), identity.UserID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
