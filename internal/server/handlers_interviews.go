package server

import (
	"encoding/json"
	"net/http"

	"github.com/Anandkumae/recruit-track-sub000/internal/actions"
	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/server/middleware"
)

func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req actions.ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, _ := middleware.GetIdentity(r)
	interview, err := s.actions.ScheduleInterview(r.Context(), &req, &identity.UserID, identity.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, interview)
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	interviews, err := s.store.ListInterviewsByCandidate(r.Context(), candidateID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": interviews})
}

type updateInterviewStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateInterviewStatus(w http.ResponseWriter, r *http.Request) {
	interviewID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateInterviewStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch req.Status {
	case db.InterviewScheduled, db.InterviewCompleted, db.InterviewCancelled:
	default:
		writeErrorMessage(w, http.StatusBadRequest, "unknown interview status")
		return
	}

	interview, err := s.store.GetInterview(r.Context(), interviewID)
	if err != nil {
		writeError(w, err)
		return
	}
	if interview == nil {
		writeErrorMessage(w, http.StatusNotFound, "interview not found")
		return
	}

	if err := s.store.UpdateInterviewStatus(r.Context(), interviewID, req.Status); err != nil {
		writeError(w, err)
		return
	}
	interview.Status = req.Status
	writeJSON(w, http.StatusOK, interview)
}
