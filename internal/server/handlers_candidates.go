package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/actions"
	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/server/middleware"
)

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req actions.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate, err := s.actions.Apply(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, candidate)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		writeError(w, err)
		return
	}
	if candidate == nil {
		writeErrorMessage(w, http.StatusNotFound, "candidate not found")
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	opts := db.ListCandidatesOptions{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if jobParam := r.URL.Query().Get("job_id"); jobParam != "" {
		jobID, err := parseUUIDParam(jobParam, "job_id")
		if err != nil {
			writeError(w, err)
			return
		}
		opts.JobID = &jobID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		opts.Status = &status
	}

	candidates, total, err := s.store.ListCandidates(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[db.Candidate]{
		Items:  candidates,
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, _ := middleware.GetIdentity(r)
	candidate, err := s.actions.UpdateStatus(r.Context(), candidateID, req.Status, &identity.UserID, identity.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func (s *Server) handleRerunMatch(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	candidate, err := s.actions.RerunMatch(r.Context(), candidateID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func parseUUIDParam(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, &actions.ErrValidation{Field: name, Message: "must be a valid UUID"}
	}
	return id, nil
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	limit := queryInt(r, "limit")
	activities, err := s.store.ListActivitiesByCandidate(r.Context(), candidateID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": activities})
}
