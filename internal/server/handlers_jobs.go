package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/flows"
	"github.com/Anandkumae/recruit-track-sub000/internal/server/middleware"
)

type createJobRequest struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeErrorMessage(w, http.StatusBadRequest, "title and description are required")
		return
	}

	identity, _ := middleware.GetIdentity(r)
	jobID, err := s.store.CreateJob(r.Context(), &db.JobCreateInput{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		PostedBy:     &identity.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeErrorMessage(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	opts := db.ListJobsOptions{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		opts.Status = &status
	}
	if dept := r.URL.Query().Get("department"); dept != "" {
		opts.Department = &dept
	}

	jobs, total, err := s.store.ListJobs(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[db.Job]{
		Items:  jobs,
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeErrorMessage(w, http.StatusNotFound, "job not found")
		return
	}

	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Department != "" {
		job.Department = req.Department
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}

	if err := s.store.UpdateJob(r.Context(), job); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleCloseJob marks a job Closed. Jobs are never deleted.
func (s *Server) handleCloseJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeErrorMessage(w, http.StatusNotFound, "job not found")
		return
	}

	if err := s.store.SetJobStatus(r.Context(), jobID, db.JobStatusClosed); err != nil {
		writeError(w, err)
		return
	}
	job.Status = db.JobStatusClosed
	writeJSON(w, http.StatusOK, job)
}

type importJobRequest struct {
	URL        string `json:"url"`
	Department string `json:"department"`
}

func (s *Server) handleImportJob(w http.ResponseWriter, r *http.Request) {
	var req importJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		writeErrorMessage(w, http.StatusBadRequest, "url is required")
		return
	}

	identity, _ := middleware.GetIdentity(r)
	job, err := s.importer.ImportFromURL(r.Context(), req.URL, req.Department, &identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// handleInterviewQuestions generates interview questions for a job's title.
// Model failures surface to the caller here.
func (s *Server) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeErrorMessage(w, http.StatusNotFound, "job not found")
		return
	}

	questions, err := flows.GenerateInterviewQuestions(r.Context(), s.llm, job.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"job_id":    job.ID,
		"job_title": job.Title,
		"questions": questions,
	})
}

func (s *Server) handleRerunMatchForJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.actions.RerunMatchForJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
