package server

import (
	"encoding/json"
	"net/http"

	"github.com/Anandkumae/recruit-track-sub000/internal/flows"
	"github.com/Anandkumae/recruit-track-sub000/internal/llm"
)

type matchToolRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// handleMatchTool runs the matcher directly. Unlike Apply, AI failures
// surface here because the result is the whole point of the call.
func (s *Server) handleMatchTool(w http.ResponseWriter, r *http.Request) {
	var req matchToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := flows.MatchResumeToJob(r.Context(), s.llm, req.ResumeText, req.JobDescription)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type chatRequest struct {
	History []llm.Turn `json:"history"`
}

func (s *Server) handleAssistantChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.History) == 0 {
		writeErrorMessage(w, http.StatusBadRequest, "history is required")
		return
	}

	reply, err := flows.ChatbotAssistant(r.Context(), s.llm, req.History)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
