package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/actions"
	"github.com/Anandkumae/recruit-track-sub000/internal/flows"
	"github.com/Anandkumae/recruit-track-sub000/internal/ingestion"
	"github.com/Anandkumae/recruit-track-sub000/internal/server/middleware"
	"github.com/Anandkumae/recruit-track-sub000/internal/storage"
)

// maxUploadBytes bounds multipart uploads (resumes and avatars).
const maxUploadBytes = 10 << 20

// handleUploadResume accepts a resume file, extracts its text, and stores
// the original in the object store. The response carries both the stored key
// and the extracted text so the client can submit an application with it.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if s.blobs == nil {
		writeErrorMessage(w, http.StatusServiceUnavailable, "file uploads are not configured")
		return
	}

	identity, err := middleware.GetIdentity(r)
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, filename, contentType, err := readUpload(r, "file")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if !ingestion.Supported(contentType) {
		writeError(w, &ingestion.UnsupportedTypeError{MIME: contentType})
		return
	}

	text, err := ingestion.ExtractText(contentType, data)
	if err != nil {
		writeError(w, err)
		return
	}

	key := storage.ResumeKey(identity.UserID, filename)
	if _, err := s.blobs.Put(r.Context(), key, contentType, data); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"resume_url":  key,
		"resume_text": text,
	})
}

// handleUploadAvatar stores a profile image. When a candidate_id is supplied
// the candidate record is updated; otherwise the image just gets stored
// under the caller's prefix.
func (s *Server) handleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	if s.blobs == nil {
		writeErrorMessage(w, http.StatusServiceUnavailable, "file uploads are not configured")
		return
	}

	identity, err := middleware.GetIdentity(r)
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, filename, contentType, err := readUpload(r, "file")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if !strings.HasPrefix(contentType, "image/") {
		writeErrorMessage(w, http.StatusUnsupportedMediaType, "avatar must be an image")
		return
	}

	var candidateID uuid.UUID
	if candidateParam := r.FormValue("candidate_id"); candidateParam != "" {
		candidateID, err = parseUUIDParam(candidateParam, "candidate_id")
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
			writeError(w, &actions.ErrCandidateNotFound{CandidateID: candidateID})
			return
		}
	}

	key := storage.AvatarKey(identity.UserID, filename)
	if _, err := s.blobs.Put(r.Context(), key, contentType, data); err != nil {
		writeError(w, err)
		return
	}

	if candidateID != uuid.Nil {
		if err := s.store.UpdateCandidateAvatar(r.Context(), candidateID, key); err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{"avatar_url": key})
}

// handleDownload streams a stored resume or profile image back to a
// recruiter. The wildcard path segment is the full object key.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if s.blobs == nil {
		writeErrorMessage(w, http.StatusServiceUnavailable, "file uploads are not configured")
		return
	}

	key := r.PathValue("key")
	data, err := s.blobs.Get(r.Context(), key)
	if err != nil {
		writeErrorMessage(w, http.StatusNotFound, "file not found")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleParseResume runs the vision parser over an uploaded resume image.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	data, _, contentType, err := readUpload(r, "file")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	format := strings.TrimPrefix(contentType, "image/")
	if format == contentType {
		writeErrorMessage(w, http.StatusUnsupportedMediaType, "resume parsing expects an image")
		return
	}

	fields, err := flows.ParseResume(r.Context(), s.llm, format, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

// readUpload pulls one file out of a multipart form.
func readUpload(r *http.Request, field string) (data []byte, filename, contentType string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", "", err
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", "", err
	}

	contentType = header.Header.Get("Content-Type")
	return data, header.Filename, contentType, nil
}
