package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Anandkumae/recruit-track-sub000/internal/actions"
	"github.com/Anandkumae/recruit-track-sub000/internal/flows"
	"github.com/Anandkumae/recruit-track-sub000/internal/ingest"
	"github.com/Anandkumae/recruit-track-sub000/internal/ingestion"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &actions.ErrValidation{Field: "email"}, http.StatusBadRequest},
		{"job missing", &actions.ErrJobNotFound{JobID: uuid.New()}, http.StatusNotFound},
		{"candidate missing", &actions.ErrCandidateNotFound{CandidateID: uuid.New()}, http.StatusNotFound},
		{"user missing", &actions.ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"job closed", &actions.ErrJobClosed{JobID: uuid.New()}, http.StatusConflict},
		{"bad transition", &actions.ErrInvalidTransition{From: "Hired", To: "Applied"}, http.StatusConflict},
		{"model no result", &flows.NoResultError{Flow: "match-resume-to-job"}, http.StatusBadGateway},
		{"model bad output", &flows.ResponseFormatError{Flow: "interview-questions"}, http.StatusBadGateway},
		{"fetch failed", &ingest.FetchError{URL: "http://x", Message: "HTTP status 500"}, http.StatusBadGateway},
		{"bad file type", &ingestion.UnsupportedTypeError{MIME: "image/gif"}, http.StatusUnsupportedMediaType},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("loading: %w", &actions.ErrJobNotFound{JobID: uuid.New()}), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
