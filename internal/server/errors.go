// Package server provides the HTTP REST API for the recruiting service.
package server

import (
	"errors"
	"net/http"

	"github.com/Anandkumae/recruit-track-sub000/internal/actions"
	"github.com/Anandkumae/recruit-track-sub000/internal/flows"
	"github.com/Anandkumae/recruit-track-sub000/internal/ingest"
	"github.com/Anandkumae/recruit-track-sub000/internal/ingestion"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validation    *actions.ErrValidation
		jobMissing    *actions.ErrJobNotFound
		candMissing   *actions.ErrCandidateNotFound
		userMissing   *actions.ErrUserNotFound
		jobClosed     *actions.ErrJobClosed
		badTransition *actions.ErrInvalidTransition
		noResult      *flows.NoResultError
		badFormat     *flows.ResponseFormatError
		fetchFailed   *ingest.FetchError
		badFileType   *ingestion.UnsupportedTypeError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &jobMissing), errors.As(err, &candMissing), errors.As(err, &userMissing):
		return http.StatusNotFound
	case errors.As(err, &jobClosed), errors.As(err, &badTransition):
		return http.StatusConflict
	case errors.As(err, &noResult), errors.As(err, &badFormat), errors.As(err, &fetchFailed):
		return http.StatusBadGateway
	case errors.As(err, &badFileType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
