package actions

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrJobNotFound indicates the referenced job posting does not exist.
// Applying against it is terminal: no candidate record is written.
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job no longer exists: %s", e.JobID)
}

// ErrJobClosed indicates the job posting is no longer accepting applications
type ErrJobClosed struct {
	JobID uuid.UUID
}

func (e *ErrJobClosed) Error() string {
	return fmt.Sprintf("job is closed: %s", e.JobID)
}

// ErrCandidateNotFound indicates the candidate record does not exist
type ErrCandidateNotFound struct {
	CandidateID uuid.UUID
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.CandidateID)
}

// ErrUserNotFound indicates the user profile does not exist
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrInvalidTransition indicates a status change the pipeline does not allow
type ErrInvalidTransition struct {
	From string
	To   string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot move candidate from %s to %s", e.From, e.To)
}

// ErrValidation indicates request validation failure on a specific field
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// firstValidationError converts a validator error into a field-scoped
// ErrValidation for the first failing field.
func firstValidationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return &ErrValidation{
			Field:   verrs[0].Field(),
			Message: fmt.Sprintf("failed %s validation", verrs[0].Tag()),
		}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
