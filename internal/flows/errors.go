package flows

import "fmt"

// NoResultError indicates the model produced empty or unusable output for a
// flow whose result is the point of the call. Callers surface this to the
// user instead of crashing.
type NoResultError struct {
	Flow string
}

func (e *NoResultError) Error() string {
	return fmt.Sprintf("AI model returned no result for %s", e.Flow)
}

// ResponseFormatError indicates the model returned output that does not
// conform to the flow's declared response contract.
type ResponseFormatError struct {
	Flow  string
	Cause error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("AI model returned malformed output for %s: %v", e.Flow, e.Cause)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Cause
}
