package domain

import "errors"

var (
	// ErrNoQuestions is returned when a question query matches nothing.
	// Callers must change filters and retry; the lookup is never retried
	// automatically.
	ErrNoQuestions = errors.New("no questions matched the requested filters")
	// ErrQuestionNotFound indicates a question ID lookup failed.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrSessionNotFound is returned when a quiz session ID is unknown.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionNotActive is returned when an answer or advance arrives
	// outside the active stage.
	ErrSessionNotActive = errors.New("quiz session is not active")
	// ErrUnknownMode indicates an unrecognized quiz mode.
	ErrUnknownMode = errors.New("unknown quiz mode")
	// ErrReportNotFound indicates a report ID lookup failed.
	ErrReportNotFound = errors.New("report not found")
	// ErrAlertNotFound indicates an alert ID lookup failed.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrCrimeTypeNotFound indicates a crime-type ID lookup failed.
	ErrCrimeTypeNotFound = errors.New("crime type not found")
	// ErrChecklistItemNotFound indicates a checklist-item ID lookup failed.
	ErrChecklistItemNotFound = errors.New("checklist item not found")
)

// ValidationError carries the first rejected precondition of a user
// submission. The message is surfaced verbatim to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
