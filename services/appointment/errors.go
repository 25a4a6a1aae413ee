package appointment

import "fmt"

// ValidationError reports a missing or malformed request field. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError reports that the requested slot is unavailable.
type ConflictError struct {
	Reason        string
	ConflictingID string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NotFoundError reports an unknown appointment id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("appointment %s not found", e.ID)
}

// SlotBusyError reports that another create/reschedule for the same slot key
// is in flight. Callers should retry.
type SlotBusyError struct {
	Key string
}

func (e *SlotBusyError) Error() string {
	return fmt.Sprintf("slot %s is being booked by another request, try again", e.Key)
}
