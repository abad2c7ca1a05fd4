package booking

import (
	"errors"
	"fmt"
)

// Error codes recovered at the request boundary.
const (
	CodeValidation         = "validationError"
	CodeNotFound           = "notFound"
	CodeSlotConflict       = "slotConflict"
	CodeInsufficientSlots  = "insufficientSlots"
	CodeVerificationFailed = "verificationFailed"
)

// BookingError is a typed domain error carrying a stable code for the
// HTTP layer to map onto a status.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewSlotConflictError(msg string) error {
	return &BookingError{Code: CodeSlotConflict, Message: msg}
}

func NewInsufficientSlotsError(msg string) error {
	return &BookingError{Code: CodeInsufficientSlots, Message: msg}
}

func NewVerificationFailedError(msg string) error {
	return &BookingError{Code: CodeVerificationFailed, Message: msg}
}

// CodeOf extracts the domain error code, if any.
func CodeOf(err error) (string, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
