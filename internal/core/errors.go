package core

import "errors"

// RejectionError is a validation failure with a user-facing message in
// Czech. Handlers map it to HTTP 400; every other pipeline error is a
// server-side failure.
type RejectionError struct {
	// Field is the form field or file slot that failed.
	Field string

	// Message is the localized text returned to the applicant.
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

func reject(field, message string) error {
	return &RejectionError{Field: field, Message: message}
}

// AsRejection returns the RejectionError wrapped in err, or nil when
// err is not a validation rejection.
func AsRejection(err error) *RejectionError {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej
	}
	return nil
}
