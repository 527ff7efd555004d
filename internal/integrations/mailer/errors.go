package mailer

import "errors"

var (
	// ErrInternal is returned when the request could not be built or
	// executed.
	ErrInternal = errors.New("mailer client: internal error")

	// ErrSendFailed is returned when the mail service rejects the
	// send. A failed confirmation never rolls back the reservation;
	// callers report the booking as saved with a delivery warning.
	ErrSendFailed = errors.New("mailer client: confirmation send failed")
)
