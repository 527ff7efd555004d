package create_reservation

import "errors"

var (
	// ErrInvalidEmail is returned when the email does not have a
	// local-part@domain.tld shape.
	ErrInvalidEmail = errors.New("create_reservation: invalid email format")

	// ErrInvalidPhone is returned when the phone is not exactly 9
	// digits after stripping whitespace.
	ErrInvalidPhone = errors.New("create_reservation: invalid phone format")

	// ErrNonBusinessDay is returned when the requested date is not a
	// configured business day (or does not parse as a date).
	ErrNonBusinessDay = errors.New("create_reservation: date is not a business day")

	// ErrSlotUnavailable is returned when the requested slot is
	// already booked for the service and date.
	ErrSlotUnavailable = errors.New("create_reservation: slot is no longer available")

	// ErrStorageWrite is returned when the persisted collection could
	// not be written; the candidate appointment is discarded.
	ErrStorageWrite = errors.New("create_reservation: failed to store the reservation")
)
