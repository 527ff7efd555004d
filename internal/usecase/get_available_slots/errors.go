package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned when the request is missing a date.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrNonBusinessDay is returned when the date is not a configured
	// business day; no slots are offered for such dates.
	ErrNonBusinessDay = errors.New("get_available_slots: date is not a business day")
)
