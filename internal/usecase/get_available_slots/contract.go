package get_available_slots

import (
	"context"

	"github.com/huellas-vet/booking-service/pkg/types"
)

// Schedule generates the slot sequence for a service and knows the
// business-day rule.
type Schedule interface {
	DurationFor(service string) int
	Slots(service string) []types.TimeString
	IsBusinessDay(date string) bool
}

// AvailabilityResolver answers which slots are already booked.
type AvailabilityResolver interface {
	OccupiedSlots(ctx context.Context, service, date string) []types.TimeString
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
