package create_reservation

import (
	"context"
	"time"

	"github.com/huellas-vet/booking-service/internal/domain"
	"github.com/huellas-vet/booking-service/pkg/types"
)

// AppointmentRepository is the read/write side of the appointment store.
type AppointmentRepository interface {
	ReadAll(ctx context.Context) []*domain.Appointment
	WriteAll(ctx context.Context, list []*domain.Appointment) error
}

// AvailabilityResolver answers whether a single slot is still free.
type AvailabilityResolver interface {
	IsAvailable(ctx context.Context, service, date string, slot types.TimeString) bool
}

// BusinessCalendar decides which calendar dates accept bookings.
type BusinessCalendar interface {
	IsBusinessDay(date string) bool
}

// TimeProvider provides the current time (for testing).
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
