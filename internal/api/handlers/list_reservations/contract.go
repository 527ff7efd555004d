package list_reservations

import (
	"context"

	"github.com/huellas-vet/booking-service/internal/domain"
)

// AppointmentReader is the read side of the appointment store.
type AppointmentReader interface {
	ReadAll(ctx context.Context) []*domain.Appointment
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
