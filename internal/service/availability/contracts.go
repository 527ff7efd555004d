package availability

import (
	"context"

	"github.com/huellas-vet/booking-service/internal/domain"
)

// AppointmentRepository is the read side of the appointment store.
type AppointmentRepository interface {
	ReadAll(ctx context.Context) []*domain.Appointment
}
