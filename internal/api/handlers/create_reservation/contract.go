package create_reservation

import (
	"context"

	"github.com/huellas-vet/booking-service/internal/domain"
	"github.com/huellas-vet/booking-service/internal/integrations/mailer"
	createReservation "github.com/huellas-vet/booking-service/internal/usecase/create_reservation"
)

// CreateReservationUseCase is the reservation transaction.
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*domain.Appointment, error)
}

// MailSender sends the confirmation email after a successful booking.
type MailSender interface {
	SendConfirmation(ctx context.Context, confirmation *mailer.Confirmation) error
}

// Metrics records reservation outcomes.
type Metrics interface {
	IncReservation(outcome string)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
