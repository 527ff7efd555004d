package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/huellas-vet/booking-service/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase is the available-slots query.
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
