// Package get_available_slots composes the schedule generator and the
// availability resolver into the slot list the booking form offers:
// every slot of the service's sequence, flagged free or taken.
package get_available_slots

import (
	"context"

	"github.com/huellas-vet/booking-service/internal/domain"
)

// UseCase is the available-slots query.
type UseCase struct {
	schedule Schedule
	resolver AvailabilityResolver
	logger   Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(schedule Schedule, resolver AvailabilityResolver, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute returns the slot sequence for the service on the date with
// per-slot occupancy. Dates outside the business-day set are rejected
// before any slot is offered.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%q, date=%s", req.Service, req.Date)

	if req.Date == "" {
		return nil, ErrInvalidInput
	}

	if !uc.schedule.IsBusinessDay(req.Date) {
		uc.logger.Warn("GetAvailableSlots: %s is not a business day", req.Date)
		return nil, ErrNonBusinessDay
	}

	duration := uc.schedule.DurationFor(req.Service)
	sequence := uc.schedule.Slots(req.Service)

	occupied := map[string]bool{}
	for _, taken := range uc.resolver.OccupiedSlots(ctx, req.Service, req.Date) {
		occupied[taken.String()] = true
	}

	slots := make([]Slot, 0, len(sequence))
	for _, start := range sequence {
		slots = append(slots, Slot{
			StartTime:       start,
			DurationMinutes: duration,
			Available:       !occupied[start.String()],
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots (%d taken) for service=%q, date=%s",
		len(slots), len(occupied), req.Service, req.Date)

	return &Response{
		Service: domain.NormalizeService(req.Service),
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
