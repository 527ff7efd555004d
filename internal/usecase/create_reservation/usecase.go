// Package create_reservation implements the reservation transaction:
// ordered validation, slot availability, normalization and the single
// read-modify-write against the appointment store.
package create_reservation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/huellas-vet/booking-service/internal/domain"
	"github.com/huellas-vet/booking-service/internal/validation"
	"github.com/huellas-vet/booking-service/pkg/types"
)

// UseCase is the reservation transaction.
type UseCase struct {
	repo         AppointmentRepository
	resolver     AvailabilityResolver
	calendar     BusinessCalendar
	timeProvider TimeProvider
	logger       Logger

	// mu serializes the availability check together with the
	// read-modify-write cycle. Without it two concurrent requests for
	// the same slot could both pass the check before either writes.
	mu sync.Mutex
}

// NewUseCase creates the usecase. Use exactly one instance per store.
func NewUseCase(
	repo AppointmentRepository,
	resolver AvailabilityResolver,
	calendar BusinessCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		resolver:     resolver,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute accepts or rejects a booking request. Checks run in a fixed
// order and the first failure wins: email shape, phone shape, business
// day, slot availability. On success the normalized appointment is
// appended to the stored collection in one read-modify-write cycle and
// returned; on failure one of the package sentinel errors is returned
// and the store is left untouched.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateReservation: service=%q, date=%s, time=%s", req.Service, req.Date, req.Time)

	if !validation.IsValidEmail(req.Email) {
		uc.logger.Warn("CreateReservation: invalid email %q", req.Email)
		return nil, ErrInvalidEmail
	}

	if !validation.IsValidPhone(req.Phone) {
		uc.logger.Warn("CreateReservation: invalid phone %q", req.Phone)
		return nil, ErrInvalidPhone
	}

	if !uc.calendar.IsBusinessDay(req.Date) {
		uc.logger.Warn("CreateReservation: %s is not a business day", req.Date)
		return nil, ErrNonBusinessDay
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	slot := types.TimeString(req.Time)
	if !uc.resolver.IsAvailable(ctx, req.Service, req.Date, slot) {
		uc.logger.Warn("CreateReservation: slot taken: service=%q, date=%s, time=%s",
			req.Service, req.Date, req.Time)
		return nil, ErrSlotUnavailable
	}

	appointment := &domain.Appointment{
		ID:        strconv.FormatInt(uc.timeProvider.Now().UnixMilli(), 10),
		Service:   domain.NormalizeService(req.Service),
		Date:      req.Date,
		Time:      slot,
		OwnerName: strings.TrimSpace(req.OwnerName),
		Phone:     validation.StripSpaces(req.Phone),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		PetName:   strings.TrimSpace(req.PetName),
		Species:   req.Species,
	}

	list := uc.repo.ReadAll(ctx)
	list = append(list, appointment)

	if err := uc.repo.WriteAll(ctx, list); err != nil {
		uc.logger.Error("CreateReservation: write failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	uc.logger.Info("CreateReservation: created id=%s, service=%s, date=%s, time=%s",
		appointment.ID, appointment.Service, appointment.Date, appointment.Time)
	return appointment, nil
}
