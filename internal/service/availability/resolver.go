// Package availability answers which slots are already taken for a
// service on a date, and whether a single slot is still free.
package availability

import (
	"context"

	"github.com/huellas-vet/booking-service/internal/domain"
	"github.com/huellas-vet/booking-service/pkg/types"
)

// Resolver computes slot occupancy from the appointment store.
type Resolver struct {
	repo AppointmentRepository
}

// NewResolver creates a resolver over the given repository.
func NewResolver(repo AppointmentRepository) *Resolver {
	return &Resolver{repo: repo}
}

// OccupiedSlots returns the start-times already booked for a service
// on a date. The service name is normalized before matching; the date
// matches by exact string equality. Order follows the stored
// (insertion) order.
func (r *Resolver) OccupiedSlots(ctx context.Context, service, date string) []types.TimeString {
	key := domain.NormalizeService(service)

	occupied := make([]types.TimeString, 0)
	for _, appt := range r.repo.ReadAll(ctx) {
		if domain.NormalizeService(string(appt.Service)) == key && appt.Date == date {
			occupied = append(occupied, appt.Time)
		}
	}
	return occupied
}

// IsAvailable reports whether the slot at the given start-time is not
// occupied for the service and date.
func (r *Resolver) IsAvailable(ctx context.Context, service, date string, slot types.TimeString) bool {
	key := domain.NormalizeService(service)
	for _, appt := range r.repo.ReadAll(ctx) {
		if appt.OccupiesSlot(key, date, slot) {
			return false
		}
	}
	return true
}
