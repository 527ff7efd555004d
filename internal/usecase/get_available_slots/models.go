package get_available_slots

import (
	"github.com/huellas-vet/booking-service/internal/domain"
	"github.com/huellas-vet/booking-service/pkg/types"
)

// Request identifies the service and date to offer slots for.
type Request struct {
	Service string // free-form service name
	Date    string // "YYYY-MM-DD"
}

// Response is the full slot sequence for the service with per-slot
// occupancy.
type Response struct {
	Service domain.ServiceKey
	Date    string
	Slots   []Slot
}

// Slot is one slot of the sequence.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// HasAvailable reports whether at least one slot is still free.
func (r *Response) HasAvailable() bool {
	for _, s := range r.Slots {
		if s.Available {
			return true
		}
	}
	return false
}
