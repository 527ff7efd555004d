package domain

import "github.com/huellas-vet/booking-service/pkg/types"

// Appointment represents a persisted booking in the system.
//
// The JSON tags are the persisted layout: the store holds one plain
// JSON array of these objects, no envelope and no versioning.
// Records are created only by the reservation transaction and are
// never mutated in place afterwards.
type Appointment struct {
	ID        string           `json:"id"`
	Service   ServiceKey       `json:"service"`
	Date      string           `json:"date"` // "YYYY-MM-DD"
	Time      types.TimeString `json:"time"` // "HH:MM"
	OwnerName string           `json:"ownerName"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
	PetName   string           `json:"petName"`
	Species   string           `json:"species"`
}

// OccupiesSlot reports whether this appointment occupies the given
// (service, date, time) slot. The stored service is normalized before
// comparison so accent or case variants of the same service still
// block their slot; dates compare by exact string equality.
func (a *Appointment) OccupiesSlot(service ServiceKey, date string, slot types.TimeString) bool {
	return NormalizeService(string(a.Service)) == service && a.Date == date && a.Time == slot
}
