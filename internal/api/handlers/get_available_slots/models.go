package get_available_slots

import (
	getAvailableSlots "github.com/huellas-vet/booking-service/internal/usecase/get_available_slots"
	"github.com/huellas-vet/booking-service/pkg/dateformat"
)

// SlotsResponse HTTP response model.
type SlotsResponse struct {
	Service      string `json:"service"`
	Date         string `json:"date"`
	DateDisplay  string `json:"dateDisplay"`
	Slots        []Slot `json:"slots"`
	HasAvailable bool   `json:"hasAvailable"`
}

// Slot is one entry of the slot sequence.
type Slot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse converts the usecase response into the HTTP
// response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, Slot{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
		})
	}

	return &SlotsResponse{
		Service:      string(resp.Service),
		Date:         resp.Date,
		DateDisplay:  dateformat.Format(resp.Date),
		Slots:        slots,
		HasAvailable: resp.HasAvailable(),
	}
}
