package list_reservations

import (
	"github.com/huellas-vet/booking-service/internal/domain"
	"github.com/huellas-vet/booking-service/pkg/dateformat"
)

// ReservationsResponse HTTP response model for the admin listing.
type ReservationsResponse struct {
	Total        int           `json:"total"`
	Reservations []Reservation `json:"reservations"`
}

// Reservation is one listed appointment with display-formatted fields.
type Reservation struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	DateDisplay string `json:"dateDisplay"`
	Time        string `json:"time"`
	OwnerName   string `json:"ownerName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	PetName     string `json:"petName"`
	Species     string `json:"species"`
}

// FromAppointments converts the stored collection into the HTTP
// response, preserving stored order.
func FromAppointments(list []*domain.Appointment) *ReservationsResponse {
	reservations := make([]Reservation, 0, len(list))
	for _, a := range list {
		reservations = append(reservations, Reservation{
			ID:          a.ID,
			Service:     string(a.Service),
			ServiceName: a.Service.DisplayName(),
			Date:        a.Date,
			DateDisplay: dateformat.Format(a.Date),
			Time:        a.Time.String(),
			OwnerName:   a.OwnerName,
			Phone:       a.Phone,
			Email:       a.Email,
			PetName:     a.PetName,
			Species:     a.Species,
		})
	}

	return &ReservationsResponse{
		Total:        len(reservations),
		Reservations: reservations,
	}
}
