package create_reservation

import (
	"github.com/huellas-vet/booking-service/internal/domain"
	createReservation "github.com/huellas-vet/booking-service/internal/usecase/create_reservation"
	"github.com/huellas-vet/booking-service/pkg/dateformat"
)

// CreateReservationRequest HTTP request model. Fields are passed to
// the usecase untouched; trimming and normalization happen there.
type CreateReservationRequest struct {
	Service   string `json:"service"`
	Date      string `json:"date"` // "2026-02-16"
	Time      string `json:"time"` // "09:00"
	OwnerName string `json:"ownerName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	PetName   string `json:"petName"`
	Species   string `json:"species"`
}

// ReservationResponse HTTP response model.
type ReservationResponse struct {
	ID               string `json:"id"`
	Service          string `json:"service"`
	ServiceName      string `json:"serviceName"`
	Date             string `json:"date"`
	DateDisplay      string `json:"dateDisplay"` // "DD/MM/YYYY"
	Time             string `json:"time"`
	OwnerName        string `json:"ownerName"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	PetName          string `json:"petName"`
	Species          string `json:"species"`
	NotificationSent bool   `json:"notificationSent"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Service:   r.Service,
		Date:      r.Date,
		Time:      r.Time,
		OwnerName: r.OwnerName,
		Phone:     r.Phone,
		Email:     r.Email,
		PetName:   r.PetName,
		Species:   r.Species,
	}
}

// FromAppointment converts a persisted appointment into the HTTP
// response.
func FromAppointment(a *domain.Appointment, notificationSent bool) *ReservationResponse {
	return &ReservationResponse{
		ID:               a.ID,
		Service:          string(a.Service),
		ServiceName:      a.Service.DisplayName(),
		Date:             a.Date,
		DateDisplay:      dateformat.Format(a.Date),
		Time:             a.Time.String(),
		OwnerName:        a.OwnerName,
		Phone:            a.Phone,
		Email:            a.Email,
		PetName:          a.PetName,
		Species:          a.Species,
		NotificationSent: notificationSent,
	}
}
