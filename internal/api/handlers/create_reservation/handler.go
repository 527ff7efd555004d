package create_reservation

import (
	"errors"
	"net/http"

	"github.com/huellas-vet/booking-service/internal/api/handlers"
	"github.com/huellas-vet/booking-service/internal/integrations/mailer"
	createReservation "github.com/huellas-vet/booking-service/internal/usecase/create_reservation"
	"github.com/huellas-vet/booking-service/pkg/dateformat"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidEmail       = "El formato del email es inválido. Ejemplo: usuario@email.com"
	msgInvalidPhone       = "El teléfono debe tener exactamente 9 dígitos"
	msgNonBusinessDay     = "Solo se pueden agendar turnos de lunes a viernes"
	msgSlotUnavailable    = "Este horario ya no está disponible para el servicio seleccionado"
	msgStorageWrite       = "Error al guardar la reserva. Intenta nuevamente."
)

type Handler struct {
	useCase CreateReservationUseCase
	mail    MailSender // nil when notifications are disabled
	metrics Metrics    // nil when metrics are disabled
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, mail MailSender, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		mail:    mail,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidEmail):
			h.countOutcome("invalid_email")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createReservation.ErrInvalidPhone):
			h.countOutcome("invalid_phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createReservation.ErrNonBusinessDay):
			h.countOutcome("non_business_day")
			handlers.RespondBadRequest(w, msgNonBusinessDay)

		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.countOutcome("slot_unavailable")
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrStorageWrite):
			h.countOutcome("storage_error")
			h.logger.Error("POST /reservations - Storage write failed: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgStorageWrite)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.countOutcome("created")

	// The confirmation email runs after the reservation is persisted;
	// a delivery failure never rolls the booking back.
	notificationSent := false
	if h.mail != nil {
		confirmation := &mailer.Confirmation{
			Email:   appointment.Email,
			PetName: appointment.PetName,
			Service: appointment.Service.DisplayName(),
			Date:    dateformat.Format(appointment.Date),
			Time:    appointment.Time.String(),
		}
		if err := h.mail.SendConfirmation(r.Context(), confirmation); err != nil {
			h.logger.Warn("POST /reservations - Reservation id=%s saved but confirmation email failed: %v",
				appointment.ID, err)
		} else {
			notificationSent = true
		}
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, service=%s, date=%s, time=%s",
		appointment.ID, appointment.Service, appointment.Date, appointment.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromAppointment(appointment, notificationSent))
}

func (h *Handler) countOutcome(outcome string) {
	if h.metrics != nil {
		h.metrics.IncReservation(outcome)
	}
}
