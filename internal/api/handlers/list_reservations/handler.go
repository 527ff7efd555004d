package list_reservations

import (
	"net/http"

	"github.com/huellas-vet/booking-service/internal/api/handlers"
)

type Handler struct {
	reader AppointmentReader
	logger Logger
}

func NewHandler(reader AppointmentReader, logger Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list := h.reader.ReadAll(r.Context())
	h.logger.Info("GET /reservations - %d reservations listed", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromAppointments(list))
}
