package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/huellas-vet/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/huellas-vet/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "Selecciona servicio y fecha"
	msgNonBusinessDay = "Solo puedes reservar turnos de lunes a viernes"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{service}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	service := mux.Vars(r)["service"]
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Service: service,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, getAvailableSlots.ErrNonBusinessDay):
			handlers.RespondBadRequest(w, msgNonBusinessDay)

		default:
			h.logger.Error("GET /services/{service}/slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
