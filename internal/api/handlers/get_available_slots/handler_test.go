package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/huellas-vet/booking-service/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotService string
	gotDate    string
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotService = req.Service
	s.gotDate = req.Date
	return s.resp, s.err
}

func doRequest(uc GetAvailableSlotsUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	h := NewHandler(uc, nopLogger{})
	r.HandleFunc("/api/v1/services/{service}/slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandleOK(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Service: "veterinaria",
		Date:    "2026-02-16",
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", DurationMinutes: 60, Available: false},
			{StartTime: "10:00", DurationMinutes: 60, Available: true},
		},
	}}

	rec := doRequest(uc, "/api/v1/services/Veterinaria/slots?date=2026-02-16")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Veterinaria", uc.gotService)
	assert.Equal(t, "2026-02-16", uc.gotDate)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "16/02/2026", resp.DateDisplay)
	require.Len(t, resp.Slots, 2)
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
	assert.True(t, resp.HasAvailable)
}

func TestHandleMissingDate(t *testing.T) {
	uc := &stubUseCase{err: getAvailableSlots.ErrInvalidInput}

	rec := doRequest(uc, "/api/v1/services/Veterinaria/slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMissingDate)
}

func TestHandleNonBusinessDay(t *testing.T) {
	uc := &stubUseCase{err: getAvailableSlots.ErrNonBusinessDay}

	rec := doRequest(uc, "/api/v1/services/Veterinaria/slots?date=2026-02-22")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNonBusinessDay)
}
