package create_reservation

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huellas-vet/booking-service/internal/domain"
	appointmentsRepo "github.com/huellas-vet/booking-service/internal/infra/storage/appointments"
	"github.com/huellas-vet/booking-service/internal/schedule"
	"github.com/huellas-vet/booking-service/internal/service/availability"
	"github.com/huellas-vet/booking-service/pkg/kvstore"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time { return f.t }

// failingSetKV reads fine but rejects every write.
type failingSetKV struct {
	*kvstore.MemStore
}

func (f *failingSetKV) Set(key, value string) error {
	return errors.New("quota exceeded")
}

func newTestUseCase(kv appointmentsRepo.KV) (*UseCase, *appointmentsRepo.Repository) {
	repo := appointmentsRepo.NewRepository(kv, domain.DefaultStorageKey, nopLogger{})
	resolver := availability.NewResolver(repo)
	generator := schedule.NewGenerator(domain.DefaultScheduleConfig())

	uc := NewUseCase(repo, resolver, generator, nopLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)}
	return uc, repo
}

func makeRequest(mutate func(*Request)) *Request {
	req := &Request{
		Service:   "Veterinaria",
		Date:      "2026-02-16", // a Monday
		Time:      "09:00",
		OwnerName: " Juan ",
		Phone:     "123 456 789",
		Email:     " JUAN@TEST.COM ",
		PetName:   " Luna ",
		Species:   "Perro",
	}
	if mutate != nil {
		mutate(req)
	}
	return req
}

func TestExecuteSuccess(t *testing.T) {
	uc, repo := newTestUseCase(kvstore.NewMemStore())
	ctx := context.Background()

	appt, err := uc.Execute(ctx, makeRequest(nil))
	require.NoError(t, err)

	assert.Equal(t, domain.ServiceVeterinary, appt.Service)
	assert.Equal(t, "2026-02-16", appt.Date)
	assert.Equal(t, "09:00", appt.Time.String())
	assert.Equal(t, "Juan", appt.OwnerName)
	assert.Equal(t, "Luna", appt.PetName)
	assert.Equal(t, "123456789", appt.Phone)
	assert.Equal(t, "juan@test.com", appt.Email)
	assert.Equal(t, "Perro", appt.Species)

	// The id comes from the creation timestamp.
	expectedID := strconv.FormatInt(time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC).UnixMilli(), 10)
	assert.Equal(t, expectedID, appt.ID)

	stored := repo.ReadAll(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, appt, stored[0])
}

func TestExecuteValidationOrder(t *testing.T) {
	uc, repo := newTestUseCase(kvstore.NewMemStore())
	ctx := context.Background()

	// Everything invalid at once: email is checked first.
	_, err := uc.Execute(ctx, makeRequest(func(r *Request) {
		r.Email = "juan@@test"
		r.Phone = "12345"
		r.Date = "2026-02-22" // Sunday
	}))
	assert.ErrorIs(t, err, ErrInvalidEmail)

	// Valid email, bad phone and date: phone wins.
	_, err = uc.Execute(ctx, makeRequest(func(r *Request) {
		r.Phone = "123-456-789" // hyphens are not stripped
		r.Date = "2026-02-22"
	}))
	assert.ErrorIs(t, err, ErrInvalidPhone)

	// Valid contact data, Sunday date.
	_, err = uc.Execute(ctx, makeRequest(func(r *Request) {
		r.Date = "2026-02-22"
	}))
	assert.ErrorIs(t, err, ErrNonBusinessDay)

	// Unparseable date counts as a non-business day, never panics.
	_, err = uc.Execute(ctx, makeRequest(func(r *Request) {
		r.Date = "not-a-date"
	}))
	assert.ErrorIs(t, err, ErrNonBusinessDay)

	// No rejection touched the store.
	assert.Empty(t, repo.ReadAll(ctx))
}

func TestExecuteRejectsDoubleBooking(t *testing.T) {
	uc, _ := newTestUseCase(kvstore.NewMemStore())
	ctx := context.Background()

	_, err := uc.Execute(ctx, makeRequest(nil))
	require.NoError(t, err)

	// Identical input again: the slot is now occupied.
	_, err = uc.Execute(ctx, makeRequest(nil))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Another time on the same day is still free.
	appt, err := uc.Execute(ctx, makeRequest(func(r *Request) {
		r.Time = "10:00"
	}))
	require.NoError(t, err)
	assert.Equal(t, "10:00", appt.Time.String())
}

func TestExecuteAccentVariantOccupiesSameSlot(t *testing.T) {
	uc, repo := newTestUseCase(kvstore.NewMemStore())
	ctx := context.Background()

	require.NoError(t, repo.WriteAll(ctx, []*domain.Appointment{
		{ID: "1", Service: "bano", Date: "2026-02-16", Time: "09:00"},
	}))

	_, err := uc.Execute(ctx, makeRequest(func(r *Request) {
		r.Service = "Baño"
	}))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecuteOtherServiceDoesNotBlockSlot(t *testing.T) {
	uc, repo := newTestUseCase(kvstore.NewMemStore())
	ctx := context.Background()

	require.NoError(t, repo.WriteAll(ctx, []*domain.Appointment{
		{ID: "1", Service: "bano", Date: "2026-02-16", Time: "09:00"},
	}))

	appt, err := uc.Execute(ctx, makeRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceVeterinary, appt.Service)
	assert.Len(t, repo.ReadAll(ctx), 2)
}

func TestExecuteStorageWriteFailure(t *testing.T) {
	uc, repo := newTestUseCase(&failingSetKV{MemStore: kvstore.NewMemStore()})
	ctx := context.Background()

	_, err := uc.Execute(ctx, makeRequest(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageWrite)

	// The candidate appointment was discarded, not retried.
	assert.Empty(t, repo.ReadAll(ctx))
}
