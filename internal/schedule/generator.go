// Package schedule implements the booking calendar rules: which days
// accept appointments and which slot start-times exist for a service.
package schedule

import (
	"time"

	"github.com/huellas-vet/booking-service/internal/domain"
	"github.com/huellas-vet/booking-service/pkg/types"
)

// Generator produces the slot sequence for a service from the
// immutable schedule configuration.
type Generator struct {
	cfg domain.ScheduleConfig
}

// NewGenerator creates a generator over the given configuration.
func NewGenerator(cfg domain.ScheduleConfig) *Generator {
	return &Generator{cfg: cfg}
}

// DurationFor returns the slot duration in minutes for a service name.
// The name is normalized first; unrecognized services get the default
// duration.
func (g *Generator) DurationFor(service string) int {
	key := domain.NormalizeService(service)
	if d, ok := g.cfg.Durations[key]; ok {
		return d
	}
	return g.cfg.DefaultDurationMinutes
}

// Slots generates the ordered sequence of valid slot start-times for a
// service. Starting at the opening hour, each slot start is emitted and
// the clock advanced by the service duration, carrying minute overflow
// into hours. A slot whose start reaches or passes the closing hour is
// never emitted, even when the previous slot would fit entirely within
// business hours. The sequence is regenerated on every call.
func (g *Generator) Slots(service string) []types.TimeString {
	duration := g.DurationFor(service)
	if duration <= 0 {
		duration = g.cfg.DefaultDurationMinutes
	}
	if duration <= 0 {
		return nil
	}

	slots := make([]types.TimeString, 0)
	hour := g.cfg.OpeningHour
	minutes := 0

	for hour < g.cfg.ClosingHour {
		slots = append(slots, types.MustTimeOfDay(hour, minutes))

		minutes += duration
		for minutes >= 60 {
			hour++
			minutes -= 60
		}
	}

	return slots
}

// IsBusinessDay reports whether a "YYYY-MM-DD" string falls on a
// configured business day. An unparseable date is never a business
// day; the check itself never fails.
func (g *Generator) IsBusinessDay(date string) bool {
	parsed, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		return false
	}
	return g.cfg.IsBusinessDay(parsed.Weekday())
}
