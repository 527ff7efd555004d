package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huellas-vet/booking-service/internal/domain"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[storage]
file = "data/storage.json"

[schedule]
business_days = [1, 2, 3, 4, 5]
opening_hour = 9
closing_hour = 18
default_duration_minutes = 30

[schedule.durations]
veterinaria = 60
bano = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, domain.DefaultStorageKey, cfg.Storage.Key) // defaulted

	sched := cfg.Schedule.ToDomain()
	assert.Equal(t, 9, sched.OpeningHour)
	assert.Equal(t, 18, sched.ClosingHour)
	assert.Equal(t, 60, sched.Durations[domain.ServiceVeterinary])
	assert.Equal(t, 30, sched.Durations[domain.ServiceGrooming])
	assert.Contains(t, sched.BusinessDays, time.Monday)
	assert.NotContains(t, sched.BusinessDays, time.Sunday)
}

func TestLoadMailerEnabledWithoutURL(t *testing.T) {
	path := writeConfig(t, `
[mailer]
enabled = true
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadClosingBeforeOpening(t *testing.T) {
	path := writeConfig(t, `
[schedule]
opening_hour = 18
closing_hour = 9
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestScheduleToDomainDefaults(t *testing.T) {
	// A missing [schedule] section falls back to the reference clinic
	// schedule.
	sched := ScheduleConfig{}.ToDomain()
	assert.Equal(t, domain.DefaultScheduleConfig(), sched)
}

func TestScheduleDurationsKeysNormalized(t *testing.T) {
	s := ScheduleConfig{
		BusinessDays: []int{1},
		OpeningHour:  9,
		ClosingHour:  18,
		Durations:    map[string]int{"Baño": 45},
	}

	sched := s.ToDomain()
	assert.Equal(t, 45, sched.Durations[domain.ServiceGrooming])
	assert.Equal(t, domain.DefaultSlotDurationMinutes, sched.DefaultDurationMinutes)
}
