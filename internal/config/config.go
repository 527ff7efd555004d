// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/huellas-vet/booking-service/internal/domain"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Mailer   MailerConfig   `toml:"mailer"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig configures the HTTP server. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig configures the logger. An empty file means stdout.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig configures the file-backed key/value store.
type StorageConfig struct {
	File string `toml:"file"`
	Key  string `toml:"key"`
}

// MailerConfig configures the confirmation-email client. Timeout is in
// seconds.
type MailerConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig is the TOML shape of the clinic schedule. Business
// days use weekday numbers with Sunday=0.
type ScheduleConfig struct {
	BusinessDays           []int          `toml:"business_days"`
	OpeningHour            int            `toml:"opening_hour"`
	ClosingHour            int            `toml:"closing_hour"`
	DefaultDurationMinutes int            `toml:"default_duration_minutes"`
	Durations              map[string]int `toml:"durations"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = domain.DefaultStorageKey
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Mailer.Enabled && cfg.Mailer.URL == "" {
		return nil, fmt.Errorf("config: mailer enabled without url")
	}

	if cfg.Schedule.ClosingHour <= cfg.Schedule.OpeningHour && cfg.Schedule.ClosingHour != 0 {
		return nil, fmt.Errorf("config: closing_hour must be after opening_hour")
	}

	return &cfg, nil
}

// ToDomain converts the TOML schedule into the immutable domain value.
// A missing [schedule] section yields the reference clinic schedule.
func (s ScheduleConfig) ToDomain() domain.ScheduleConfig {
	if len(s.BusinessDays) == 0 && s.OpeningHour == 0 && s.ClosingHour == 0 {
		return domain.DefaultScheduleConfig()
	}

	days := make([]time.Weekday, 0, len(s.BusinessDays))
	for _, d := range s.BusinessDays {
		days = append(days, time.Weekday(d%7))
	}

	durations := make(map[domain.ServiceKey]int, len(s.Durations))
	for name, minutes := range s.Durations {
		durations[domain.NormalizeService(name)] = minutes
	}

	defaultDuration := s.DefaultDurationMinutes
	if defaultDuration == 0 {
		defaultDuration = domain.DefaultSlotDurationMinutes
	}

	return domain.ScheduleConfig{
		BusinessDays:           days,
		OpeningHour:            s.OpeningHour,
		ClosingHour:            s.ClosingHour,
		Durations:              durations,
		DefaultDurationMinutes: defaultDuration,
	}
}
