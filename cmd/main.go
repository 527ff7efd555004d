package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/huellas-vet/booking-service/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/huellas-vet/booking-service/internal/api/handlers/get_available_slots"
	listReservationsHandler "github.com/huellas-vet/booking-service/internal/api/handlers/list_reservations"
	"github.com/huellas-vet/booking-service/internal/api/middleware"
	"github.com/huellas-vet/booking-service/internal/config"
	appointmentsRepo "github.com/huellas-vet/booking-service/internal/infra/storage/appointments"
	"github.com/huellas-vet/booking-service/internal/integrations/mailer"
	"github.com/huellas-vet/booking-service/internal/schedule"
	"github.com/huellas-vet/booking-service/internal/service/availability"
	createReservationUC "github.com/huellas-vet/booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/huellas-vet/booking-service/internal/usecase/get_available_slots"
	"github.com/huellas-vet/booking-service/pkg/kvstore"
	"github.com/huellas-vet/booking-service/pkg/logger"
	"github.com/huellas-vet/booking-service/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting huellas booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Storage: one file-backed key/value store, one repository owning
	// the appointment collection under the configured key.
	kv := kvstore.NewFileStore(cfg.Storage.File)
	repository := appointmentsRepo.NewRepository(kv, cfg.Storage.Key, log)
	log.Info("Appointment store at %s (key=%s)", cfg.Storage.File, cfg.Storage.Key)

	// Schedule rules from the immutable config value.
	scheduleCfg := cfg.Schedule.ToDomain()
	generator := schedule.NewGenerator(scheduleCfg)
	log.Info("Schedule: %d business days, %02d:00-%02d:00",
		len(scheduleCfg.BusinessDays), scheduleCfg.OpeningHour, scheduleCfg.ClosingHour)

	resolver := availability.NewResolver(repository)

	// One create usecase per store: it serializes the slot check and
	// the read-modify-write cycle.
	createReservationUseCase := createReservationUC.NewUseCase(repository, resolver, generator, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(generator, resolver, log)

	var mailClient createReservationHandler.MailSender
	if cfg.Mailer.Enabled {
		mailClient = mailer.NewClient(cfg.Mailer.URL, time.Duration(cfg.Mailer.Timeout)*time.Second, log)
		log.Info("Confirmation mailer enabled (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)
	}

	var reservationMetrics createReservationHandler.Metrics
	if metricsCollector != nil {
		reservationMetrics = metricsCollector
	}

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, mailClient, reservationMetrics, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listReservations := listReservationsHandler.NewHandler(repository, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Booking form support: slot sequence with per-slot occupancy.
	api.HandleFunc("/services/{service}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Reservation creation.
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Admin listing of all stored reservations.
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
