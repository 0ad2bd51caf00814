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
	"github.com/rs/cors"

	aiAssistHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/ai_assist"
	createAppointmentHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/list_services"
	updateStatusHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	openaiClient "github.com/m04kA/SMC-ClinicService/internal/integrations/openai"
	appointmentsService "github.com/m04kA/SMC-ClinicService/internal/service/appointments"
	aiAssistUC "github.com/m04kA/SMC-ClinicService/internal/usecase/ai_assist"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClinicService/pkg/filemetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/logger"
	"github.com/m04kA/SMC-ClinicService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ClinicService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Файловое хранилище заявок
	repository := appointmentRepo.NewRepository(cfg.Storage.File)
	log.Info("Appointment storage file: %s", cfg.Storage.File)

	var store appointmentsService.AppointmentStorage = repository
	if cfg.Metrics.Enabled {
		store = filemetrics.Wrap(repository, metricsCollector)
		log.Info("Storage metrics collection enabled")
	}

	// Клиент chat-completion API
	aiClient := openaiClient.NewClient(
		cfg.AIAssist.BaseURL,
		cfg.AIAssist.APIKey,
		cfg.AIAssist.Model,
		time.Duration(cfg.AIAssist.Timeout)*time.Second,
		log,
	)
	if aiClient.HasAPIKey() {
		log.Info("AI assist client initialized (url=%s, model=%s, timeout=%ds)",
			cfg.AIAssist.BaseURL, cfg.AIAssist.Model, cfg.AIAssist.Timeout)
	} else {
		log.Warn("OPENAI_API_KEY is not set: AI assist will respond in degraded mode")
	}

	// Инициализируем сервисы и use cases
	appointmentSvc := appointmentsService.NewService(store, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(log)
	aiAssistUseCase := aiAssistUC.NewUseCase(aiClient, log)

	// Инициализируем handlers
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(appointmentSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	listServices := listServicesHandler.NewHandler(log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	aiAssist := aiAssistHandler.NewHandler(aiAssistUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// --- Заявки ---
	r.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Расписание услуг ---
	r.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	r.HandleFunc("/services/{service}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- AI-ассистент ---
	r.HandleFunc("/ai-assist", aiAssist.Handle).Methods(http.MethodPost)

	// CORS: форма бронирования живет на отдельном origin
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type"},
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsWrapper.Handler(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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
