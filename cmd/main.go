package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_slots"
	getSlotSummaryHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_slot_summary"
	getStylistAppointmentsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_stylist_appointments"
	getStylistScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_stylist_schedule"
	updateStylistScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_stylist_schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	breaksRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/breaks"
	leaveRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/leave"
	settingsRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/settings"
	stylistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/stylist"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	getAvailableSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/ratelimit"
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		stylistRepository     *stylistRepo.Repository
		leaveRepository       *leaveRepo.Repository
		breaksRepository      *breaksRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		stylistRepository = stylistRepo.NewRepository(wrappedDB)
		leaveRepository = leaveRepo.NewRepository(wrappedDB)
		breaksRepository = breaksRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
	} else {
		stylistRepository = stylistRepo.NewRepository(db)
		leaveRepository = leaveRepo.NewRepository(db)
		breaksRepository = breaksRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		stylistRepository,
		breaksRepository,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		stylistRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		stylistRepository,
		leaveRepository,
		breaksRepository,
		appointmentRepository,
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSlotSummary := getSlotSummaryHandler.NewHandler(getAvailableSlotsUseCase, log)
	getStylistSchedule := getStylistScheduleHandler.NewHandler(scheduleSvc, log)
	updateStylistSchedule := updateStylistScheduleHandler.NewHandler(scheduleSvc, log)
	getStylistAppointments := getStylistAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, со скользящим rate limit)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.New(
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			ratelimit.RealClock{},
		)
		public.Use(middleware.RateLimit(limiter, metricsCollector))
		log.Info("Rate limiting enabled: %d requests per %ds window",
			cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}

	// Получение доступных слотов для записи
	public.HandleFunc("/stylists/{stylistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текстовая сводка свободного времени (для telegram-бота)
	public.HandleFunc("/stylists/{stylistId}/slot-summary",
		getSlotSummary.Handle).Methods(http.MethodGet)

	// Расписание стилиста
	public.HandleFunc("/stylists/{stylistId}/schedule",
		getStylistSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Обновление расписания стилиста (для администраторов салона)
	protected.HandleFunc("/stylists/{stylistId}/schedule",
		updateStylistSchedule.Handle).Methods(http.MethodPut)

	// Список записей стилиста на день
	protected.HandleFunc("/stylists/{stylistId}/appointments",
		getStylistAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}",
		getAppointment.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
