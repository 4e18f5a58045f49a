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

	cancelAppointmentHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/create_appointment"
	createAvailabilityHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/create_availability"
	deleteAvailabilityHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/delete_availability"
	generateRecommendationHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/generate_recommendation"
	getAppointmentHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/get_available_slots"
	getTrainerAppointmentsHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/get_trainer_appointments"
	getTrainerAvailabilityHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/get_trainer_availability"
	getUserAppointmentsHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/get_user_appointments"
	listRecommendationsHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/list_recommendations"
	updateAppointmentStatusHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/update_appointment_status"
	updateAvailabilityHandler "github.com/m04kA/GMS-SchedulingService/internal/api/handlers/update_availability"
	"github.com/m04kA/GMS-SchedulingService/internal/api/middleware"
	"github.com/m04kA/GMS-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/GMS-SchedulingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/GMS-SchedulingService/internal/infra/storage/availability"
	recommendationRepo "github.com/m04kA/GMS-SchedulingService/internal/infra/storage/recommendation"
	gymServiceClient "github.com/m04kA/GMS-SchedulingService/internal/integrations/gymservice"
	recommenderClient "github.com/m04kA/GMS-SchedulingService/internal/integrations/recommender"
	appointmentsService "github.com/m04kA/GMS-SchedulingService/internal/service/appointments"
	availabilityService "github.com/m04kA/GMS-SchedulingService/internal/service/availability"
	recommendationsService "github.com/m04kA/GMS-SchedulingService/internal/service/recommendations"
	createAppointmentUC "github.com/m04kA/GMS-SchedulingService/internal/usecase/create_appointment"
	generateRecommendationUC "github.com/m04kA/GMS-SchedulingService/internal/usecase/generate_recommendation"
	getAvailableSlotsUC "github.com/m04kA/GMS-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/GMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/GMS-SchedulingService/pkg/logger"
	"github.com/m04kA/GMS-SchedulingService/pkg/metrics"
	"github.com/m04kA/GMS-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/GMS-SchedulingService/pkg/txmanager"
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

	log.Info("Starting GMS-SchedulingService...")
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

	// Инициализируем интеграционных клиентов
	gymClient := gymServiceClient.NewClient(
		cfg.GymService.URL,
		time.Duration(cfg.GymService.Timeout)*time.Second,
		log,
	)
	recClient := recommenderClient.NewClient(
		cfg.Recommender.URL,
		cfg.Recommender.APIKey,
		time.Duration(cfg.Recommender.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GymService=%s timeout=%ds, Recommender=%s timeout=%ds)",
		cfg.GymService.URL, cfg.GymService.Timeout, cfg.Recommender.URL, cfg.Recommender.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository    *appointmentRepo.Repository
		availabilityRepository   *availabilityRepo.Repository
		recommendationRepository *recommendationRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		recommendationRepository = recommendationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		recommendationRepository = recommendationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	recommendationSvc := recommendationsService.NewService(recommendationRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		gymClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		gymClient,
		log,
	)

	generateRecommendationUseCase := generateRecommendationUC.NewUseCase(
		recommendationRepository,
		recClient,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	getTrainerAppointments := getTrainerAppointmentsHandler.NewHandler(appointmentSvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	getTrainerAvailability := getTrainerAvailabilityHandler.NewHandler(availabilitySvc, log)
	generateRecommendation := generateRecommendationHandler.NewHandler(generateRecommendationUseCase, log)
	listRecommendations := listRecommendationsHandler.NewHandler(recommendationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты тренера на дату
	api.HandleFunc("/trainers/{trainerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание тренера
	api.HandleFunc("/trainers/{trainerId}/availability",
		getTrainerAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Записи на тренировки ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление статуса записи (для администраторов)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для администраторов) ---
	// Расписание тренера
	protected.HandleFunc("/trainers/{trainerId}/appointments", getTrainerAppointments.Handle).Methods(http.MethodGet)

	// Создание окна доступности
	protected.HandleFunc("/trainers/{trainerId}/availability", createAvailability.Handle).Methods(http.MethodPost)

	// Обновление окна доступности
	protected.HandleFunc("/availability/{availabilityId}", updateAvailability.Handle).Methods(http.MethodPut)

	// Деактивация окна доступности
	protected.HandleFunc("/availability/{availabilityId}", deleteAvailability.Handle).Methods(http.MethodDelete)

	// --- AI рекомендации ---
	// Генерация рекомендации
	protected.HandleFunc("/recommendations", generateRecommendation.Handle).Methods(http.MethodPost)

	// История рекомендаций пользователя
	protected.HandleFunc("/users/{userId}/recommendations", listRecommendations.Handle).Methods(http.MethodGet)

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
