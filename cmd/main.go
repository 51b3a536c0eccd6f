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

	cancelReservationHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/get_availability"
	getFacilityHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/get_facility"
	getReservationHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/get_reservation"
	listFacilitiesHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/list_facilities"
	listFacilityReservationsHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/list_facility_reservations"
	listReservationsHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/list_reservations"
	updateReservationStatusHandler "github.com/m04kA/CMH-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/CMH-ReservationService/internal/api/middleware"
	"github.com/m04kA/CMH-ReservationService/internal/auth"
	"github.com/m04kA/CMH-ReservationService/internal/config"
	credentialsStore "github.com/m04kA/CMH-ReservationService/internal/infra/storage/credentials"
	facilityStore "github.com/m04kA/CMH-ReservationService/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/CMH-ReservationService/internal/infra/storage/reservation"
	reservationPGRepo "github.com/m04kA/CMH-ReservationService/internal/infra/storage/reservationpg"
	facilitiesService "github.com/m04kA/CMH-ReservationService/internal/service/facilities"
	reservationsService "github.com/m04kA/CMH-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/CMH-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/CMH-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/CMH-ReservationService/pkg/logger"
	"github.com/m04kA/CMH-ReservationService/pkg/memtx"
	"github.com/m04kA/CMH-ReservationService/pkg/metrics"
	"github.com/m04kA/CMH-ReservationService/pkg/txmanager"
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

	log.Info("Starting CMH-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог объектов и хранилище учётных данных заполняются из конфигурации
	// и неизменяемы после старта
	directory, err := facilityStore.NewDirectory(cfg.Facilities)
	if err != nil {
		log.Fatal("Failed to build facility directory: %v", err)
	}
	log.Info("Facility directory loaded: %d facilities", len(cfg.Facilities))

	credStore, err := credentialsStore.NewStore(cfg.Auth.Tokens)
	if err != nil {
		log.Fatal("Failed to build credential store: %v", err)
	}
	log.Info("Credential store loaded: %d tokens", len(cfg.Auth.Tokens))

	// Интерфейс для transaction manager (in-memory и postgres варианты)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Выбираем хранилище бронирований: по умолчанию in-memory,
	// postgres — если включён в конфигурации
	var (
		createRepo createReservationUC.ReservationRepository
		svcRepo    reservationsService.ReservationRepository
		availRepo  getAvailabilityUC.ReservationRepository
		txMgr      TxManager
	)

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		pgRepo := reservationPGRepo.NewRepository(db)
		createRepo, svcRepo, availRepo = pgRepo, pgRepo, pgRepo
		txMgr = txmanager.NewTransactionManager(db)
	} else {
		memRepo := reservationRepo.NewRepository()
		createRepo, svcRepo, availRepo = memRepo, memRepo, memRepo
		txMgr = memtx.NewManager(memRepo.Locker())
		log.Info("Using in-memory reservation store")
	}

	// Метрики доменных событий: no-op, когда метрики выключены
	var domainMetrics interface {
		ReservationCreated()
		ReservationCancelled()
		ReservationRejected(reason string)
	}
	if cfg.Metrics.Enabled {
		domainMetrics = metricsCollector
	} else {
		domainMetrics = metrics.Nop{}
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(svcRepo, txMgr, domainMetrics, log)
	facilitySvc := facilitiesService.NewService(directory, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(createRepo, directory, txMgr, domainMetrics, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(availRepo, directory, log)

	// Резолвер личности: session cookie, затем bearer token
	identityResolver := auth.NewResolver(cfg.Auth.SessionCookieName, credStore, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	listFacilityReservations := listFacilityReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог объектов
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)

	// Занятость слотов объекта
	api.HandleFunc("/facilities/{facilityId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют валидных учётных данных)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identityResolver, log))

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований вызывающего
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Перевод статуса бронирования (для staff)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Управление объектом (для staff) ---
	// Список бронирований объекта
	protected.HandleFunc("/facilities/{facilityId}/reservations", listFacilityReservations.Handle).Methods(http.MethodGet)

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
