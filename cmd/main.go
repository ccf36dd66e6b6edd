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

	checkAvailabilityHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/confirm_booking"
	createHoldHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/create_hold"
	createMaintenanceHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/create_maintenance"
	deleteBlockHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/delete_block"
	deleteBookingBlocksHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/delete_booking_blocks"
	getAvailableSlotsHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/get_available_slots"
	getVehicleBlocksHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/get_vehicle_blocks"
	releaseHoldHandler "github.com/vinetours/VT-FleetService/internal/api/handlers/release_hold"
	"github.com/vinetours/VT-FleetService/internal/api/middleware"
	"github.com/vinetours/VT-FleetService/internal/config"
	blackoutRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/blackout"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	vehicleRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/vehicle"
	complianceServiceClient "github.com/vinetours/VT-FleetService/internal/integrations/complianceservice"
	pricingServiceClient "github.com/vinetours/VT-FleetService/internal/integrations/pricingservice"
	blocksService "github.com/vinetours/VT-FleetService/internal/service/blocks"
	buffersService "github.com/vinetours/VT-FleetService/internal/service/buffers"
	holdsService "github.com/vinetours/VT-FleetService/internal/service/holds"
	checkAvailabilityUC "github.com/vinetours/VT-FleetService/internal/usecase/check_availability"
	confirmBookingUC "github.com/vinetours/VT-FleetService/internal/usecase/confirm_booking"
	createHoldUC "github.com/vinetours/VT-FleetService/internal/usecase/create_hold"
	createMaintenanceUC "github.com/vinetours/VT-FleetService/internal/usecase/create_maintenance"
	getAvailableSlotsUC "github.com/vinetours/VT-FleetService/internal/usecase/get_available_slots"
	"github.com/vinetours/VT-FleetService/pkg/dbmetrics"
	"github.com/vinetours/VT-FleetService/pkg/logger"
	"github.com/vinetours/VT-FleetService/pkg/metrics"
	"github.com/vinetours/VT-FleetService/pkg/simpletxmanager"
	"github.com/vinetours/VT-FleetService/pkg/txmanager"
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

	log.Info("Starting VT-FleetService...")
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
	pricingClient := pricingServiceClient.NewClient(
		cfg.PricingService.URL,
		time.Duration(cfg.PricingService.Timeout)*time.Second,
		log,
	)
	complianceClient := complianceServiceClient.NewClient(
		cfg.ComplianceService.URL,
		time.Duration(cfg.ComplianceService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PricingService=%s timeout=%ds, ComplianceService=%s timeout=%ds)",
		cfg.PricingService.URL, cfg.PricingService.Timeout, cfg.ComplianceService.URL, cfg.ComplianceService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		blockRepository    *blockRepo.Repository
		vehicleRepository  *vehicleRepo.Repository
		blackoutRepository *blackoutRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		blockRepository = blockRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		blockRepository = blockRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	holdTTL := time.Duration(cfg.Scheduling.HoldTTLMinutes) * time.Minute
	holdSvc := holdsService.NewService(blockRepository, holdTTL, log)
	bufferSvc := buffersService.NewService(blockRepository, cfg.Scheduling.BufferMinutes, log)
	blockSvc := blocksService.NewService(blockRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		blockRepository,
		vehicleRepository,
		blackoutRepository,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		checkAvailabilityUseCase,
		log,
	)

	createHoldUseCase := createHoldUC.NewUseCase(
		holdSvc,
		vehicleRepository,
		log,
	)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		blockRepository,
		holdSvc,
		bufferSvc,
		complianceClient,
		pricingClient,
		txMgr,
		log,
	)

	createMaintenanceUseCase := createMaintenanceUC.NewUseCase(
		blockRepository,
		vehicleRepository,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	releaseHold := releaseHoldHandler.NewHandler(holdSvc, log)
	createMaintenance := createMaintenanceHandler.NewHandler(createMaintenanceUseCase, log)
	getVehicleBlocks := getVehicleBlocksHandler.NewHandler(blockSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blockSvc, log)
	deleteBookingBlocks := deleteBookingBlocksHandler.NewHandler(blockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID для сквозной трассировки запросов
	r.Use(middleware.RequestID)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности одного слота
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Перечисление всех слотов на день
	api.HandleFunc("/vehicles/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Hold'ы ---
	// Создание hold'а при старте checkout
	protected.HandleFunc("/holds", createHold.Handle).Methods(http.MethodPost)

	// Подтверждение бронирования (конвертация hold'а)
	protected.HandleFunc("/holds/{holdId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Отпускание hold'а при отказе от checkout
	protected.HandleFunc("/holds/{holdId}", releaseHold.Handle).Methods(http.MethodDelete)

	// --- Управление блоками (для операторов) ---
	// Создание блока обслуживания
	protected.HandleFunc("/vehicles/{vehicleId}/maintenance", createMaintenance.Handle).Methods(http.MethodPost)

	// Расписание автомобиля на дату
	protected.HandleFunc("/vehicles/{vehicleId}/blocks", getVehicleBlocks.Handle).Methods(http.MethodGet)

	// Прямое удаление блока (maintenance, hold)
	protected.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// Снятие блоков бронирования при его отмене
	protected.HandleFunc("/bookings/{bookingId}/blocks", deleteBookingBlocks.Handle).Methods(http.MethodDelete)

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
