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

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/m04kA/AC-BookingService/internal/api"
	createAddressHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/create_address"
	createBookingHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/get_booking"
	getServiceHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/get_service"
	listAddressesHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/list_addresses"
	listBookingsHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/AC-BookingService/internal/api/handlers/list_services"
	"github.com/m04kA/AC-BookingService/internal/api/middleware"
	"github.com/m04kA/AC-BookingService/internal/config"
	"github.com/m04kA/AC-BookingService/internal/infra/lock"
	addressRepo "github.com/m04kA/AC-BookingService/internal/infra/storage/address"
	bookingRepo "github.com/m04kA/AC-BookingService/internal/infra/storage/booking"
	addressesService "github.com/m04kA/AC-BookingService/internal/service/addresses"
	bookingsService "github.com/m04kA/AC-BookingService/internal/service/bookings"
	"github.com/m04kA/AC-BookingService/internal/service/calendar"
	"github.com/m04kA/AC-BookingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/AC-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/AC-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/AC-BookingService/pkg/logger"
	"github.com/m04kA/AC-BookingService/pkg/metrics"
	"github.com/m04kA/AC-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/AC-BookingService/pkg/retry"
)

// bookingLedger журнал бронирований, общий для всех драйверов хранилища
type bookingLedger interface {
	createBookingUC.BookingLedger
	getAvailableSlotsUC.BookingLedger
	bookingsService.BookingRepository
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	var logOpts []logger.Option
	if cfg.Logs.Format == "console" {
		logOpts = append(logOpts, logger.WithConsole())
	}
	logOpts = append(logOpts, logger.WithField("service", cfg.Metrics.ServiceName))

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logOpts...)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем журнал бронирований
	ledger, closeLedger, err := openLedger(cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to open booking ledger: %v", err)
	}
	defer closeLedger()

	// Блокировка слотов: Redis для нескольких реплик, иначе в памяти процесса
	var guard createBookingUC.SlotGuard
	if cfg.Redis.Enabled {
		client := lock.NewRedisClient(cfg.Redis)
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		guard = lock.NewRedis(
			client,
			cfg.Redis.KeyPrefix,
			time.Duration(cfg.Redis.LockTTL)*time.Millisecond,
			time.Duration(cfg.Redis.LockRetryInterval)*time.Millisecond,
			log,
		)
		log.Info("Slot locks backed by redis (address=%s)", cfg.Redis.Address)
	} else {
		guard = lock.NewLocal()
		log.Info("Slot locks held in process memory")
	}

	// Расписание и каталог
	generator, err := calendar.NewGenerator(calendar.Schedule{
		StartHour:       cfg.Schedule.StartHour,
		EndHour:         cfg.Schedule.EndHour,
		IntervalMinutes: cfg.Schedule.IntervalMinutes,
		Capacity:        cfg.Schedule.Capacity,
	})
	if err != nil {
		log.Fatal("Failed to build slot schedule: %v", err)
	}

	catalogSvc, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load service catalog: %v", err)
	}
	log.Info("Service catalog loaded (services=%d, technicians=%d)",
		len(catalogSvc.List()), len(catalogSvc.Technicians()))

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(ledger, log)
	addressSvc := addressesService.NewService(addressRepo.NewMemory(), log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		ledger,
		generator,
		guard,
		catalogSvc,
		metricsCollector,
		cfg.Schedule.LimitedThreshold,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		ledger,
		generator,
		cfg.Schedule.LimitedThreshold,
		retry.DefaultPolicy(),
		log,
	)

	// Настраиваем роутер
	routerOpts := api.RouterOptions{}
	if cfg.Metrics.Enabled {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		routerOpts.RateLimiter = limiter
		log.Info("Rate limiting enabled (rps=%.2f, burst=%d, trusted_proxies=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, len(cfg.RateLimit.TrustedProxies))
	}

	r := api.NewRouter(api.Handlers{
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log).Handle,
		CreateBooking:     createBookingHandler.NewHandler(createBookingUseCase, log).Handle,
		GetBooking:        getBookingHandler.NewHandler(bookingSvc, log).Handle,
		ListBookings:      listBookingsHandler.NewHandler(bookingSvc, log).Handle,
		ExportBookings:    exportBookingsHandler.NewHandler(bookingSvc, log).Handle,
		ListServices:      listServicesHandler.NewHandler(catalogSvc, log).Handle,
		GetService:        getServiceHandler.NewHandler(catalogSvc, log).Handle,
		CreateAddress:     createAddressHandler.NewHandler(addressSvc, log).Handle,
		ListAddresses:     listAddressesHandler.NewHandler(addressSvc, log).Handle,
	}, routerOpts)

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

// openLedger открывает журнал бронирований по драйверу из конфигурации
func openLedger(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (bookingLedger, func(), error) {
	var (
		driver string
		dsn    string
	)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Info("Booking ledger kept in memory, bookings are lost on restart")
		return bookingRepo.NewMemory(), func() {}, nil
	case config.StoragePostgres:
		driver, dsn = psqlbuilder.DriverPostgres, cfg.Database.DSN()
	case config.StorageSQLite:
		driver, dsn = psqlbuilder.DriverSQLite, cfg.Storage.SQLitePath
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}
	closeDB := func() { _ = db.Close() }

	// Настраиваем connection pool
	if driver == psqlbuilder.DriverSQLite {
		// sqlite допускает одного писателя
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := bookingRepo.Migrate(ctx, db, driver); err != nil {
		closeDB()
		return nil, nil, err
	}
	m.RegisterDBStats(db, "bookings")

	if driver == psqlbuilder.DriverPostgres {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	} else {
		log.Info("Successfully opened sqlite ledger (path=%s)", cfg.Storage.SQLitePath)
	}

	return bookingRepo.NewRepository(db, driver), closeDB, nil
}
