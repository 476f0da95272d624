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

	checkAvailabilityHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/check_availability"
	createAgreementHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/create_agreement"
	createBookingHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/delete_booking"
	getAgreementHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/get_agreement"
	getBookingHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/list_bookings"
	listRecycleBinHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/list_recycle_bin"
	purgeEntryHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/purge_entry"
	restoreEntryHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/restore_entry"
	updateAgreementHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/update_agreement"
	updateBookingHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/update_booking"
	wipeRecycleBinHandler "github.com/skyreach/OOH-BookingService/internal/api/handlers/wipe_recycle_bin"
	"github.com/skyreach/OOH-BookingService/internal/api/middleware"
	"github.com/skyreach/OOH-BookingService/internal/config"
	agreementRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/agreement"
	bookingRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/customer"
	installmentRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/installment"
	mediaRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/media"
	availabilityService "github.com/skyreach/OOH-BookingService/internal/service/availability"
	"github.com/skyreach/OOH-BookingService/internal/service/cascade"
	ledgerService "github.com/skyreach/OOH-BookingService/internal/service/ledger"
	mediasyncService "github.com/skyreach/OOH-BookingService/internal/service/mediasync"
	recyclebinService "github.com/skyreach/OOH-BookingService/internal/service/recyclebin"
	taxesService "github.com/skyreach/OOH-BookingService/internal/service/taxes"
	checkAvailabilityUC "github.com/skyreach/OOH-BookingService/internal/usecase/check_availability"
	createAgreementUC "github.com/skyreach/OOH-BookingService/internal/usecase/create_agreement"
	createBookingUC "github.com/skyreach/OOH-BookingService/internal/usecase/create_booking"
	deleteBookingUC "github.com/skyreach/OOH-BookingService/internal/usecase/delete_booking"
	getAgreementUC "github.com/skyreach/OOH-BookingService/internal/usecase/get_agreement"
	getBookingUC "github.com/skyreach/OOH-BookingService/internal/usecase/get_booking"
	listBookingsUC "github.com/skyreach/OOH-BookingService/internal/usecase/list_bookings"
	updateAgreementUC "github.com/skyreach/OOH-BookingService/internal/usecase/update_agreement"
	updateBookingUC "github.com/skyreach/OOH-BookingService/internal/usecase/update_booking"
	"github.com/skyreach/OOH-BookingService/pkg/dbmetrics"
	"github.com/skyreach/OOH-BookingService/pkg/logger"
	"github.com/skyreach/OOH-BookingService/pkg/metrics"
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

	log.Info("Starting OOH-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories, with query metrics when enabled
	var executor bookingRepo.DBExecutor = db
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	mediaRepository := mediaRepo.NewRepository(executor)
	customerRepository := customerRepo.NewRepository(executor)
	agreementRepository := agreementRepo.NewRepository(executor)
	installmentRepository := installmentRepo.NewRepository(executor)

	// Services
	availabilitySvc := availabilityService.NewService(bookingRepository, log)
	mediaSyncSvc := mediasyncService.NewService(bookingRepository, mediaRepository, log)
	ledgerSvc := ledgerService.NewService(customerRepository, log)
	taxesSvc := taxesService.NewService(installmentRepository, log)
	recycleBinSvc := recyclebinService.NewService(
		bookingRepository,
		mediaRepository,
		customerRepository,
		agreementRepository,
		installmentRepository,
		log,
	)
	cascadeRunner := cascade.NewRunner(log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, mediaRepository, customerRepository,
		availabilitySvc, mediaSyncSvc, ledgerSvc, cascadeRunner, log,
	)
	getBookingUseCase := getBookingUC.NewUseCase(bookingRepository, log)
	listBookingsUseCase := listBookingsUC.NewUseCase(bookingRepository, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository, availabilitySvc, mediaSyncSvc, ledgerSvc, cascadeRunner, log,
	)
	deleteBookingUseCase := deleteBookingUC.NewUseCase(
		bookingRepository, mediaSyncSvc, ledgerSvc, cascadeRunner, log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		mediaRepository, bookingRepository, availabilitySvc, log,
	)
	createAgreementUseCase := createAgreementUC.NewUseCase(agreementRepository, taxesSvc, log)
	updateAgreementUseCase := updateAgreementUC.NewUseCase(agreementRepository, taxesSvc, log)
	getAgreementUseCase := getAgreementUC.NewUseCase(agreementRepository, taxesSvc, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(getBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(listBookingsUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(deleteBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createAgreement := createAgreementHandler.NewHandler(createAgreementUseCase, log)
	updateAgreement := updateAgreementHandler.NewHandler(updateAgreementUseCase, log)
	getAgreement := getAgreementHandler.NewHandler(getAgreementUseCase, log)
	listRecycleBin := listRecycleBinHandler.NewHandler(recycleBinSvc, log)
	restoreEntry := restoreEntryHandler.NewHandler(recycleBinSvc, log)
	purgeEntry := purgeEntryHandler.NewHandler(recycleBinSvc, log)
	wipeRecycleBin := wipeRecycleBinHandler.NewHandler(recycleBinSvc, log)

	// Retention purge scheduler
	var scheduler *recyclebinService.Scheduler
	if cfg.RecycleBin.PurgeEnabled {
		scheduler = recyclebinService.NewScheduler(recycleBinSvc, log, cfg.RecycleBin.PurgeSchedule)
		if err := scheduler.Start(); err != nil {
			log.Fatal("Failed to start retention purge scheduler: %v", err)
		}
	}

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/media/{mediaId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Bookings ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Tender agreements ---
	protected.HandleFunc("/agreements", createAgreement.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/agreements/{agreementId}", getAgreement.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/agreements/{agreementId}", updateAgreement.Handle).Methods(http.MethodPatch)

	// --- Recycle bin ---
	protected.HandleFunc("/recycle-bin", listRecycleBin.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/recycle-bin/restore", restoreEntry.Handle).Methods(http.MethodPost)

	// Destructive recycle bin operations require the admin role
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/recycle-bin", wipeRecycleBin.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/recycle-bin/{entityType}/{id}", purgeEntry.Handle).Methods(http.MethodDelete)

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

	if scheduler != nil {
		scheduler.Stop()
	}

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
