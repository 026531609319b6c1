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

	cancelBookingHandler "github.com/dungeon-app/booking-service/internal/api/handlers/cancel_booking"
	castVoteHandler "github.com/dungeon-app/booking-service/internal/api/handlers/cast_vote"
	createBookingHandler "github.com/dungeon-app/booking-service/internal/api/handlers/create_booking"
	createNoticeHandler "github.com/dungeon-app/booking-service/internal/api/handlers/create_notice"
	createRoomHandler "github.com/dungeon-app/booking-service/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/dungeon-app/booking-service/internal/api/handlers/delete_room"
	generateInvoicesHandler "github.com/dungeon-app/booking-service/internal/api/handlers/generate_invoices"
	getBookingHandler "github.com/dungeon-app/booking-service/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/dungeon-app/booking-service/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/dungeon-app/booking-service/internal/api/handlers/get_user_bookings"
	getVoteTallyHandler "github.com/dungeon-app/booking-service/internal/api/handlers/get_vote_tally"
	listAuditHandler "github.com/dungeon-app/booking-service/internal/api/handlers/list_audit"
	listInvoicesHandler "github.com/dungeon-app/booking-service/internal/api/handlers/list_invoices"
	listNoticesHandler "github.com/dungeon-app/booking-service/internal/api/handlers/list_notices"
	listRoomsHandler "github.com/dungeon-app/booking-service/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/dungeon-app/booking-service/internal/api/handlers/list_users"
	loginHandler "github.com/dungeon-app/booking-service/internal/api/handlers/login"
	payInvoiceHandler "github.com/dungeon-app/booking-service/internal/api/handlers/pay_invoice"
	registerHandler "github.com/dungeon-app/booking-service/internal/api/handlers/register"
	updateRoomHandler "github.com/dungeon-app/booking-service/internal/api/handlers/update_room"
	updateUserRoleHandler "github.com/dungeon-app/booking-service/internal/api/handlers/update_user_role"
	updateUserStatusHandler "github.com/dungeon-app/booking-service/internal/api/handlers/update_user_status"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	"github.com/dungeon-app/booking-service/internal/auth"
	"github.com/dungeon-app/booking-service/internal/config"
	auditRepo "github.com/dungeon-app/booking-service/internal/infra/storage/audit"
	invoiceRepo "github.com/dungeon-app/booking-service/internal/infra/storage/billing"
	bookingRepo "github.com/dungeon-app/booking-service/internal/infra/storage/booking"
	noticeRepo "github.com/dungeon-app/booking-service/internal/infra/storage/notice"
	roomRepo "github.com/dungeon-app/booking-service/internal/infra/storage/room"
	userRepo "github.com/dungeon-app/booking-service/internal/infra/storage/user"
	paymentsClient "github.com/dungeon-app/booking-service/internal/integrations/payments"
	auditService "github.com/dungeon-app/booking-service/internal/service/audit"
	billingService "github.com/dungeon-app/booking-service/internal/service/billing"
	bookingsService "github.com/dungeon-app/booking-service/internal/service/bookings"
	noticesService "github.com/dungeon-app/booking-service/internal/service/notices"
	roomsService "github.com/dungeon-app/booking-service/internal/service/rooms"
	usersService "github.com/dungeon-app/booking-service/internal/service/users"
	createBookingUC "github.com/dungeon-app/booking-service/internal/usecase/create_booking"
	getDayScheduleUC "github.com/dungeon-app/booking-service/internal/usecase/get_day_schedule"
	"github.com/dungeon-app/booking-service/pkg/dbmetrics"
	"github.com/dungeon-app/booking-service/pkg/logger"
	"github.com/dungeon-app/booking-service/pkg/metrics"
	"github.com/dungeon-app/booking-service/pkg/simpletxmanager"
	"github.com/dungeon-app/booking-service/pkg/txmanager"
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

	log.Info("Starting dungeon booking service...")
	log.Info("Configuration loaded from config.toml")

	// The association's local timezone anchors every civil date and
	// slot time in the system.
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	timeProvider := &createBookingUC.RealTimeProvider{Location: location}

	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		cfg.Payments.APIKey,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Payments client initialized (url=%s timeout=%ds)", cfg.Payments.URL, cfg.Payments.Timeout)

	// Repositories, with or without the metrics wrapper.
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
		userRepository    *userRepo.Repository
		noticeRepository  *noticeRepo.Repository
		invoiceRepository *invoiceRepo.Repository
		auditRepository   *auditRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		noticeRepository = noticeRepo.NewRepository(wrappedDB)
		invoiceRepository = invoiceRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		noticeRepository = noticeRepo.NewRepository(db)
		invoiceRepository = invoiceRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Services.
	auditSvc := auditService.NewService(auditRepository, log)
	usersSvc := usersService.NewService(userRepository, auditSvc, log)
	roomsSvc := roomsService.NewService(roomRepository, bookingRepository, auditSvc, timeProvider, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, auditSvc, timeProvider, log)
	noticesSvc := noticesService.NewService(noticeRepository, userRepository, auditSvc, log)
	billingSvc := billingService.NewService(invoiceRepository, userRepository, payments, auditSvc,
		cfg.Billing.CategoryPricesCents, log)

	// Use cases.
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		userRepository,
		txMgr,
		auditSvc,
		timeProvider,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(bookingRepository, roomsSvc, log)

	// Handlers.
	register := registerHandler.NewHandler(usersSvc, log)
	login := loginHandler.NewHandler(usersSvc, tokenManager, log)
	getSchedule := getScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	createRoom := createRoomHandler.NewHandler(roomsSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomsSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	listNotices := listNoticesHandler.NewHandler(noticesSvc, log)
	createNotice := createNoticeHandler.NewHandler(noticesSvc, log)
	castVote := castVoteHandler.NewHandler(noticesSvc, log)
	getVoteTally := getVoteTallyHandler.NewHandler(noticesSvc, log)
	listInvoices := listInvoicesHandler.NewHandler(billingSvc, log)
	payInvoice := payInvoiceHandler.NewHandler(billingSvc, log)
	generateInvoices := generateInvoicesHandler.NewHandler(billingSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	updateUserStatus := updateUserStatusHandler.NewHandler(usersSvc, log)
	updateUserRole := updateUserRoleHandler.NewHandler(usersSvc, log)
	listAudit := listAuditHandler.NewHandler(auditSvc, log)

	// Router.
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes. Auth endpoints sit behind the per-IP rate limiter.
	rateLimiter := middleware.NewRateLimiter(
		float64(cfg.RateLimit.RequestsPerMinute)/60,
		cfg.RateLimit.Burst,
		time.Duration(cfg.RateLimit.TTLMinutes)*time.Minute,
		stopCh,
	)

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Use(rateLimiter.Handler)
	authRoutes.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Routes requiring a valid token.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/notices", listNotices.Handle).Methods(http.MethodGet)
	protected.Handle("/notices", middleware.RequireEditor(http.HandlerFunc(createNotice.Handle))).Methods(http.MethodPost)
	protected.HandleFunc("/notices/{noticeId}/votes", castVote.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/notices/{noticeId}/votes", getVoteTally.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/users/{userId}/invoices", listInvoices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{invoiceId}/pay", payInvoice.Handle).Methods(http.MethodPost)

	// Administrative routes.
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}/status", updateUserStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{userId}/role", updateUserRole.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/billing/periods/{period}/invoices", generateInvoices.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/audit", listAudit.Handle).Methods(http.MethodGet)

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

	close(stopCh)

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
