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

	bookingSessionHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/booking_session"
	cancelBookingHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/cancel_booking"
	createOfferHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/create_offer"
	deleteOfferHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/delete_offer"
	getApplicableOffersHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_applicable_offers"
	getAvailableSlotsHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_booking"
	getCitiesHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_cities"
	getCitySalonsHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_city_salons"
	getOfferHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_offer"
	getOffersHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_offers"
	getSalonBookingsHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_salon_bookings"
	getSalonStaffHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_salon_staff"
	getServiceCatalogHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_service_catalog"
	getUserBookingsHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/update_booking_status"
	updateOfferHandler "github.com/rakshdevstudio/JCB/internal/api/handlers/update_offer"
	"github.com/rakshdevstudio/JCB/internal/api/middleware"
	"github.com/rakshdevstudio/JCB/internal/config"
	"github.com/rakshdevstudio/JCB/internal/infra/cache"
	"github.com/rakshdevstudio/JCB/internal/infra/sessionstore"
	bookingRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/booking"
	catalogRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/catalog"
	offerRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/offer"
	identityClient "github.com/rakshdevstudio/JCB/internal/integrations/identity"
	bookingsService "github.com/rakshdevstudio/JCB/internal/service/bookings"
	catalogService "github.com/rakshdevstudio/JCB/internal/service/catalog"
	offersService "github.com/rakshdevstudio/JCB/internal/service/offers"
	createBookingUC "github.com/rakshdevstudio/JCB/internal/usecase/create_booking"
	getApplicableOffersUC "github.com/rakshdevstudio/JCB/internal/usecase/get_applicable_offers"
	getAvailableSlotsUC "github.com/rakshdevstudio/JCB/internal/usecase/get_available_slots"
	"github.com/rakshdevstudio/JCB/pkg/logger"
	"github.com/rakshdevstudio/JCB/pkg/metrics"
	"github.com/rakshdevstudio/JCB/pkg/txmanager"
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

	log.Info("Starting JCB booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Сессии мастера записи и кэш справочника: redis, если включён,
	// иначе память процесса
	sessionTTL := time.Duration(cfg.Booking.SessionTTLMinutes) * time.Minute
	catalogTTL := time.Duration(cfg.Booking.CatalogCacheTTLSec) * time.Second

	var (
		sessionStore sessionstore.Store
		catalogCache cache.Cache
	)
	if cfg.Redis.Enabled {
		redisClient := cache.NewRedisClient(cfg.Redis)
		redisCache := cache.NewRedis(redisClient)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		sessionStore = sessionstore.NewRedisStore(redisClient, sessionTTL)
		catalogCache = redisCache
		log.Info("Redis connected (addr=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
	} else {
		sessionStore = sessionstore.NewMemoryStore(sessionTTL)
		catalogCache = cache.NewNoop()
		log.Info("Redis disabled, using in-memory session store")
	}

	// Инициализируем интеграционного клиента
	identity := identityClient.NewClient(
		cfg.Auth.IdentityURL,
		time.Duration(cfg.Auth.IdentityTimeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s, timeout=%ds)", cfg.Auth.IdentityURL, cfg.Auth.IdentityTimeout)

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	offerRepository := offerRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, catalogRepository, identity, log)
	offerSvc := offersService.NewService(offerRepository, catalogRepository, identity, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, catalogCache, catalogTTL, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, catalogRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, catalogRepository, log)
	getApplicableOffersUseCase := getApplicableOffersUC.NewUseCase(offerRepository, log)

	// Инициализируем handlers
	getCities := getCitiesHandler.NewHandler(catalogSvc, log)
	getCitySalons := getCitySalonsHandler.NewHandler(catalogSvc, log)
	getServiceCatalog := getServiceCatalogHandler.NewHandler(catalogSvc, log)
	getSalonStaff := getSalonStaffHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getOffers := getOffersHandler.NewHandler(offerSvc, log)
	getOffer := getOfferHandler.NewHandler(offerSvc, log)
	createOffer := createOfferHandler.NewHandler(offerSvc, log)
	updateOffer := updateOfferHandler.NewHandler(offerSvc, log)
	deleteOffer := deleteOfferHandler.NewHandler(offerSvc, log)
	getApplicableOffers := getApplicableOffersHandler.NewHandler(getApplicableOffersUseCase, log)
	bookingSession := bookingSessionHandler.NewHandler(sessionStore, catalogRepository, createBookingUseCase, getApplicableOffersUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник
	api.HandleFunc("/cities", getCities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cities/{cityId}/salons", getCitySalons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/service-categories", getServiceCatalog.HandleCategories).Methods(http.MethodGet)
	api.HandleFunc("/services", getServiceCatalog.HandleServices).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/staff", getSalonStaff.Handle).Methods(http.MethodGet)

	// Сетка слотов
	api.HandleFunc("/salons/{salonId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Акции: подбор для бронирования регистрируется раньше маршрута с ID
	api.HandleFunc("/offers/applicable", getApplicableOffers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offers", getOffers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offers/{offerId}", getOffer.Handle).Methods(http.MethodGet)

	// ============================================================
	// WIZARD ROUTES (гость или авторизованный пользователь)
	// ============================================================

	wizard := api.PathPrefix("/booking-sessions").Subrouter()
	wizard.Use(middleware.OptionalAuth(cfg.Auth.JWTSecret))

	wizard.HandleFunc("", bookingSession.HandleCreate).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}", bookingSession.HandleGet).Methods(http.MethodGet)
	wizard.HandleFunc("/{sessionId}/city", bookingSession.HandleSelectCity).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/salon", bookingSession.HandleSelectSalon).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/service", bookingSession.HandleSelectService).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/staff", bookingSession.HandleSelectStaff).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/datetime", bookingSession.HandleSelectDateTime).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/back", bookingSession.HandleBack).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/goto", bookingSession.HandleGoTo).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/reset", bookingSession.HandleReset).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/submit", bookingSession.HandleSubmit).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// --- Управление акциями (для super_admin) ---
	protected.HandleFunc("/offers", createOffer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/offers/{offerId}", updateOffer.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/offers/{offerId}", deleteOffer.Handle).Methods(http.MethodDelete)

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
