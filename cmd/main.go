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

	cancelBookingHandler "github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/confirm_booking"
	getBookingHandler "github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/get_bookings"
	refreshBookingsHandler "github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/refresh_bookings"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/middleware"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/auth"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/config"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/infra/tokenstore"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/integrations/hotelapi"
	bookingsService "github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/pkg/logger"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/pkg/metrics"
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

	log.Info("Starting %s...", cfg.App.Name)
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	loc, err := cfg.Tracker.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Tracker.Timezone, err)
	}

	// Хранилище токена
	var store auth.TokenStore
	switch cfg.TokenStore.Driver {
	case config.TokenStoreRedis:
		redisClient := tokenstore.NewRedisClient(tokenstore.RedisConfig{
			Address:  cfg.TokenStore.RedisAddress,
			Password: cfg.TokenStore.RedisPassword,
			DB:       cfg.TokenStore.RedisDB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := tokenstore.Ping(pingCtx, redisClient)
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}

		store = tokenstore.NewRedisStore(redisClient, cfg.TokenStore.RedisKey, 0)
		log.Info("Token store: redis (address=%s, key=%s)", cfg.TokenStore.RedisAddress, cfg.TokenStore.RedisKey)
	default:
		store = tokenstore.NewFileStore(cfg.TokenStore.Path)
		log.Info("Token store: file (path=%s)", cfg.TokenStore.Path)
	}

	// Сессия гостя: токен декодируется один раз при старте
	sessions := auth.NewProvider(store, auth.Options{
		IDClaim:    cfg.Auth.IDClaim,
		RoleClaim:  cfg.Auth.RoleClaim,
		SigningKey: cfg.Auth.SigningKey,
	}, log)

	session, err := sessions.Load(context.Background())
	if err != nil {
		log.Fatal("Failed to load auth session: %v", err)
	}
	log.Info("Auth session loaded (guest_id=%d, role=%s)", session.GuestID, session.Role)

	// Инициализируем клиент backend гостиницы
	hotelClient := hotelapi.NewClient(
		cfg.HotelAPI.URL,
		time.Duration(cfg.HotelAPI.Timeout)*time.Second,
		sessions,
		loc,
		log,
	)
	if metricsCollector != nil {
		hotelClient = hotelClient.WithObserver(metricsCollector)
	}
	log.Info("Hotel API client initialized (url=%s timeout=%ds)", cfg.HotelAPI.URL, cfg.HotelAPI.Timeout)

	// Инициализируем трекер
	var trackerMetrics bookingsService.Metrics
	if metricsCollector != nil {
		trackerMetrics = metricsCollector
	}
	tracker := bookingsService.NewTracker(
		hotelClient,
		&bookingsService.RealTimeProvider{},
		bookingsService.NewLogNotifier(log),
		trackerMetrics,
		log,
	)

	trackerCtx, stopTracker := context.WithCancel(context.Background())
	defer stopTracker()

	if err := tracker.StartPolling(trackerCtx, session.GuestID, cfg.Tracker.PollInterval()); err != nil {
		log.Fatal("Failed to start polling: %v", err)
	}
	if err := tracker.StartCountdown(trackerCtx, cfg.Tracker.TickInterval()); err != nil {
		log.Fatal("Failed to start countdown: %v", err)
	}

	// Инициализируем handlers
	getBookings := getBookingsHandler.NewHandler(tracker, log)
	getBooking := getBookingHandler.NewHandler(tracker, log)
	refreshBookings := refreshBookingsHandler.NewHandler(tracker, log)
	confirmBooking := confirmBookingHandler.NewHandler(tracker, log)
	cancelBooking := cancelBookingHandler.NewHandler(tracker, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(sessions))

	// Снимок трекера
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Принудительное обновление
	api.HandleFunc("/bookings/refresh", refreshBookings.Handle).Methods(http.MethodPost)

	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

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

	// Останавливаем таймеры и дожидаемся незавершённых загрузок
	tracker.Stop()
	log.Info("Booking tracker stopped")

	log.Info("Server stopped gracefully")
}
