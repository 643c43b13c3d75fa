package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "carrent-backend/internal/api/http"
	"carrent-backend/internal/config"
	"carrent-backend/internal/logger"
	"carrent-backend/internal/repository/postgres"
	"carrent-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CarRent booking backend...", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	availabilitySvc := service.NewAvailabilityService(store.ReservationRepository)
	bookingSvc := service.NewBookingService(
		store.ReservationRepository,
		store.CarRepository,
		store.UserRepository,
		store.NotificationRepository,
		availabilitySvc,
		emailSvc,
		service.SystemClock,
	)
	carSvc := service.NewCarService(store.CarRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	reservationHandler := api.NewReservationHandler(bookingSvc, availabilitySvc, service.SystemClock)
	carHandler := api.NewCarHandler(carSvc)
	notificationHandler := api.NewNotificationHandler(noteSvc)

	router := api.NewRouter(reservationHandler, carHandler, notificationHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
