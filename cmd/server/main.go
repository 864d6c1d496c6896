package main

import (
	"net/http"
	"os"

	_ "lavajato/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"lavajato/internal/auth"
	"lavajato/internal/cache"
	"lavajato/internal/config"
	"lavajato/internal/db"
	"lavajato/internal/handler"
	"lavajato/internal/model"
	"lavajato/internal/repository"
	"lavajato/internal/router"
	"lavajato/internal/service"
	"lavajato/internal/weather"
)

// @title LavaJato Express API
// @version 1.0
// @description Car-wash scheduling API with vehicles, appointments, notifications, and a weather widget.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Notification{},
			&model.Appointment{},
			&model.Vehicle{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warnf("drop table (may not exist): %v", err)
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Appointment{},
		&model.Notification{},
	); err != nil {
		logger.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cacheClient)
	vehicleService := service.NewVehicleService(vehicleRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo, cacheClient, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, vehicleRepo, notificationService, logger)
	weatherClient := weather.NewClient(cfg.WeatherBaseURL, &http.Client{Timeout: cfg.WeatherTimeout})

	// Handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	weatherHandler := handler.NewWeatherHandler(weatherClient)

	router.Register(
		e,
		cfg,
		authHandler,
		vehicleHandler,
		appointmentHandler,
		notificationHandler,
		weatherHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server start: %v", err)
	}
}
