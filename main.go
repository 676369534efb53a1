package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"mesto-be/internal/cache"
	"mesto-be/internal/config"
	"mesto-be/internal/controllers"
	"mesto-be/internal/database"
	"mesto-be/internal/jwt"
	"mesto-be/internal/repository"
	"mesto-be/internal/routes"
	"mesto-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()
	setupLogging(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; profiles are read from the database without it.
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Failed to connect to Redis, continuing without cache")
			cacheClient = nil
		} else {
			logrus.Info("Connected to Redis cache")
			defer cacheClient.Close()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	cardRepo := repository.NewCardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.TokenTTL())

	// Initialize services
	authService, err := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}
	userService := service.NewUserService(userRepo, cacheClient)
	cardService := service.NewCardService(cardRepo)

	router, err := routes.NewRouter(routes.Handlers{
		Auth:   controllers.NewAuthController(authService, jwtService.TTL()),
		Users:  controllers.NewUserController(userService),
		Cards:  controllers.NewCardController(cardService),
		QRCode: controllers.NewQRCodeController(cardService),
	}, jwtService)
	if err != nil {
		logrus.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", cfg.Addr()).Info("Server starting")
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("Graceful shutdown failed")
		}
		logrus.Info("Server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Server error")
		}
	}
}

func setupLogging(levelName string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		logrus.WithField("level", levelName).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
