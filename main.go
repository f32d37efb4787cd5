package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/config"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/database"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/logger"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/middleware"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/repository"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/routes"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Init DB
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		zlog.Fatal("AutoMigrate failed", zap.Error(err))
	}

	// Repositories, services, routes
	cartRepo := repository.NewGormShopcartRepository(db)
	productRepo := repository.NewGormProductRepository(db)

	deps := routes.Dependencies{
		Shopcarts:      services.NewShopcartService(cartRepo, zlog),
		Products:       services.NewProductService(cartRepo, productRepo, zlog),
		Logger:         zlog,
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.RateLimitEnabled() {
		deps.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 5*time.Minute)
	}
	if cfg.APIKey == "" {
		zlog.Warn("API_KEY not set, mutating endpoints are unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	zlog.Info("Shopcarts service started", zap.String("port", cfg.Port))
	<-quit
	zlog.Info("Shutting down shopcarts service...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited cleanly")
}
