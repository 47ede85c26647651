package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yashrajoria/car-rental-backend/common/database"
	"github.com/yashrajoria/car-rental-backend/common/logger"
	"github.com/yashrajoria/car-rental-backend/common/middleware"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/cache"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/controllers"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/models"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/repository"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/routes"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/services"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(os.Getenv("APP_ENV"))
	defer log.Sync()

	cfg := LoadConfig()

	db, err := database.ConnectPostgres(log, &models.Car{})
	if err != nil {
		log.Fatal("Database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	var carCache services.Cache
	if cfg.RedisURL != "" {
		redisClient, err := connectRedis(cfg.RedisURL, log)
		if err != nil {
			log.Warn("Redis unavailable, serving without cache", zap.Error(err))
		} else {
			carCache = cache.NewCarCache(redisClient, log)
			defer redisClient.Close()
		}
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RequestTimeout(15 * time.Second))

	// --- Dependency injection ---
	repo := repository.NewCarRepository(db)
	service := services.NewCarService(repo, carCache, log)
	controller := controllers.NewCarController(service)

	routes.RegisterRoutes(r, controller)

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("Cars service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Cars service stopped gracefully")
}

func connectRedis(redisURL string, log *zap.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	log.Info("Connected to Redis")
	return client, nil
}
