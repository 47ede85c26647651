package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yashrajoria/car-rental-backend/common/database"
	"github.com/yashrajoria/car-rental-backend/common/logger"
	"github.com/yashrajoria/car-rental-backend/common/middleware"
	"github.com/yashrajoria/car-rental-backend/pkg/aws"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/controllers"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/models"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/repository"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/routes"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/services"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(os.Getenv("APP_ENV"))
	defer log.Sync()

	cfg := LoadConfig()

	db, err := database.ConnectPostgres(log, &models.Rental{})
	if err != nil {
		log.Fatal("Database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	var snsClient aws.SNSPublisher
	if cfg.EventsTopicArn != "" {
		awsCfg, err := aws.LoadAWSConfig(context.Background())
		if err != nil {
			log.Warn("AWS config load failed, rental events disabled", zap.Error(err))
		} else {
			snsClient = aws.NewSNSClient(awsCfg)
			log.Info("Rental events enabled", zap.String("topic_arn", cfg.EventsTopicArn))
		}
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RequestTimeout(15 * time.Second))

	// --- Dependency injection ---
	repo := repository.NewRentalRepository(db)
	service := services.NewRentalService(repo, snsClient, cfg.EventsTopicArn, log)
	controller := controllers.NewRentalController(service)

	routes.RegisterRoutes(r, controller)

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("Rental service started", zap.String("port", cfg.Port))
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

	log.Info("Rental service stopped gracefully")
}
