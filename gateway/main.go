package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yashrajoria/car-rental-backend/common/logger"
	"github.com/yashrajoria/car-rental-backend/common/middleware"
	"github.com/yashrajoria/car-rental-backend/gateway/clients"
	"github.com/yashrajoria/car-rental-backend/gateway/controllers"
	gwmiddleware "github.com/yashrajoria/car-rental-backend/gateway/middleware"
	"github.com/yashrajoria/car-rental-backend/gateway/routes"
	"github.com/yashrajoria/car-rental-backend/gateway/services"
	"github.com/yashrajoria/car-rental-backend/gateway/validation"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	log := logger.Must(os.Getenv("APP_ENV"))
	defer log.Sync()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("Config load failed", zap.Error(err))
	}

	if err := validation.Register(); err != nil {
		log.Fatal("Validator registration failed", zap.Error(err))
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RequestTimeout(30 * time.Second))
	r.Use(gwmiddleware.RateLimit(rate.Every(time.Minute/300), 50))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-Name"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- Dependency injection ---
	carsClient := clients.NewCarsClient(clients.Config{BaseURL: cfg.CarsServiceURL, Timeout: cfg.ClientTimeout})
	paymentClient := clients.NewPaymentClient(clients.Config{BaseURL: cfg.PaymentServiceURL, Timeout: cfg.ClientTimeout})
	rentalClient := clients.NewRentalClient(clients.Config{BaseURL: cfg.RentalServiceURL, Timeout: cfg.ClientTimeout})

	orchestrator := services.NewRentalOrchestrator(carsClient, paymentClient, rentalClient, log)
	carsController := controllers.NewCarsController(orchestrator)
	rentalController := controllers.NewRentalController(orchestrator)

	routes.RegisterRoutes(r, carsController, rentalController)

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("Gateway started", zap.String("port", cfg.Port))
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

	log.Info("Gateway stopped gracefully")
}
