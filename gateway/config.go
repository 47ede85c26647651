package main

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the gateway. Downstream base URLs are
// explicit and handed to each client at construction.
type Config struct {
	Port              string
	CarsServiceURL    string
	PaymentServiceURL string
	RentalServiceURL  string
	ClientTimeout     time.Duration
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		CarsServiceURL:    getEnv("CARS_SERVICE_URL", "http://cars:8070"),
		PaymentServiceURL: getEnv("PAYMENT_SERVICE_URL", "http://payment:8050"),
		RentalServiceURL:  getEnv("RENTAL_SERVICE_URL", "http://rental:8060"),
		ClientTimeout:     10 * time.Second,
	}

	if v := os.Getenv("DOWNSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DOWNSTREAM_TIMEOUT: %w", err)
		}
		cfg.ClientTimeout = d
	}

	if cfg.CarsServiceURL == "" || cfg.PaymentServiceURL == "" || cfg.RentalServiceURL == "" {
		return nil, fmt.Errorf("downstream service URLs incomplete")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
