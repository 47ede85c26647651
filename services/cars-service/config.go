package main

import "os"

// Config holds all configuration for the cars service. Postgres settings are
// read by the shared database connector; RedisURL is optional and the service
// runs cache-less when it is empty.
type Config struct {
	Port     string
	RedisURL string
}

func LoadConfig() *Config {
	return &Config{
		Port:     getEnv("PORT", "8070"),
		RedisURL: os.Getenv("REDIS_URL"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
