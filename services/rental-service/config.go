package main

import "os"

// Config holds all configuration for the rental service. Postgres settings
// are read by the shared database connector; lifecycle events are skipped
// when EventsTopicArn is empty.
type Config struct {
	Port           string
	EventsTopicArn string
}

func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8060"),
		EventsTopicArn: os.Getenv("RENTAL_EVENTS_TOPIC_ARN"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
