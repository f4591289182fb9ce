package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port                string
	Env                 string
	MongoURI            string
	MongoDBName         string
	StripeSecretKey     string
	StripeWebhookSecret string
	JWTSecret           string
	FrontendURL         string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "3000"),
		Env:                 getEnv("APP_ENV", "development"),
		MongoURI:            os.Getenv("MONGODB_URI"),
		MongoDBName:         getEnv("MONGODB_DB", "zap_shift_db"),
		StripeSecretKey:     os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.MongoURI == "" || cfg.StripeSecretKey == "" || cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
