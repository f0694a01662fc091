package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration sourced from the environment.
type Config struct {
	Port             string
	MongoURI         string
	DBName           string
	JWTSecret        string
	StripeSecretKey  string
	PostmarkAPIToken string
	EmailSender      string
}

// Load reads .env when present and falls back to process environment
// variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	return &Config{
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "Gamicon"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		StripeSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
		PostmarkAPIToken: getEnv("POSTMARK_API_TOKEN", ""),
		EmailSender:      getEnv("EMAIL_SENDER", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
