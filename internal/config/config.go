package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string
	KafkaTopic   string
	KafkaGroupID string

	// API Configuration
	APIPort            string
	APIHost            string
	CORSAllowedOrigins []string
	ShutdownTimeout    int

	// Auth
	JWTSecret     string
	WebhookSecret string

	// Storage
	DataDir string

	// Google Sheets
	SheetName    string
	SheetBackend string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", "sqlite://sheetsync.db"),
		KafkaBrokers:       getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "product-events"),
		KafkaGroupID:       getEnv("KAFKA_GROUP_ID", "sheetsync-worker"),
		APIPort:            getEnv("API_PORT", "8080"),
		APIHost:            getEnv("API_HOST", "0.0.0.0"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		ShutdownTimeout:    getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
		JWTSecret:          getEnv("JWT_SECRET", "your-jwt-secret-key-here"),
		WebhookSecret:      getEnv("WEBHOOK_SECRET", ""),
		DataDir:            getEnv("DATA_DIR", "data"),
		SheetName:          getEnv("SHEET_NAME", "Sheet1"),
		SheetBackend:       getEnv("SHEET_BACKEND", "google"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}, nil
}

// CredentialsPath is where the uploaded service-account key is kept.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.DataDir, "credentials", "gsheets-credentials.json")
}

func (c *Config) KafkaBrokerList() []string {
	return splitList(c.KafkaBrokers)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return splitList(value)
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
