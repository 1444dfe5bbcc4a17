package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// PostgreSQL (price history)
	PostgresURI string

	// Redis (timetable cache)
	RedisAddr       string
	CacheTTLMinutes int

	// Telegram
	TelegramToken  string
	TelegramAPIURL string

	// Wizzair
	WizzAPIURL string

	// Price checking
	CheckInterval  string
	MaxDaysToCheck int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "wizzbot"),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTLMinutes: getEnvAsInt("CACHE_TTL_MINUTES", 30),

		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAPIURL: getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),

		WizzAPIURL: getEnv("WIZZ_API_URL", "https://be.wizzair.com/27.7.0/Api"),

		CheckInterval:  getEnv("CHECK_INTERVAL", "0 */1 * * *"),
		MaxDaysToCheck: getEnvAsInt("MAX_DAYS_TO_CHECK", 7),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
