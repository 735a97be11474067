package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string
	DBSource string // sqlite file path when DBDriver is sqlite

	Port string

	TripServiceURL string
	TripTimeout    time.Duration

	MigrationPath string
	SeedPath      string

	RateLimitDefault int
	RateLimitCreate  int

	DBWaitRetries int
	DBWaitDelay   time.Duration
}

func LoadConfig() *Config {
	// .env is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	return &Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBPort:   getEnv("DB_PORT", "3306"),
		DBUser:   getEnv("DB_USER", "root"),
		DBPass:   getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "riders_db"),
		DBSource: getEnv("DB_SOURCE", "riders.db"),

		Port: getEnv("PORT", "8000"),

		TripServiceURL: getEnv("TRIP_SERVICE_URL", "http://localhost:5002"),
		TripTimeout:    5 * time.Second,

		MigrationPath: getEnv("MIGRATION_PATH", "init_db.sql"),
		SeedPath:      getEnv("SEED_PATH", "rhfd_riders.csv"),

		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 20),
		RateLimitCreate:  getEnvInt("RATE_LIMIT_CREATE", 10),

		DBWaitRetries: 20,
		DBWaitDelay:   3 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
