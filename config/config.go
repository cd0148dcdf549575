package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	MaxConcurrency int
	RateLimitMs    int
	MaxRetries     int

	// MaxImportRows caps accepted file size before the pipeline runs; it is
	// a UI/latency guard, not an engine limit.
	MaxImportRows     int
	PreviewSampleSize int

	ReportOutputDir string
	LogLevel        string
	Commit          bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "importer"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "importer123"),
		PostgresDB:       getEnv("POSTGRES_DB", "properties_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitMs:    getEnvInt("RATE_LIMIT_MS", 0),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),

		MaxImportRows:     getEnvInt("MAX_IMPORT_ROWS", 500),
		PreviewSampleSize: getEnvInt("PREVIEW_SAMPLE_SIZE", 5),

		ReportOutputDir: getEnv("REPORT_OUTPUT_DIR", "./output"),
		LogLevel:        getEnv("LOG_LEVEL", "debug"),
		Commit:          getEnvBool("COMMIT", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
