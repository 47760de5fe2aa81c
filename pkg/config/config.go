package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DateLayout is the calendar date format used across the whole pipeline.
const DateLayout = "2006-01-02"

// Config holds all configuration for the application
// SSOT: every environment variable is read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Subject
	Birthdate time.Time // used to derive chronological age at each cutoff date

	// Input
	Input InputConfig

	// Persisted batch stores
	Store StoreConfig

	// Database (optional; JSON file stores are used when URL is empty)
	Database DatabaseConfig

	// Scheduler
	RefreshSchedule string

	// Logging
	LogLevel  string
	LogFormat string
}

// InputConfig holds bloodwork input configuration. CSVPath may also
// point at an .html/.htm lab report; ingestion dispatches on extension.
type InputConfig struct {
	CSVPath string
}

// StoreConfig holds per-formula batch store file paths
type StoreConfig struct {
	BortzFile  string
	LevineFile string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables
// SSOT: this is the only function that calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Input
		Input: InputConfig{
			CSVPath: getEnv("BLOODWORK_CSV", "bloodwork.csv"),
		},

		// Batch stores
		Store: StoreConfig{
			BortzFile:  getEnv("BORTZ_BATCH_FILE", "batch_urls.json"),
			LevineFile: getEnv("LEVINE_BATCH_FILE", "levine_batch_urls.json"),
		},

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 5),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Scheduler (cron spec with seconds field)
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "0 0 6 * * *"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	// Birthdate is handled separately so a bad value carries a usable error.
	// Every snapshot depends on it, so failure here aborts the whole run.
	birthdate, err := ParseBirthdate(os.Getenv("BIRTHDATE"))
	if err != nil {
		return nil, err
	}
	cfg.Birthdate = birthdate

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// ParseBirthdate parses a YYYY-MM-DD birthdate string.
func ParseBirthdate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("BIRTHDATE is required (format %s)", DateLayout)
	}

	birthdate, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid BIRTHDATE %q: use %s format: %w", raw, DateLayout, err)
	}

	return birthdate, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Input.CSVPath == "" {
		return fmt.Errorf("BLOODWORK_CSV must not be empty")
	}

	if c.Store.BortzFile == "" || c.Store.LevineFile == "" {
		return fmt.Errorf("batch store paths must not be empty")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	return nil
}

// UsesDatabase reports whether batch entries persist to PostgreSQL
// instead of the JSON file stores.
func (c *Config) UsesDatabase() bool {
	return c.Database.URL != ""
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
