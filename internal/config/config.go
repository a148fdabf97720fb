package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/flipdeck/internal/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Addr                 string
	DBDriver             string
	DBPath               string
	DatabaseURL          string
	DeckPath             string
	LogLevel             string
	SessionSize          int
	FlipDelay            time.Duration
	FlipAnimation        time.Duration
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	CORSAllowedOrigins   []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBDriver:             strings.ToLower(envOr("DB_DRIVER", DriverSQLite)),
		DBPath:               envOr("DB_PATH", "file:flipdeck.db"),
		DatabaseURL:          envOr("DATABASE_URL", ""),
		DeckPath:             envOr("DECK_PATH", ""),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		SessionSize:          envIntOr("SESSION_SIZE", 4),
		FlipDelay:            envDurationOr("FLIP_DELAY", 100*time.Millisecond),
		FlipAnimation:        envDurationOr("FLIP_ANIMATION", 600*time.Millisecond),
		SessionTTL:           envDurationOr("SESSION_TTL", time.Hour),
		SessionSweepInterval: envDurationOr("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		CORSAllowedOrigins:   envListOr("CORS_ALLOWED_ORIGINS", []string{"http://localhost:8080"}),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}

	switch c.DBDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			problems = append(problems, "DB_PATH cannot be empty")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			problems = append(problems, "DATABASE_URL cannot be empty when DB_DRIVER=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.DBDriver))
	}

	if c.DeckPath != "" {
		if _, err := os.Stat(c.DeckPath); err != nil {
			problems = append(problems, fmt.Sprintf("DECK_PATH %q is not readable: %v", c.DeckPath, err))
		}
	}

	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}

	if c.SessionSize < 1 {
		problems = append(problems, "SESSION_SIZE must be at least 1")
	}
	if c.FlipDelay <= 0 {
		problems = append(problems, "FLIP_DELAY must be positive")
	}
	if c.FlipAnimation <= 0 {
		problems = append(problems, "FLIP_ANIMATION must be positive")
	} else if c.FlipDelay >= c.FlipAnimation {
		problems = append(problems, "FLIP_DELAY must be shorter than FLIP_ANIMATION")
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "SESSION_TTL must be positive")
	}
	if c.SessionSweepInterval <= 0 {
		problems = append(problems, "SESSION_SWEEP_INTERVAL must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == DriverPostgres {
		return c.DatabaseURL
	}
	return c.DBPath
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
