package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/flashdeck/internal/logger"
)

type Config struct {
	Addr               string
	LogLevel           string
	LogColors          bool
	DBDriver           string
	DBPath             string
	DBURL              string
	DBKey              string
	DBTable            string
	CORSAllowedOrigins []string
	StoreTimeout       time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8000"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		LogColors:          envBoolOr("LOG_COLORS", true),
		DBDriver:           strings.ToLower(envOr("DB_DRIVER", "sqlite")),
		DBPath:             envOr("DB_PATH", "file:flashcards.db"),
		DBURL:              os.Getenv("DB_URL"),
		DBKey:              os.Getenv("DB_KEY"),
		DBTable:            envOr("DB_TABLE", "flashcards"),
		CORSAllowedOrigins: envListOr("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		StoreTimeout:       envDurationOr("STORE_TIMEOUT", 0),
	}
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate reports every invalid setting in a single error.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}

	switch c.DBDriver {
	case "sqlite", "sqlite3":
		if strings.TrimSpace(c.DBPath) == "" {
			problems = append(problems, "DB_PATH cannot be empty when DB_DRIVER=sqlite")
		}
	case "postgres", "postgresql":
		if strings.TrimSpace(c.DBURL) == "" {
			problems = append(problems, "DB_URL cannot be empty when DB_DRIVER=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER %q is not supported (sqlite, postgres)", c.DBDriver))
	}

	if !identifierRe.MatchString(c.DBTable) {
		problems = append(problems, fmt.Sprintf("DB_TABLE %q is not a valid table name", c.DBTable))
	}

	if c.StoreTimeout < 0 {
		problems = append(problems, "STORE_TIMEOUT cannot be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
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
