package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	DBDriver        string
	DatabaseURL     string
	DBTimeout       time.Duration
	DBMaxOpenConns  int
	ResetOnStart    bool
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads a .env file when one is present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Could not read .env file: %v", err)
	}

	return Config{
		Port:            String("PORT", "8080"),
		DBDriver:        strings.ToLower(String("DB_DRIVER", "sqlite3")),
		DatabaseURL:     String("DATABASE_URL", "sns_api.db"),
		DBTimeout:       Seconds("DB_TIMEOUT_SECONDS", 5),
		DBMaxOpenConns:  Int("DB_MAX_OPEN_CONNS", 10),
		ResetOnStart:    Bool("DB_RESET_ON_START", true),
		LogLevel:        String("LOG_LEVEL", "info"),
		LogFormat:       strings.ToLower(String("LOG_FORMAT", "text")),
		ShutdownTimeout: Seconds("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
}

// ConfigureLogging applies the level and format to the standard logrus logger.
func (c Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, falling back to info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func String(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func Int(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("Invalid integer for %s=%q, using %d", name, v, def)
		return def
	}
	return i
}

// Seconds reads a positive whole number of seconds. Zero or negative values
// fall back to def.
func Seconds(name string, def int) time.Duration {
	n := Int(name, def)
	if n <= 0 {
		log.Warnf("%s must be positive, got %d, using %d", name, n, def)
		n = def
	}
	return time.Duration(n) * time.Second
}

func Bool(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("Invalid boolean for %s=%q, using %t", name, v, def)
		return def
	}
	return b
}
