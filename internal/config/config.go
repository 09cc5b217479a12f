package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret     string
	JWTExpiration time.Duration

	DBMaxOpen     int
	DBMaxIdle     int
	DBMaxLifetime time.Duration
}

// Load reads .env (when present) and the environment into a Config.
// Fails fast on missing required values so the process never serves half-configured.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:        getenv("PORT", "3001"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}

	exp, err := parseTTL(os.Getenv("JWT_EXPIRATION"), 24*time.Hour)
	if err != nil {
		return nil, errors.New("config: invalid JWT_EXPIRATION")
	}
	cfg.JWTExpiration = exp

	cfg.DBMaxOpen = getenvInt("DB_MAX_OPEN", 25)
	cfg.DBMaxIdle = getenvInt("DB_MAX_IDLE", 25)
	cfg.DBMaxLifetime = time.Duration(getenvInt("DB_MAX_LIFETIME", 300)) * time.Second

	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// parseTTL accepts durations such as "15m", "1h", "20s", or bare minutes ("30").
func parseTTL(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}

	if strings.HasSuffix(s, "m") ||
		strings.HasSuffix(s, "h") ||
		strings.HasSuffix(s, "s") {
		return time.ParseDuration(s)
	}

	min, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return time.Duration(min) * time.Minute, nil
}
