package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction     bool
	ProdOrigins      []string
	HTTPAddr         string
	LogLevel         string
	SimulatedLatency time.Duration
	FailureRate      float64
	APIBaseURL       string
	ClientTimeout    time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == PROD_STRING

	// Production origins, comma-separated (default: empty)
	cfg.ProdOrigins = splitCSV(getEnv("PROD_ORIGINS", ""))

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	var err error
	// Latency added to every reservation call by the simulated transport (e.g. "500ms").
	cfg.SimulatedLatency, err = getEnvAsDuration("SIMULATED_LATENCY", 0)
	if err != nil {
		return nil, err
	}

	cfg.FailureRate, err = getEnvAsFloat("FAILURE_RATE", 0)
	if err != nil {
		return nil, err
	}
	if cfg.FailureRate < 0 || cfg.FailureRate > 1 {
		return nil, fmt.Errorf("invalid FAILURE_RATE: %v is outside [0, 1]", cfg.FailureRate)
	}

	cfg.APIBaseURL = strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080/v1"), "/")

	// The HTTP transport must never hang indefinitely.
	cfg.ClientTimeout, err = getEnvAsDuration("CLIENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	if cfg.ClientTimeout <= 0 {
		return nil, fmt.Errorf("invalid CLIENT_TIMEOUT: must be positive")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsDuration parses a time.Duration such as "15m" or "500ms".
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}
	return val, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
