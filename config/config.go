package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration resolved from the environment.
// It is built once in main and handed to the components that need it instead
// of living in a package global.
type Config struct {
	// DatabaseURL is the resolved store path (a PostgreSQL DSN).
	DatabaseURL string

	// GeminiAPIKey is the credential for the generative model boundary.
	GeminiAPIKey string
	// GeminiModel names the model to invoke, e.g. "gemini-1.5-pro".
	GeminiModel string

	// JWTSecret signs the operator session tokens.
	JWTSecret string
	// DashboardPasswordHash is the bcrypt hash the login endpoint checks
	// the operator password against.
	DashboardPasswordHash string

	// ServerAddr is the listen address for the HTTP surface.
	ServerAddr string

	// ContextCharBudget caps the assembled AI context document. Catalog
	// blocks past the budget are dropped from the tail.
	ContextCharBudget int

	// MovementWindow is the default lookback for the realtime movement
	// endpoints when the request does not name one.
	MovementWindow time.Duration

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string
}

const (
	defaultGeminiModel       = "gemini-1.5-pro"
	defaultServerAddr        = ":3000"
	defaultContextCharBudget = 16000
	defaultMovementWindow    = 30 * time.Minute
	defaultLogLevel          = "info"
)

// Load reads the configuration from the environment. DATABASE_URL,
// GEMINI_API_KEY and JWT_SECRET are required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           envOr("GEMINI_MODEL", defaultGeminiModel),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		DashboardPasswordHash: os.Getenv("DASHBOARD_PASSWORD_HASH"),
		ServerAddr:            envOr("SERVER_ADDR", defaultServerAddr),
		ContextCharBudget:     defaultContextCharBudget,
		MovementWindow:        defaultMovementWindow,
		LogLevel:              envOr("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}

	if v := os.Getenv("CONTEXT_CHAR_BUDGET"); v != "" {
		budget, err := strconv.Atoi(v)
		if err != nil || budget <= 0 {
			return Config{}, fmt.Errorf("invalid CONTEXT_CHAR_BUDGET %q", v)
		}
		cfg.ContextCharBudget = budget
	}

	if v := os.Getenv("MOVEMENT_WINDOW"); v != "" {
		window, err := time.ParseDuration(v)
		if err != nil || window <= 0 {
			return Config{}, fmt.Errorf("invalid MOVEMENT_WINDOW %q", v)
		}
		cfg.MovementWindow = window
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
