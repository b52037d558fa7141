package config

import (
	"os"
	"strconv"
	"strings"

	"resume-builder/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port          string
	Env           string
	DataDir       string
	UploadsDir    string
	SessionSecret string
	SessionHours  int
	BcryptCost    int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	env := normalizeEnv(getEnv("ENV", "dev"))

	secret := os.Getenv("SESSION_SECRET")
	if env == "production" && secret == "" {
		telemetry.Warn("config.session_secret_missing", map[string]any{"env": env})
	}
	if secret == "" {
		secret = "change-me-in-production"
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		Env:           env,
		DataDir:       getEnv("DATA_DIR", "./data"),
		UploadsDir:    getEnv("UPLOADS_DIR", "./static/uploads"),
		SessionSecret: secret,
		SessionHours:  getEnvInt("SESSION_HOURS", 24),
		BcryptCost:    getEnvInt("BCRYPT_COST", 12),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid_int", map[string]any{"key": key, "value": raw, "default": def})
		return def
	}
	return parsed
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
