package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads environment variables from .env/.env.local next to the
// project. It attempts each supported filename in order and stops at the
// first successfully parsed file. Existing process environment variables are
// not overwritten. Missing files are not an error; deploy credentials
// commonly ride on this.
func LoadEnvFiles() {
	envPaths := []string{".env", ".env.local"}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load environment file", "path", envPath, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", envPath)
		return
	}
}
