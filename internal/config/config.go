// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// EnvFile is the path of the environment file holding sealed values.
	EnvFile string

	// Algorithm is the name of the default AEAD algorithm for sealing.
	Algorithm string

	// KeyPassword is the password the encryption key is derived from.
	// Empty means the CLI must prompt for it.
	KeyPassword string

	// NoncePassword is the password the nonce is derived from.
	// Empty means the key password is reused for the nonce.
	NoncePassword string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		EnvFile:       env.GetString("ENVSEAL_FILE", ".env"),
		Algorithm:     env.GetString("ENVSEAL_ALGORITHM", "chacha20-poly1305"),
		KeyPassword:   env.GetString("ENVSEAL_KEY_PASSWORD", ""),
		NoncePassword: env.GetString("ENVSEAL_NONCE_PASSWORD", ""),
		LogLevel:      env.GetString("ENVSEAL_LOG_LEVEL", "info"),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
