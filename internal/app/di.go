// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/envseal/internal/config"
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	cryptoService "github.com/allisson/envseal/internal/crypto/service"
	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger

	// Services
	keyDeriver  cryptoService.KeyDeriver
	aeadManager cryptoService.AEADManager
	sealer      cryptoService.Sealer

	// Collaborators
	fileStore  envfileUseCase.FileStore
	processEnv envfileUseCase.ProcessEnv

	// Use Cases
	envUseCase envfileUseCase.EnvUseCase

	// Sensitive state released on Shutdown
	sessionKeys *cryptoDomain.SessionKeys

	// Initialization flags and mutex for thread-safety
	mu              sync.Mutex
	loggerInit      sync.Once
	keyDeriverInit  sync.Once
	aeadManagerInit sync.Once
	sealerInit      sync.Once
	fileStoreInit   sync.Once
	processEnvInit  sync.Once
	envUseCaseInit  sync.Once
	sessionKeysInit sync.Once
	initErrors      map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Shutdown releases sensitive material held by the container.
// Derived session keys are zeroed so they do not outlive the command that
// needed them.
func (c *Container) Shutdown(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessionKeys.Close()
	return nil
}

// initLogger creates the logger based on the configured log level.
// CLI output goes to stdout; diagnostics go to stderr.
func (c *Container) initLogger() *slog.Logger {
	var level slog.Level
	switch c.config.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
