package app

import (
	"io"
	"log/slog"

	"github.com/vk/ledgen/internal/emit"
	"github.com/vk/ledgen/internal/model"
	"github.com/vk/ledgen/internal/yamlconfig"
)

// App encapsulates the compiler's dependencies and configuration. An App
// holds no state between runs.
type App struct {
	logger  *slog.Logger
	config  *Config
	loader  model.Loader
	dialect emit.Dialect
}

// NewApp is the constructor for the main application. Logs go to logW. A nil
// loader selects the YAML loader.
func NewApp(logW io.Writer, cfg *Config, loader model.Loader) *App {
	if cfg == nil {
		panic("app: config must not be nil")
	}
	if loader == nil {
		loader = yamlconfig.NewLoader()
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		logger:  logger,
		config:  cfg,
		loader:  loader,
		dialect: emit.DefaultDialect(),
	}
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
