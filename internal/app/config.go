package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Default file names, matching what the LED manager build expects.
const (
	DefaultInputFile  = "led.yaml"
	DefaultOutputFile = "led-gen.hpp"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputDir   string
	InputFile  string
	OutputDir  string
	OutputFile string

	// DryRun validates the input and renders the table without writing it.
	DryRun bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults for empty directories.
func NewConfig(cfg Config) (*Config, error) {
	cfg.InputFile = strings.TrimSpace(cfg.InputFile)
	cfg.OutputFile = strings.TrimSpace(cfg.OutputFile)

	if cfg.InputFile == "" {
		return nil, errors.New("InputFile is a required configuration field and cannot be empty")
	}
	if cfg.OutputFile == "" {
		return nil, errors.New("OutputFile is a required configuration field and cannot be empty")
	}
	if filepath.Base(cfg.OutputFile) != cfg.OutputFile {
		return nil, fmt.Errorf("OutputFile %q must be a file name, use the output directory for its location", cfg.OutputFile)
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "."
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return &cfg, nil
}

// InputPath is the configuration document to compile.
func (c *Config) InputPath() string {
	return filepath.Join(c.InputDir, c.InputFile)
}

// OutputPath is the generated artifact.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}
