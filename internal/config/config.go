// Package config reads CLI defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gorcfiber/internal/section"
)

// Environment variable names
const (
	EnvOutputDir      = "GORCFIBER_OUTPUT_DIR"
	EnvMaxIterations  = "GORCFIBER_MAX_ITERATIONS"
	EnvForceTolerance = "GORCFIBER_FORCE_TOLERANCE"
	EnvMaxFailures    = "GORCFIBER_MAX_FAILURES"
	EnvWorkers        = "GORCFIBER_WORKERS"
)

// Config holds the defaults used by the commands
type Config struct {
	OutputDir      string
	MaxIterations  int
	ForceTolerance float64
	MaxFailures    int
	Workers        int
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		OutputDir:      "output",
		MaxIterations:  section.DefaultMaxIterations,
		ForceTolerance: section.DefaultForceTolerance,
		MaxFailures:    section.DefaultMaxFailures,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// Load reads the given .env files (a missing file is skipped) into the
// process environment without overriding variables already set, then
// builds the configuration from the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", file, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from GORCFIBER_* variables over the
// defaults
func FromEnv() (Config, error) {
	cfg := Default()
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}

	var err error
	if cfg.MaxIterations, err = positiveInt(EnvMaxIterations, cfg.MaxIterations); err != nil {
		return Config{}, err
	}
	if cfg.MaxFailures, err = positiveInt(EnvMaxFailures, cfg.MaxFailures); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = positiveInt(EnvWorkers, cfg.Workers); err != nil {
		return Config{}, err
	}
	if v := os.Getenv(EnvForceTolerance); v != "" {
		tol, perr := strconv.ParseFloat(v, 64)
		if perr != nil || !(tol > 0 && tol < 1) {
			return Config{}, fmt.Errorf("config: %s=%q must be a number in (0, 1)", EnvForceTolerance, v)
		}
		cfg.ForceTolerance = tol
	}
	return cfg, nil
}

func positiveInt(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("config: %s=%q must be a positive integer", name, v)
	}
	return n, nil
}
