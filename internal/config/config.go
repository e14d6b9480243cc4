// Package config loads runtime settings from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/hailam/chessrules/internal/snapshot"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvQuiet       = "CHESSRULES_QUIET"
	EnvCellSize    = "CHESSRULES_CELL_SIZE"
	EnvSnapshotDir = "CHESSRULES_SNAPSHOT_DIR"
)

// Config holds the settings for the command line tool.
type Config struct {
	// Quiet silences blocked-path diagnostics.
	Quiet       bool
	CellSize    int
	SnapshotDir string
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	dir, err := SnapshotDir()
	if err != nil {
		dir = "snapshots"
	}
	return &Config{
		CellSize:    snapshot.DefaultCellSize,
		SnapshotDir: dir,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment without overriding variables that are already set, then builds
// a Config. Missing files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()

	if v, ok := os.LookupEnv(EnvQuiet); ok && v != "" {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvQuiet, err)
		}
		cfg.Quiet = quiet
	}

	if v, ok := os.LookupEnv(EnvCellSize); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvCellSize, err)
		}
		if size < snapshot.MinCellSize {
			return nil, fmt.Errorf("%s must be at least %d, got %d", EnvCellSize, snapshot.MinCellSize, size)
		}
		cfg.CellSize = size
	}

	if v := os.Getenv(EnvSnapshotDir); v != "" {
		cfg.SnapshotDir = v
	}

	return cfg, nil
}
