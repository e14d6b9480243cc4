package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessrules"

// DataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chessrules/
// - Linux: $XDG_DATA_HOME/chessrules/ or ~/.local/share/chessrules/
// - Windows: %APPDATA%/chessrules/
// The directory is not created.
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// SnapshotDir returns the default directory for PNG snapshots.
func SnapshotDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "snapshots"), nil
}
