package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chessrules/internal/snapshot"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvQuiet, "")
	t.Setenv(EnvCellSize, "")
	t.Setenv(EnvSnapshotDir, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Quiet {
		t.Error("expected diagnostics enabled by default")
	}
	if cfg.CellSize != snapshot.DefaultCellSize {
		t.Errorf("CellSize = %d", cfg.CellSize)
	}
	if !strings.HasSuffix(cfg.SnapshotDir, "snapshots") {
		t.Errorf("SnapshotDir = %q", cfg.SnapshotDir)
	}
}

func TestLoadEnvFile(t *testing.T) {
	// Register cleanup for the variables the file sets.
	t.Setenv(EnvQuiet, "")
	t.Setenv(EnvCellSize, "")
	t.Setenv(EnvSnapshotDir, "")
	os.Unsetenv(EnvQuiet)
	os.Unsetenv(EnvCellSize)
	os.Unsetenv(EnvSnapshotDir)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "CHESSRULES_QUIET=true\nCHESSRULES_CELL_SIZE=32\nCHESSRULES_SNAPSHOT_DIR=" + dir + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Quiet || cfg.CellSize != 32 || cfg.SnapshotDir != dir {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	t.Setenv(EnvCellSize, "64")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CHESSRULES_CELL_SIZE=20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellSize != 64 {
		t.Errorf("CellSize = %d, want 64 from the environment", cfg.CellSize)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvQuiet, "maybe"},
		{EnvCellSize, "big"},
		{EnvCellSize, "4"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(EnvQuiet, "")
			t.Setenv(EnvCellSize, "")
			t.Setenv(tc.key, tc.value)

			_, err := Load(filepath.Join(t.TempDir(), "none.env"))
			if err == nil || !strings.Contains(err.Error(), tc.key) {
				t.Errorf("error = %v, want one naming %s", err, tc.key)
			}
		})
	}
}

func TestDataDir(t *testing.T) {
	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("DataDir = %q", dir)
	}

	snaps, err := SnapshotDir()
	if err != nil {
		t.Fatalf("SnapshotDir: %v", err)
	}
	if filepath.Dir(snaps) != dir {
		t.Errorf("SnapshotDir = %q, want under %q", snaps, dir)
	}
}
