package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Run from a temp directory so no local config.yaml interferes.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Spawn.FourProbability != 0.10 {
		t.Errorf("FourProbability = %v, want 0.10", cfg.Spawn.FourProbability)
	}
	if cfg.Win.Tile != 2048 {
		t.Errorf("Win.Tile = %d, want 2048", cfg.Win.Tile)
	}
	if cfg.Animation.PopTicks != 6 {
		t.Errorf("PopTicks = %d, want 6", cfg.Animation.PopTicks)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  four_probability: 0.25\nwin:\n  tile: 4096\nanimation:\n  pop_ticks: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("FourProbability = %v, want 0.25", cfg.Spawn.FourProbability)
	}
	if cfg.Win.Tile != 4096 {
		t.Errorf("Win.Tile = %d, want 4096", cfg.Win.Tile)
	}
	if cfg.Animation.PopTicks != 3 {
		t.Errorf("PopTicks = %d, want 3", cfg.Animation.PopTicks)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", loaded, Default())
	}
}
