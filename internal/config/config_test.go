package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.SoftwareRenderer {
		t.Error("expected software renderer to be false by default")
	}

	if cfg.Camera.Distance != 1.0 {
		t.Errorf("expected camera distance 1.0, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.MinDistance == nil || *cfg.Camera.MinDistance != 1.1 {
		t.Error("expected default min distance 1.1")
	}
	if cfg.Camera.MaxDistance != nil {
		t.Error("expected no default max distance override")
	}
	if cfg.Camera.MinYaw != nil || cfg.Camera.MaxYaw != nil {
		t.Error("expected yaw unconstrained by default")
	}
	if cfg.Camera.RotateSpeed != 0.005 {
		t.Errorf("expected rotate speed 0.005, got %f", cfg.Camera.RotateSpeed)
	}
	if cfg.Camera.ZoomSpeed != 0.1 {
		t.Errorf("expected zoom speed 0.1, got %f", cfg.Camera.ZoomSpeed)
	}

	if cfg.Profiler.Enabled {
		t.Error("expected profiler disabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	yamlContent := `
window:
  title: Test Viewer
  width: 1920
  height: 1080
camera:
  distance: 4.0
  yaw: 0.7
  max_distance: 32.0
  min_yaw: -1.5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "Test Viewer" {
		t.Errorf("expected title 'Test Viewer', got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.Distance != 4.0 {
		t.Errorf("expected camera distance 4.0, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Yaw != 0.7 {
		t.Errorf("expected camera yaw 0.7, got %f", cfg.Camera.Yaw)
	}
	if cfg.Camera.MaxDistance == nil || *cfg.Camera.MaxDistance != 32.0 {
		t.Error("expected max distance 32.0 from file")
	}
	if cfg.Camera.MinYaw == nil || *cfg.Camera.MinYaw != -1.5 {
		t.Error("expected min yaw -1.5 from file")
	}
	if cfg.Camera.MaxYaw != nil {
		t.Error("expected max yaw to stay unset")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Values absent from the file keep their defaults.
	if cfg.Camera.RotateSpeed != 0.005 {
		t.Errorf("expected default rotate speed, got %f", cfg.Camera.RotateSpeed)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync default to survive partial file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Title = "Round Trip"
	cfg.Camera.Distance = 8.0
	maxYaw := float32(2.5)
	cfg.Camera.MaxYaw = &maxYaw

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Window.Title != "Round Trip" {
		t.Errorf("expected title 'Round Trip', got %s", loaded.Window.Title)
	}
	if loaded.Camera.Distance != 8.0 {
		t.Errorf("expected distance 8.0, got %f", loaded.Camera.Distance)
	}
	if loaded.Camera.MaxYaw == nil || *loaded.Camera.MaxYaw != 2.5 {
		t.Error("expected max yaw 2.5 to round-trip")
	}
	if loaded.Camera.MinDistance == nil || *loaded.Camera.MinDistance != 1.1 {
		t.Error("expected min distance 1.1 to round-trip")
	}
}
