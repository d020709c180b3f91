package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.OutputPath != "identiverse-2025.ics" {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, "identiverse-2025.ics")
	}
	if cfg.Year != 2025 {
		t.Errorf("Year = %d, want 2025", cfg.Year)
	}
	if cfg.UTCOffsetHours != -7 {
		t.Errorf("UTCOffsetHours = %d, want -7", cfg.UTCOffsetHours)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.AgendaURL != Default().AgendaURL {
		t.Errorf("AgendaURL = %q, want default", cfg.AgendaURL)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_path: /tmp/test.ics
year: 2026
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OutputPath != "/tmp/test.ics" {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, "/tmp/test.ics")
	}
	if cfg.Year != 2026 {
		t.Errorf("Year = %d, want 2026", cfg.Year)
	}
	// Unset fields fall back to defaults
	if cfg.AgendaURL != Default().AgendaURL {
		t.Errorf("AgendaURL = %q, want default", cfg.AgendaURL)
	}
	if cfg.UTCOffsetHours != -7 {
		t.Errorf("UTCOffsetHours = %d, want default -7", cfg.UTCOffsetHours)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() should fail for a missing explicit config file")
	}
}

func TestZone(t *testing.T) {
	cfg := Default()
	name, offset := timeIn(cfg)
	if name != "PDT" {
		t.Errorf("zone name = %q, want PDT", name)
	}
	if offset != -7*60*60 {
		t.Errorf("zone offset = %d, want %d", offset, -7*60*60)
	}

	cfg.UTCOffsetHours = 2
	name, offset = timeIn(cfg)
	if name != "UTC+2" {
		t.Errorf("zone name = %q, want UTC+2", name)
	}
	if offset != 2*60*60 {
		t.Errorf("zone offset = %d, want %d", offset, 2*60*60)
	}
}

// timeIn returns the zone name and offset of a reference instant in the
// configured zone
func timeIn(cfg *Config) (string, int) {
	return time.Date(2025, time.June, 3, 0, 0, 0, 0, cfg.Zone()).Zone()
}
