package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.DayStart != "08:00" || cfg.Schedule.DayEnd != "20:00" {
		t.Errorf("unexpected day window %s-%s", cfg.Schedule.DayStart, cfg.Schedule.DayEnd)
	}
	if cfg.Schedule.HourHeight != 60 {
		t.Errorf("hour height = %d, want 60", cfg.Schedule.HourHeight)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("theme = %q, want frappe", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Schedule.DayStart != "08:00" {
			t.Errorf("day_start = %q", cfg.Schedule.DayStart)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[schedule]
day_start = "06:00"
day_end = "22:00"

[ui]
theme = "latte"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Schedule.DayStart != "06:00" || cfg.Schedule.DayEnd != "22:00" {
			t.Errorf("day window %s-%s", cfg.Schedule.DayStart, cfg.Schedule.DayEnd)
		}
		if cfg.UI.Theme != "latte" {
			t.Errorf("theme = %q", cfg.UI.Theme)
		}
		// Unset fields keep defaults.
		if cfg.Schedule.HourHeight != 60 {
			t.Errorf("hour height = %d, want default 60", cfg.Schedule.HourHeight)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[schedule]\nday_start = \"06:00\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("ROTA_DAY_START", "07:00")

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Schedule.DayStart != "07:00" {
			t.Errorf("day_start = %q, want env value 07:00", cfg.Schedule.DayStart)
		}
	})

	t.Run("invalid file content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("not toml {{"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad day_start", func(c *Config) { c.Schedule.DayStart = "8am" }},
		{"bad day_end", func(c *Config) { c.Schedule.DayEnd = "25:99x" }},
		{"start after end", func(c *Config) { c.Schedule.DayStart, c.Schedule.DayEnd = "20:00", "08:00" }},
		{"zero hour height", func(c *Config) { c.Schedule.HourHeight = 0 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "macchiato"
	cfg.Schedule.DayStart = "07:00"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.UI.Theme != "macchiato" || loaded.Schedule.DayStart != "07:00" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
