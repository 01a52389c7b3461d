package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// clearEnv unsets the WHEEL_* overrides for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"WHEEL_RIG_MODE", "WHEEL_DURATION_MS", "WHEEL_NAMES_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"wheel.rig_mode", cfg.Wheel.RigMode, true},
		{"wheel.duration_ms", cfg.Wheel.DurationMs, 5000},
		{"wheel.angle_policy", cfg.Wheel.AnglePolicy, "absolute"},
		{"wheel.seed", cfg.Wheel.Seed, int64(0)},
		{"tui.accent_color", cfg.TUI.AccentColor, DefaultAccentColor},
		{"tui.radius", cfg.TUI.Radius, 10},
		{"history.enabled", cfg.History.Enabled, true},
		{"history.retention", cfg.History.Retention, 20},
		{"notifications.url", cfg.Notifications.URL, ""},
		{"notifications.on_settle", cfg.Notifications.OnSettle, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		content := `
[wheel]
title = "Standup"
names = ["Ana", "Bo", "Cy"]
rig_mode = false
duration_ms = 8000
angle_policy = "forward"
seed = 42

[tui]
accent_color = "#FF0000"
radius = 12

[history]
enabled = false
dir = "hist"
retention = 5

[notifications]
url = "https://ntfy.sh/wheel"
on_settle = false
`
		path := filepath.Join(dir, "wheel.toml")
		writeFile(t, path, content)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"wheel.title", cfg.Wheel.Title, "Standup"},
			{"wheel.rig_mode", cfg.Wheel.RigMode, false},
			{"wheel.duration_ms", cfg.Wheel.DurationMs, 8000},
			{"wheel.angle_policy", cfg.Wheel.AnglePolicy, "forward"},
			{"wheel.seed", cfg.Wheel.Seed, int64(42)},
			{"tui.accent_color", cfg.TUI.AccentColor, "#FF0000"},
			{"tui.radius", cfg.TUI.Radius, 12},
			{"history.enabled", cfg.History.Enabled, false},
			{"history.dir", cfg.History.Dir, "hist"},
			{"history.retention", cfg.History.Retention, 5},
			{"notifications.url", cfg.Notifications.URL, "https://ntfy.sh/wheel"},
			{"notifications.on_settle", cfg.Notifications.OnSettle, false},
			{"dir", cfg.Dir, dir},
			{"policy", cfg.Policy(), wheel.PolicyForward},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}

		names, err := cfg.Names()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(names, []string{"Ana", "Bo", "Cy"}) {
			t.Errorf("names = %q", names)
		}
		if sc := cfg.SpinConfig(); sc.RigMode || sc.DurationMs != 8000 {
			t.Errorf("SpinConfig = %+v", sc)
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "wheel.toml")
		writeFile(t, path, "[wheel]\nduration_ms = 3000\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Wheel.DurationMs != 3000 {
			t.Errorf("duration_ms: got %d, want 3000", cfg.Wheel.DurationMs)
		}
		if !cfg.Wheel.RigMode {
			t.Error("rig_mode: want default true")
		}
		if cfg.TUI.Radius != 10 {
			t.Errorf("tui.radius: got %d, want default 10", cfg.TUI.Radius)
		}
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "wheel.toml")
		writeFile(t, path, "[wheel]\nrig_mod = true\n")

		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "wheel.rig_mod") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	})

	t.Run("missing explicit file returns error", func(t *testing.T) {
		if _, err := Load("/nonexistent/wheel.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "wheel.toml")
		writeFile(t, path, "not valid [[[ toml")
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})
}

func TestLoadAutoDiscovery(t *testing.T) {
	clearEnv(t)

	t.Run("finds wheel.toml in parent directory", func(t *testing.T) {
		root := t.TempDir()
		child := filepath.Join(root, "sub", "dir")
		if err := os.MkdirAll(child, 0755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(root, "wheel.toml"), "[wheel]\ntitle = \"FoundIt\"\n")
		chdir(t, child)

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Wheel.Title != "FoundIt" {
			t.Errorf("wheel.title: got %q, want %q", cfg.Wheel.Title, "FoundIt")
		}
	})

	t.Run("falls back to defaults when not found", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load without wheel.toml: %v", err)
		}
		if cfg.Wheel.DurationMs != 5000 || !cfg.Wheel.RigMode {
			t.Errorf("expected defaults, got %+v", cfg.Wheel)
		}
		names, err := cfg.Names()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(names, wheel.DefaultNames) {
			t.Errorf("names = %q, want defaults", names)
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.toml")
	writeFile(t, path, "[wheel]\nnames = [\"A\"]\n")
	writeFile(t, filepath.Join(dir, "team.txt"), "X\nY\n")

	t.Setenv("WHEEL_RIG_MODE", "false")
	t.Setenv("WHEEL_DURATION_MS", "not-a-number")
	t.Setenv("WHEEL_NAMES_FILE", "team.txt")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Wheel.RigMode {
		t.Error("WHEEL_RIG_MODE=false not applied")
	}
	if cfg.Wheel.DurationMs != wheel.DefaultDurationMs {
		t.Errorf("unparseable WHEEL_DURATION_MS: got %d, want default", cfg.Wheel.DurationMs)
	}
	names, err := cfg.Names()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"X", "Y"}) {
		t.Errorf("names = %q, want names file", names)
	}

	t.Setenv("WHEEL_RIG_MODE", "sometimes")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid WHEEL_RIG_MODE")
	}
}

func TestDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.toml")
	writeFile(t, path, "")
	writeFile(t, filepath.Join(dir, ".env"), "WHEEL_DURATION_MS=2500\n")
	t.Cleanup(func() { os.Unsetenv("WHEEL_DURATION_MS") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Wheel.DurationMs != 2500 {
		t.Errorf("duration from .env: got %d, want 2500", cfg.Wheel.DurationMs)
	}
}

func TestNamesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "names.txt"), "  Arjun \r\n\r\nVikrant\n")

	cfg := Defaults()
	cfg.Dir = dir
	cfg.Wheel.NamesFile = "names.txt"

	names, err := cfg.Names()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"Arjun", "Vikrant"}) {
		t.Errorf("names = %q", names)
	}

	cfg.Wheel.NamesFile = "missing.txt"
	if _, err := cfg.Names(); err == nil {
		t.Error("expected error for missing names file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"duration too short", func(c *Config) { c.Wheel.DurationMs = 999 }, "wheel.duration_ms"},
		{"duration too long", func(c *Config) { c.Wheel.DurationMs = 15001 }, "wheel.duration_ms"},
		{"bad policy", func(c *Config) { c.Wheel.AnglePolicy = "sideways" }, "wheel.angle_policy"},
		{"names and file", func(c *Config) {
			c.Wheel.Names = []string{"A"}
			c.Wheel.NamesFile = "n.txt"
		}, "mutually exclusive"},
		{"bad accent", func(c *Config) { c.TUI.AccentColor = "green" }, "tui.accent_color"},
		{"radius too small", func(c *Config) { c.TUI.Radius = 2 }, "tui.radius"},
		{"history dir empty", func(c *Config) { c.History.Dir = "" }, "history.dir"},
		{"negative retention", func(c *Config) { c.History.Retention = -1 }, "history.retention"},
		{"bad url", func(c *Config) { c.Notifications.URL = "ftp://x" }, "notifications.url"},
		{"disabled history ignores dir", func(c *Config) {
			c.History.Enabled = false
			c.History.Dir = ""
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Wheel.DurationMs = 1
	cfg.TUI.Radius = 100
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"wheel.duration_ms", "tui.radius"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error missing %q: %v", want, err)
		}
	}
}

func TestInitFile(t *testing.T) {
	t.Run("creates wheel.toml", func(t *testing.T) {
		dir := t.TempDir()
		path, err := InitFile(dir)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != "wheel.toml" {
			t.Errorf("expected wheel.toml, got %s", filepath.Base(path))
		}
		if _, err := Load(path); err != nil {
			t.Fatalf("generated file is not valid: %v", err)
		}
	})

	t.Run("refuses to overwrite existing", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "wheel.toml"), "existing")
		if _, err := InitFile(dir); err == nil {
			t.Error("expected error when wheel.toml already exists")
		}
	})
}

func TestResolve(t *testing.T) {
	cfg := Config{Dir: "/srv/wheel"}
	if got := cfg.Resolve("names.txt"); got != filepath.Join("/srv/wheel", "names.txt") {
		t.Errorf("Resolve relative = %q", got)
	}
	if got := cfg.Resolve("/abs/n.txt"); got != "/abs/n.txt" {
		t.Errorf("Resolve absolute = %q", got)
	}
}
