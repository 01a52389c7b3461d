// Package config parses wheel.toml configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "wheel.toml"

// DefaultAccentColor is the default TUI accent color (emerald).
const DefaultAccentColor = "#10B981"

// Wheel radius bounds in terminal rows.
const (
	MinRadius = 4
	MaxRadius = 30
)

// hexColorRe matches a 6-digit hex color string like "#10B981".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level wheel.toml configuration.
type Config struct {
	Wheel         WheelConfig         `toml:"wheel"`
	TUI           TUIConfig           `toml:"tui"`
	History       HistoryConfig       `toml:"history"`
	Notifications NotificationsConfig `toml:"notifications"`

	// Dir is the directory relative paths resolve against: the directory
	// holding wheel.toml, or the working directory when none was found.
	Dir string `toml:"-"`
}

// WheelConfig controls the names and the spin.
type WheelConfig struct {
	Title       string   `toml:"title"`
	NamesFile   string   `toml:"names_file"`
	Names       []string `toml:"names"`
	RigMode     bool     `toml:"rig_mode"`
	DurationMs  int      `toml:"duration_ms"`
	AnglePolicy string   `toml:"angle_policy"` // "absolute" or "forward"
	Seed        int64    `toml:"seed"`         // 0 = seed from the clock
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
	Radius      int    `toml:"radius"`
}

// HistoryConfig controls the spin history log.
type HistoryConfig struct {
	Enabled   bool   `toml:"enabled"`
	Dir       string `toml:"dir"`
	Retention int    `toml:"retention"` // number of session logs to keep; 0 = unlimited
}

// NotificationsConfig controls the winner webhook.
type NotificationsConfig struct {
	URL      string `toml:"url"`
	OnSettle bool   `toml:"on_settle"`
}

// Defaults returns a Config matching the original wheel: rig mode on,
// five-second spins.
func Defaults() Config {
	return Config{
		Wheel: WheelConfig{
			Title:       "Wheel of Names",
			RigMode:     true,
			DurationMs:  wheel.DefaultDurationMs,
			AnglePolicy: string(wheel.PolicyAbsolute),
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
			Radius:      10,
		},
		History: HistoryConfig{
			Enabled:   true,
			Dir:       filepath.Join(".wheel", "history"),
			Retention: 20,
		},
		Notifications: NotificationsConfig{
			URL:      "",
			OnSettle: true,
		},
	}
}

// Validate checks the configuration for values the wheel cannot use. It
// returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Wheel.NamesFile != "" && len(c.Wheel.Names) > 0 {
		errs = append(errs, fmt.Errorf("wheel.names and wheel.names_file are mutually exclusive"))
	}
	if c.Wheel.DurationMs < wheel.MinDurationMs || c.Wheel.DurationMs > wheel.MaxDurationMs {
		errs = append(errs, fmt.Errorf("wheel.duration_ms must be in [%d, %d]", wheel.MinDurationMs, wheel.MaxDurationMs))
	}
	if _, err := wheel.ParseAnglePolicy(c.Wheel.AnglePolicy); err != nil {
		errs = append(errs, fmt.Errorf("wheel.angle_policy must be %q or %q", wheel.PolicyAbsolute, wheel.PolicyForward))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#10B981\")"))
	}
	if c.TUI.Radius < MinRadius || c.TUI.Radius > MaxRadius {
		errs = append(errs, fmt.Errorf("tui.radius must be in [%d, %d]", MinRadius, MaxRadius))
	}

	if c.History.Enabled && c.History.Dir == "" {
		errs = append(errs, fmt.Errorf("history.dir must be set when history.enabled is true"))
	}
	if c.History.Retention < 0 {
		errs = append(errs, fmt.Errorf("history.retention must be >= 0 (0 = unlimited)"))
	}

	if c.Notifications.URL != "" {
		u, parseErr := url.ParseRequestURI(c.Notifications.URL)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("notifications.url must be a valid http or https URL"))
		}
	}

	return errors.Join(errs...)
}

// SpinConfig returns the per-spin options.
func (c *Config) SpinConfig() wheel.SpinConfig {
	return wheel.SpinConfig{RigMode: c.Wheel.RigMode, DurationMs: c.Wheel.DurationMs}
}

// Policy returns the parsed angle policy, absolute when unset or invalid.
func (c *Config) Policy() wheel.AnglePolicy {
	p, err := wheel.ParseAnglePolicy(c.Wheel.AnglePolicy)
	if err != nil {
		return wheel.PolicyAbsolute
	}
	return p
}

// Resolve returns path unchanged if absolute, otherwise joined to c.Dir.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Dir == "" {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// Names returns the configured name list: the names file if set, the
// inline list otherwise, and wheel.DefaultNames when neither is present.
func (c *Config) Names() ([]string, error) {
	if c.Wheel.NamesFile != "" {
		path := c.Resolve(c.Wheel.NamesFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read names %s: %w", path, err)
		}
		return wheel.Normalize(string(data)), nil
	}
	if len(c.Wheel.Names) > 0 {
		return wheel.Normalize(wheel.Join(c.Wheel.Names)), nil
	}
	names := make([]string, len(wheel.DefaultNames))
	copy(names, wheel.DefaultNames)
	return names, nil
}

// Load reads wheel.toml from the given path. If path is empty, it walks up
// from the current working directory looking for wheel.toml and falls back
// to Defaults when none exists. Returns an error if the file contains
// unknown keys (likely typos). Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: get working directory: %w", err)
		}
		cfg.Dir = dir
	} else {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
		}
		cfg.Dir = filepath.Dir(path)
	}

	if err := loadDotEnv(cfg.Dir); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads dir/.env into the process environment if present.
// Variables already set in the environment win.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// applyEnv applies WHEEL_* overrides. An unparseable WHEEL_DURATION_MS
// falls back to the default duration rather than failing.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("WHEEL_RIG_MODE"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: WHEEL_RIG_MODE %q: %w", v, err)
		}
		c.Wheel.RigMode = b
	}
	if v, ok := os.LookupEnv("WHEEL_DURATION_MS"); ok {
		c.Wheel.DurationMs = wheel.ParseDurationMs(v)
	}
	if v := os.Getenv("WHEEL_NAMES_FILE"); v != "" {
		c.Wheel.NamesFile = v
		c.Wheel.Names = nil
	}
	return nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for wheel.toml.
// It returns "" without error when no file is found.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default wheel.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# wheel.toml: wheel of names configuration
# Place this file in the directory you run ` + "`wheel`" + ` from (or any parent).

[wheel]
title = "Wheel of Names"
names_file = "names.txt"   # one name per line; or use names = ["A", "B"]
rig_mode = true            # when the list has 4+ names, the 4th always wins
duration_ms = 5000         # spin animation length, 1000-15000
angle_policy = "absolute"  # "absolute" (every spin from zero) or "forward"
seed = 0                   # 0 = seed from the clock

[tui]
accent_color = "#10B981"   # hex color for header/accent elements
radius = 10                # wheel radius in terminal rows

[history]
enabled = true
dir = ".wheel/history"
retention = 20             # number of session logs to keep; 0 = unlimited

[notifications]
url = ""                   # ntfy.sh topic URL or any HTTP webhook (empty = disabled)
on_settle = true           # post the winner when a spin settles
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
