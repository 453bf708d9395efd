package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds file- and environment-driven configuration.
type Config struct {
	RescueTime struct {
		KeyFile string
		BaseURL string // default: https://www.rescuetime.com
		Timeout time.Duration
	}
	Report struct {
		TopActivities int
		SortByTime    bool
		Font          string
		FontSize      int
	}
}

const (
	DefaultConfigPath = "~/.config/rescuetime-bar/config.toml"
	DefaultKeyFile    = "~/Library/RescueTime.com/api.key"
	DefaultBaseURL    = "https://www.rescuetime.com"
	DefaultTimeout    = 30 * time.Second
	DefaultTop        = 15
	DefaultFont       = "Menlo"
	DefaultFontSize   = 12
)

type fileConfig struct {
	RescueTime struct {
		KeyFile string `toml:"key_file"`
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"rescuetime"`
	Report struct {
		TopActivities *int   `toml:"top_activities"`
		SortByTime    bool   `toml:"sort_by_time"`
		Font          string `toml:"font"`
		FontSize      int    `toml:"font_size"`
	} `toml:"report"`
}

// Default returns the configuration used when no file or environment is set.
func Default() Config {
	var cfg Config
	cfg.RescueTime.KeyFile = mustExpand(DefaultKeyFile)
	cfg.RescueTime.BaseURL = DefaultBaseURL
	cfg.RescueTime.Timeout = DefaultTimeout
	cfg.Report.TopActivities = DefaultTop
	cfg.Report.Font = DefaultFont
	cfg.Report.FontSize = DefaultFontSize
	return cfg
}

// Load reads the optional TOML file at path (DefaultConfigPath when empty),
// then applies RESCUETIME_* environment overrides. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	b, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := apply(&cfg, b); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func apply(cfg *Config, b []byte) error {
	var raw fileConfig
	if err := toml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if v := strings.TrimSpace(raw.RescueTime.KeyFile); v != "" {
		cfg.RescueTime.KeyFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.RescueTime.BaseURL); v != "" {
		cfg.RescueTime.BaseURL = v
	}
	if v := strings.TrimSpace(raw.RescueTime.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("parse config: rescuetime.timeout %q is not a positive duration", v)
		}
		cfg.RescueTime.Timeout = d
	}
	if raw.Report.TopActivities != nil {
		if *raw.Report.TopActivities < 0 {
			return errors.New("parse config: report.top_activities must not be negative")
		}
		cfg.Report.TopActivities = *raw.Report.TopActivities
	}
	cfg.Report.SortByTime = raw.Report.SortByTime
	if v := strings.TrimSpace(raw.Report.Font); v != "" {
		cfg.Report.Font = v
	}
	if raw.Report.FontSize > 0 {
		cfg.Report.FontSize = raw.Report.FontSize
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("RESCUETIME_KEY_FILE")); v != "" {
		cfg.RescueTime.KeyFile = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv("RESCUETIME_BASE_URL")); v != "" {
		cfg.RescueTime.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("RESCUETIME_TOP")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return errors.New("RESCUETIME_TOP must be a non-negative integer")
		}
		cfg.Report.TopActivities = n
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(DefaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
