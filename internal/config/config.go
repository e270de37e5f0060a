package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings lsmdash needs to reach the service.
type Config struct {
	APIURL         string
	PollInterval   time.Duration
	RequestTimeout time.Duration // zero leaves requests unbounded
	LogFile        string
	OrderedStats   bool
}

// APIURLEnv overrides api_url from the config file.
const APIURLEnv = "LSMDASH_API_URL"

const (
	defaultConfigPath   = "~/.config/lsmdash/config.toml"
	defaultLogFile      = "~/.local/state/lsmdash/lsmdash.log"
	defaultAPIURL       = "http://localhost:8080"
	defaultPollInterval = 2 * time.Second
)

// Load locates and parses the config, falling back to defaults when missing.
// LSMDASH_API_URL, when set, wins over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:       defaultAPIURL,
		PollInterval: defaultPollInterval,
		LogFile:      mustExpand(defaultLogFile),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		PollInterval   string `toml:"poll_interval"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		OrderedStats   bool   `toml:"ordered_stats"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if cfg.PollInterval, err = parseDuration("poll_interval", raw.PollInterval, defaultPollInterval); err != nil {
		return Config{}, err
	}
	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("parse config: poll_interval must be positive")
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, 0); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("parse config: request_timeout must not be negative")
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	cfg.OrderedStats = raw.OrderedStats

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(APIURLEnv)); v != "" {
		cfg.APIURL = v
	}
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
