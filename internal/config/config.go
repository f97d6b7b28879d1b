package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds process-level settings. Timer durations are not here; they
// live in the settings record inside the database.
type Config struct {
	DBPath       string
	LogFile      string
	LogLevel     slog.Level
	StartCompact bool
}

type fileConfig struct {
	DBPath       string `yaml:"db_path"`
	LogFile      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"`
	StartCompact *bool  `yaml:"start_compact"`
}

// DefaultConfig places the database under ~/.pomonotch and disables logging.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:   filepath.Join(home, ".pomonotch", "pomonotch.db"),
		LogLevel: slog.LevelInfo,
	}
}

// DefaultConfigPath returns the YAML config location, honouring POMONOTCH_CONFIG.
func DefaultConfigPath(home string) string {
	if v := os.Getenv("POMONOTCH_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(home, ".pomonotch", "config.yaml")
}

// Load builds the configuration from defaults, then the YAML file at path
// (a missing file is fine), then environment variables. Unparseable
// environment values are ignored.
func Load(home, path string) (Config, error) {
	cfg := DefaultConfig(home)

	if err := applyFile(&cfg, home, path); err != nil {
		return cfg, err
	}

	if v := os.Getenv("POMONOTCH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("POMONOTCH_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("POMONOTCH_LOG_LEVEL"); v != "" {
		if lvl, err := parseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("POMONOTCH_START_COMPACT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StartCompact = b
		}
	}

	return cfg, nil
}

func applyFile(cfg *Config, home, path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parsing config yaml: %w", err)
	}

	if fc.DBPath != "" {
		cfg.DBPath = expandHome(fc.DBPath, home)
	}
	if fc.LogFile != "" {
		cfg.LogFile = expandHome(fc.LogFile, home)
	}
	if fc.LogLevel != "" {
		lvl, err := parseLevel(fc.LogLevel)
		if err != nil {
			return fmt.Errorf("config log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if fc.StartCompact != nil {
		cfg.StartCompact = *fc.StartCompact
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
