package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bytepress/press"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors press.Options for the YAML tuning file.
type fileConfig struct {
	Window        int  `yaml:"window"`
	MaxLength     int  `yaml:"maxLength"`
	KeyLength     int  `yaml:"keyLength"`
	MaxCandidates int  `yaml:"maxCandidates"`
	Lazy          bool `yaml:"lazy"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Window:        press.DefaultWindowSize,
		MaxLength:     press.DefaultMaxLength,
		KeyLength:     press.DefaultKeyLength,
		MaxCandidates: press.DefaultMaxCandidates,
	}
}

// loadConfig reads the YAML tuning file (if one was given) and applies
// PRESS_* environment-variable overrides.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *fileConfig) {
	if v := os.Getenv("PRESS_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Window = n
		}
	}
	if v := os.Getenv("PRESS_MAX_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLength = n
		}
	}
	if v := os.Getenv("PRESS_MAX_CANDIDATES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxCandidates = n
		}
	}
	if v := os.Getenv("PRESS_LAZY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Lazy = b
		}
	}
}

func (c fileConfig) options() press.Options {
	return press.Options{
		WindowSize:    c.Window,
		MaxLength:     c.MaxLength,
		KeyLength:     c.KeyLength,
		MaxCandidates: c.MaxCandidates,
		Lazy:          c.Lazy,
	}
}
