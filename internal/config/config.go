package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the resolved invocation configuration.
type Config struct {
	// Region is the AWS region for control-plane calls.
	Region string `yaml:"region"`
	// Profile selects a shared AWS config profile. Empty uses the default chain.
	Profile string `yaml:"profile"`
	// RoleARN, when set, is assumed via STS before calling Bedrock.
	RoleARN string `yaml:"role_arn"`
	// BaseProfile is a default base inference profile ID or ARN,
	// used when --base is not given and prompting is unavailable.
	BaseProfile string `yaml:"base_profile"`
	// SettingsPath overrides where client setup writes the agent settings file.
	SettingsPath string `yaml:"settings_path"`
}

// Overrides carry flag values; empty fields leave the resolved value alone.
type Overrides struct {
	Region       string
	Profile      string
	RoleARN      string
	BaseProfile  string
	SettingsPath string
}

// DefaultFilePath returns the user config file location (~/.config/aipctl.yaml).
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "aipctl.yaml"), nil
}

// Load resolves the configuration: file (if present), then environment,
// then overrides. A missing file is not an error.
func Load(path string, ov Overrides) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if fileCfg != nil {
			*cfg = *fileCfg
		}
	}

	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("AWS_PROFILE"); v != "" {
		cfg.Profile = v
	}

	if ov.Region != "" {
		cfg.Region = ov.Region
	}
	if ov.Profile != "" {
		cfg.Profile = ov.Profile
	}
	if ov.RoleARN != "" {
		cfg.RoleARN = ov.RoleARN
	}
	if ov.BaseProfile != "" {
		cfg.BaseProfile = ov.BaseProfile
	}
	if ov.SettingsPath != "" {
		cfg.SettingsPath = ov.SettingsPath
	}

	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}
