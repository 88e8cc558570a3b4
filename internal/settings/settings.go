// Package settings writes the local coding-agent configuration that
// points the client at a selected application inference profile.
//
// The target file is the agent's own settings.json; only keys in its
// env block are touched, everything else in an existing file is
// preserved through a read-merge-write cycle.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath returns the default settings file location (~/.claude/settings.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

// Values holds what setup writes into the env block.
type Values struct {
	ProfileARN string
	Region     string
	AWSProfile string
}

// envKeys written by Write. The model env var takes the application
// inference profile ARN; the Bedrock flag switches the agent onto
// AWS instead of the first-party API.
const (
	keyUseBedrock = "CLAUDE_CODE_USE_BEDROCK"
	keyModel      = "ANTHROPIC_MODEL"
	keyRegion     = "AWS_REGION"
	keyAWSProfile = "AWS_PROFILE"
)

// Write merges v into the settings file at path, creating the file and
// its directory if needed. Unrelated keys in an existing file survive.
func Write(path string, v Values) error {
	if v.ProfileARN == "" {
		return fmt.Errorf("profile ARN must not be empty")
	}

	doc, err := readExisting(path)
	if err != nil {
		return err
	}

	env, _ := doc["env"].(map[string]any)
	if env == nil {
		env = make(map[string]any)
	}
	env[keyUseBedrock] = "1"
	env[keyModel] = v.ProfileARN
	if v.Region != "" {
		env[keyRegion] = v.Region
	}
	if v.AWSProfile != "" {
		env[keyAWSProfile] = v.AWSProfile
	}
	doc["env"] = env

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// readExisting loads the current settings document, or an empty one
// when the file does not exist yet.
func readExisting(path string) (map[string]any, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("existing settings file %s is not valid JSON, refusing to overwrite: %w", path, err)
	}
	return doc, nil
}
