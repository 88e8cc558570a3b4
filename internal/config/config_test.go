package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aipctl.yaml")
	content := `
region: us-west-2
profile: dev
base_profile: us.anthropic.claude-sonnet-4-20250514-v1:0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "")

	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "dev", cfg.Profile)
	assert.Equal(t, "us.anthropic.claude-sonnet-4-20250514-v1:0", cfg.BaseProfile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aipctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: us-west-2\n"), 0o600))
	t.Setenv("AWS_REGION", "eu-central-1")
	t.Setenv("AWS_PROFILE", "ops")

	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, "ops", cfg.Profile)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aipctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: us-west-2\n"), 0o600))
	t.Setenv("AWS_REGION", "eu-central-1")

	cfg, err := Load(path, Overrides{Region: "ap-southeast-2", SettingsPath: "/tmp/s.json"})
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, "/tmp/s.json", cfg.SettingsPath)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), Overrides{})
	require.NoError(t, err)
	assert.Empty(t, cfg.Region)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aipctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: [unclosed"), 0o600))

	_, err := Load(path, Overrides{})
	assert.Error(t, err)
}
