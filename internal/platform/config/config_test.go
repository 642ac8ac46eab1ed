package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "dailyquote", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, ModeCLI, cfg.App.Mode)
	assert.Equal(t, StyleEmoji, cfg.Output.Style)
	assert.Empty(t, cfg.Output.Timezone)
	assert.Zero(t, cfg.Quote.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)

	require.NoError(t, cfg.Validate(), "defaults must be valid")
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults,
// including keys whose names contain underscores.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_OUTPUT_STYLE", "plain")
	t.Setenv("APP_QUOTE_SEED", "42")
	t.Setenv("APP_APP_MODE", "server")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "7s")
	t.Setenv("APP_LOG_FILE_MAX_SIZE", "5")
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, StylePlain, cfg.Output.Style)
	assert.Equal(t, uint64(42), cfg.Quote.Seed)
	assert.Equal(t, ModeServer, cfg.App.Mode)
	assert.Equal(t, 7*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5, cfg.Log.File.MaxSizeMB)
	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_EnvironmentVariableSetsAppEnvironment tests the APP_ENVIRONMENT alias.
func TestLoad_EnvironmentVariableSetsAppEnvironment(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "prod")

	cfg, err := LoadFrom(t.TempDir(), "prod")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.App.Environment)
}

// TestLoad_FilePrecedence tests base < profile < env ordering.
func TestLoad_FilePrecedence(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "base.yaml", `
output:
  style: plain
log:
  level: info
  format: json
`)
	writeFile(t, dir, "test.yaml", `
log:
  level: error
quote:
  seed: 7
`)
	t.Setenv("APP_LOG_FORMAT", "pretty")

	cfg, err := LoadFrom(dir, "test")
	require.NoError(t, err)

	assert.Equal(t, StylePlain, cfg.Output.Style, "from base")
	assert.Equal(t, "error", cfg.Log.Level, "profile overrides base")
	assert.Equal(t, uint64(7), cfg.Quote.Seed, "from profile")
	assert.Equal(t, "pretty", cfg.Log.Format, "env overrides files")
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "dailyquote", cfg.App.Name)
}

// TestLoad_InvalidYAML tests that parse failures are reported.
func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "log: [unclosed")

	_, err := LoadFrom(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/dailyquote.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_RepositoryConfigs tests that the shipped YAML files load and validate.
func TestLoad_RepositoryConfigs(t *testing.T) {
	dir := filepath.Join("..", "..", "..", DefaultConfigDir)

	for _, profile := range []string{"local", "prod"} {
		t.Run(profile, func(t *testing.T) {
			cfg, err := LoadFrom(dir, profile)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestOutputConfig_Location(t *testing.T) {
	loc, err := (&OutputConfig{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&OutputConfig{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&OutputConfig{Timezone: "Mars/Olympus_Mons"}).Location()
	require.Error(t, err)
}

func TestEnvKeyMapper(t *testing.T) {
	mapKey := envKeyMapper()

	assert.Equal(t, "log.file.max_size", mapKey("APP_LOG_FILE_MAX_SIZE"))
	assert.Equal(t, "server.shutdown_timeout", mapKey("APP_SERVER_SHUTDOWN_TIMEOUT"))
	assert.Equal(t, "app.environment", mapKey("APP_ENVIRONMENT"))
	assert.Equal(t, "custom.key", mapKey("APP_CUSTOM_KEY"))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
