package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "last-wins", cfg.Extraction.DuplicatePolicy)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.False(t, cfg.AI.Enabled)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LABPARSE_LOG_LEVEL", "debug")
	t.Setenv("LABPARSE_EXTRACTION_DUPLICATE_POLICY", "first-wins")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "first-wins", cfg.Extraction.DuplicatePolicy)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Extraction.DuplicatePolicy = "last-wins"
		cfg.CSV.Delimiter = ","
		return cfg
	}

	cfg := base()
	cfg.Log.Level = "verbose"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Extraction.DuplicatePolicy = "merge"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.AI.Enabled = true
	cfg.AI.APIKey = ""
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.AI.Enabled = true
	cfg.AI.APIKey = "key"
	cfg.AI.TimeoutSeconds = 0
	assert.Error(t, validateConfig(cfg))

	assert.NoError(t, validateConfig(base()))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
