package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test. It stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func validTestConfig() *Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Rules.File = "rules.yaml"
	c.Statements.Directory = "statements"
	c.CSV.Delimiter = ","
	return &c
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfigRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validTestConfig()
			tt.mutate(c)
			assert.Error(t, validateConfig(c))
		})
	}
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from a directory without a config file so only defaults apply.
	chdir(t, t.TempDir())

	c, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "rules.yaml", c.Rules.File)
	assert.Equal(t, "statements", c.Statements.Directory)
	assert.Equal(t, ",", c.CSV.Delimiter)
}

func TestInitializeConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ACCOUNT_LOG_LEVEL", "debug")
	t.Setenv("ACCOUNT_CSV_DELIMITER", ";")

	c, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, ";", c.CSV.Delimiter)
}
