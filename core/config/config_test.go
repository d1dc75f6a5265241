package config_test

import (
	"testing"

	"fluid-server/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, ".", cfg.Server.Dir)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeoutSeconds)

	assert.True(t, cfg.Browser.Enabled)
	assert.Equal(t, 1, cfg.Browser.DelaySeconds)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_DIR", "/srv/site")
	t.Setenv("BROWSER_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/srv/site", cfg.Server.Dir)
	assert.False(t, cfg.Browser.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}
