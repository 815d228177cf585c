package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":5555", cfg.EndpointAddr)
	assert.Equal(t, "taskchat.db", cfg.DatabaseDSN)
	assert.Equal(t, "secretKey", cfg.SecretKey)
	assert.Equal(t, time.Duration(0), cfg.TokenValidity)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("TASKCHAT_ADDRESS", ":6666")
	t.Setenv("TASKCHAT_DATABASE_DSN", "postgres://u:p@localhost/taskchat")
	t.Setenv("TASKCHAT_SECRET_KEY", "env-secret")
	t.Setenv("TASKCHAT_TOKEN_VALIDITY", "30m")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":6666", cfg.EndpointAddr)
	assert.Equal(t, "postgres://u:p@localhost/taskchat", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidity)
}

func TestParseEnv_InvalidValidityIgnored(t *testing.T) {
	t.Setenv("TASKCHAT_TOKEN_VALIDITY", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, time.Duration(0), cfg.TokenValidity)
}

func TestParseJson_OverlaysOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	payload, err := json.Marshal(map[string]any{
		"endpoint_addr":  ":7777",
		"token_validity": "45m",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7777", cfg.EndpointAddr)
	assert.Equal(t, 45*time.Minute, cfg.TokenValidity)
	// untouched fields keep defaults
	assert.Equal(t, "taskchat.db", cfg.DatabaseDSN)
	assert.Equal(t, "secretKey", cfg.SecretKey)
}
