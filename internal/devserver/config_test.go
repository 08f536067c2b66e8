package devserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env in sight

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.True(t, cfg.Seed)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEV_SERVER_PORT", "9090")
	t.Setenv("DEV_JWT_SECRET", "override")
	t.Setenv("DEV_SEED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "override", cfg.JWTSecret)
	assert.False(t, cfg.Seed)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Host: "h", Port: 0, JWTSecret: "s", AccessTokenTTL: time.Hour}
	require.Error(t, cfg.Validate())

	cfg = &Config{Host: "h", Port: 8080, JWTSecret: "", AccessTokenTTL: time.Hour}
	require.Error(t, cfg.Validate())

	cfg = &Config{Host: "h", Port: 8080, JWTSecret: "s", AccessTokenTTL: 0}
	require.Error(t, cfg.Validate())

	cfg = &Config{Host: "h", Port: 8080, JWTSecret: "s", AccessTokenTTL: time.Hour}
	require.NoError(t, cfg.Validate())
}
