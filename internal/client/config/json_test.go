package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	data := `{
		"base_url": "https://api.zoura.example",
		"request_timeout": "30s",
		"feed_page_size": 5
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://api.zoura.example", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.FeedPageSize)
	assert.Equal(t, "zoura.db", cfg.StateDBPath, "unset fields keep defaults")
}

func TestParseJson_NoFlagMeansNoFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "missing.json")}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
