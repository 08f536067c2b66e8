package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/booshananamudara/zoura-mobile/internal/flagx"
	"github.com/booshananamudara/zoura-mobile/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "15s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	FeedPageSize   int            `json:"feed_page_size"`
	StateDBPath    string         `json:"state_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via -c or -config. Missing flag means no JSON is loaded. Read or
// unmarshal errors panic; only set fields override defaults.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.FeedPageSize != 0 {
		cfg.FeedPageSize = jc.FeedPageSize
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
}
