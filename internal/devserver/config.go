package devserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the devserver settings. Values come from environment
// variables with DEV_ prefixes, with sensible defaults for local use.
type Config struct {
	Host           string
	Port           int
	JWTSecret      string
	AccessTokenTTL time.Duration
	UploadDir      string
	Seed           bool
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads the configuration from environment variables (an
// optional .env file is honored when present).
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine, env vars still apply

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		Host:           v.GetString("DEV_SERVER_HOST"),
		Port:           v.GetInt("DEV_SERVER_PORT"),
		JWTSecret:      v.GetString("DEV_JWT_SECRET"),
		AccessTokenTTL: v.GetDuration("DEV_JWT_ACCESS_TOKEN_TTL"),
		UploadDir:      v.GetString("DEV_UPLOAD_DIR"),
		Seed:           v.GetBool("DEV_SEED"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DEV_SERVER_HOST", "127.0.0.1")
	v.SetDefault("DEV_SERVER_PORT", 8080)
	v.SetDefault("DEV_JWT_SECRET", "local-dev-secret")
	v.SetDefault("DEV_JWT_ACCESS_TOKEN_TTL", "24h")
	v.SetDefault("DEV_UPLOAD_DIR", "uploads")
	v.SetDefault("DEV_SEED", true)
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Port)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	return nil
}
