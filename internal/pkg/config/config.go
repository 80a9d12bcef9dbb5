package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DataSource selects how handlers resolve data: "fixture" serves canned
	// in-memory responses, "upstream" forwards every call to BaseURL.
	DataSource string `env:"DATA_SOURCE, default=fixture"`

	// BaseURL is the external backend all forwarding handlers target. A
	// missing or malformed value is logged at startup but is not fatal: each
	// request still attempts the call and fails through the standard envelope.
	BaseURL string `env:"BASE_URL"`

	UploadDir string `env:"UPLOAD_DIR, default=public/uploads"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Backend selects auth-state persistence: "file" or "redis".
	Backend  string `env:"SESSION_BACKEND, default=file"`
	FilePath string `env:"SESSION_FILE,    default=.auth_state.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
