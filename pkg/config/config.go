package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Assistant AssistantConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOOKMARKET_APP_ENV" required:"true"`
	Port         string `envconfig:"BOOKMARKET_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BOOKMARKET_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOOKMARKET_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the durable key/value backend for the cart and
// theme stores. The memory driver mirrors the demo's browser-local storage
// and is the default; redis survives restarts.
type StorageConfig struct {
	Driver string `envconfig:"BOOKMARKET_STORAGE_DRIVER" default:"memory"`
}

func (s StorageConfig) UseRedis() bool {
	return strings.EqualFold(s.Driver, StorageDriverRedis)
}

func (s *StorageConfig) validate() error {
	switch strings.ToLower(s.Driver) {
	case StorageDriverMemory, StorageDriverRedis:
		return nil
	}
	return fmt.Errorf("unknown storage driver %q", s.Driver)
}

type RedisConfig struct {
	URL          string        `envconfig:"BOOKMARKET_REDIS_URL"`
	Address      string        `envconfig:"BOOKMARKET_REDIS_ADDR"`
	Password     string        `envconfig:"BOOKMARKET_REDIS_PASSWORD"`
	DB           int           `envconfig:"BOOKMARKET_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BOOKMARKET_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BOOKMARKET_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BOOKMARKET_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BOOKMARKET_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BOOKMARKET_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AssistantConfig carries credentials for the hosted generative-language API.
// An empty APIKey is valid: assistant endpoints then answer with their fixed
// fallback strings instead of calling out.
type AssistantConfig struct {
	APIKey  string        `envconfig:"BOOKMARKET_GEMINI_API_KEY"`
	BaseURL string        `envconfig:"BOOKMARKET_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string        `envconfig:"BOOKMARKET_GEMINI_MODEL" default:"gemini-2.5-flash"`
	Timeout time.Duration `envconfig:"BOOKMARKET_GEMINI_TIMEOUT" default:"30s"`
}

func (a AssistantConfig) Configured() bool {
	return strings.TrimSpace(a.APIKey) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BOOKMARKET_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
