package cli

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/otterhq/suilens/internal/pkg/validator"
)

// Config holds every runtime setting of the application, populated from
// SUILENS_* environment variables.
type Config struct {
	// LogLevel sets the minimum severity emitted by the logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// SuiRPCEndpoint is the fullnode the transaction fetcher talks to.
	SuiRPCEndpoint string `envconfig:"SUI_RPC_ENDPOINT" default:"https://fullnode.testnet.sui.io:443" validate:"url"`

	// GeminiAPIKey enables LLM narration when set. Empty means every
	// explanation uses the deterministic template.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	// GeminiModel selects the completion model.
	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	// NarrateMinInterval is the minimum spacing between LLM requests.
	NarrateMinInterval time.Duration `envconfig:"NARRATE_MIN_INTERVAL" default:"6s"`

	// CoinDecimals is the number of decimal places of the native coin's
	// smallest unit.
	CoinDecimals int `envconfig:"COIN_DECIMALS" default:"9" validate:"gte=0,lte=38"`

	// CacheTTL bounds the lifetime of cached explanations.
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"24h"`

	// RedisAddr selects the Redis cache backend when set; empty falls back
	// to the in-memory cache.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("suilens", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, validator.Validate(cfg)
}
