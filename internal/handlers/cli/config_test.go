package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterhq/suilens/internal/pkg/validator"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "https://fullnode.testnet.sui.io:443", cfg.SuiRPCEndpoint)
		assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
		assert.Equal(t, 6*time.Second, cfg.NarrateMinInterval)
		assert.Equal(t, 9, cfg.CoinDecimals)
		assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
		assert.Empty(t, cfg.GeminiAPIKey)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("SUILENS_LOG_LEVEL", "debug")
		t.Setenv("SUILENS_SUI_RPC_ENDPOINT", "https://fullnode.mainnet.sui.io:443")
		t.Setenv("SUILENS_NARRATE_MIN_INTERVAL", "10s")
		t.Setenv("SUILENS_COIN_DECIMALS", "6")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "https://fullnode.mainnet.sui.io:443", cfg.SuiRPCEndpoint)
		assert.Equal(t, 10*time.Second, cfg.NarrateMinInterval)
		assert.Equal(t, 6, cfg.CoinDecimals)
	})

	t.Run("should reject an invalid endpoint", func(t *testing.T) {
		t.Setenv("SUILENS_SUI_RPC_ENDPOINT", "not a url")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}
