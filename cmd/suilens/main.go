package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/otterhq/suilens/internal/decoder"
	"github.com/otterhq/suilens/internal/explain"
	"github.com/otterhq/suilens/internal/handlers/cli"
	"github.com/otterhq/suilens/internal/infra/blockchain/sui"
	"github.com/otterhq/suilens/internal/infra/llm/gemini"
	"github.com/otterhq/suilens/internal/infra/storage/memory"
	"github.com/otterhq/suilens/internal/infra/storage/redis"
	"github.com/otterhq/suilens/internal/narrator"
	"github.com/otterhq/suilens/internal/pkg/logger"
	"github.com/otterhq/suilens/internal/pkg/telemetry"
	"github.com/otterhq/suilens/internal/pkg/transport/http"
	"github.com/otterhq/suilens/internal/pkg/transport/jsonrpc"
	"github.com/otterhq/suilens/internal/registry"
)

const serviceName = "suilens"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := cli.LoadConfig()
	if err != nil {
		panic(err)
	}

	telemetryShutdown, err := telemetry.Init(ctx, serviceName)
	if err != nil {
		panic(err)
	}
	defer telemetryShutdown(context.Background())

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		panic(err)
	}
	defer logger.Sync()

	reg := registry.New()
	dec := decoder.New(reg, decoder.WithCoinDecimals(cfg.CoinDecimals))

	fetcher := sui.NewClient(jsonrpc.NewClient(http.NewClient().StandardClient(), cfg.SuiRPCEndpoint))

	narratorOpts := []narrator.Option{
		narrator.WithMinInterval(cfg.NarrateMinInterval),
	}
	if cfg.GeminiAPIKey != "" {
		completer, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal(ctx, "failed to create gemini client", "error", err)
		}
		narratorOpts = append(narratorOpts, narrator.WithCompleter(completer))
	}
	narr := narrator.New(dec, narratorOpts...)

	var cache explain.CacheStorage
	if cfg.RedisAddr != "" {
		redisCache, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		if err != nil {
			logger.Fatal(ctx, "failed to connect to redis", "error", err)
		}
		defer redisCache.Close()

		cache = redisCache
	} else {
		cache = memory.NewStorage()
	}

	svc := explain.New(fetcher, dec, narr,
		explain.WithCache(cache),
		explain.WithMaxEntryAge(cfg.CacheTTL),
	)

	if err := cli.Run(ctx, svc); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
