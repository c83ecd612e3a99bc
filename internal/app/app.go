package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres"
	openingrepo "github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres/opening"
	productrepo "github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres/product"
	stallrepo "github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres/stall"
	"github.com/heartmarshall/encuentrame-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/encuentrame-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/encuentrame-backend/internal/adapter/provider/rekognition"
	"github.com/heartmarshall/encuentrame-backend/internal/adapter/redis"
	"github.com/heartmarshall/encuentrame-backend/internal/auth"
	"github.com/heartmarshall/encuentrame-backend/internal/config"
	"github.com/heartmarshall/encuentrame-backend/internal/inventory"
	"github.com/heartmarshall/encuentrame-backend/internal/service/catalog"
	"github.com/heartmarshall/encuentrame-backend/internal/service/opening"
	"github.com/heartmarshall/encuentrame-backend/internal/service/stall"
	"github.com/heartmarshall/encuentrame-backend/internal/vision"
)

// App holds the wired services and the resources they share.
type App struct {
	Stalls   *stall.Service
	Openings *opening.Service
	Catalog  *catalog.Service
	Resolver *auth.Resolver // nil when tokens are disabled

	pool    *pgxpool.Pool
	closers []func()
	log     *slog.Logger
}

// New connects to the database, the optional lock backend and the analysis
// providers, and wires the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{log: logger}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	a.pool = pool
	a.closers = append(a.closers, pool.Close)

	txm := postgres.NewTxManager(pool)
	stalls := stallrepo.New(pool)
	openings := openingrepo.New(pool)
	products := productrepo.New(pool)

	rek, err := rekognition.NewProvider(ctx, cfg.Storage.Region, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	collector := vision.NewCollector(logger, rek, rek, vision.Config{
		Bucket:        cfg.Storage.Bucket,
		MaxLabels:     cfg.Vision.MaxLabels,
		MinConfidence: cfg.Vision.MinConfidence,
	})

	extractor, err := newExtractor(cfg.Extraction, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	lex := inventory.DefaultLexicon()
	if cfg.Lexicon.Path != "" {
		lex, err = inventory.LoadLexicon(cfg.Lexicon.Path)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	}

	deps := opening.Deps{
		Stalls:     stalls,
		Openings:   openings,
		Vision:     collector,
		Extractor:  extractor,
		Reconciler: inventory.NewReconciler(lex),
		Tx:         txm,
	}

	if cfg.Redis.Enabled() {
		rdb, redisErr := redis.NewClient(ctx, cfg.Redis.URL)
		if redisErr != nil {
			a.Close()
			return nil, redisErr
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		deps.Locker = redis.NewStallLocker(logger, rdb, cfg.Redis.LockTTL)
	}

	a.Catalog = catalog.NewService(logger, products, stalls)
	deps.Catalog = a.Catalog

	a.Stalls = stall.NewService(logger, stalls, txm)
	a.Openings = opening.NewService(logger, deps, opening.Config{
		ReopenPolicy:   opening.ReopenPolicy(cfg.Opening.ReopenPolicy),
		HistoryDefault: cfg.Opening.HistoryDefault,
		HistoryMax:     cfg.Opening.HistoryMax,
		SweepBatch:     cfg.Opening.SweepBatch,
	})

	if cfg.Auth.TokensEnabled() {
		a.Resolver = auth.NewResolver(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	}

	logger.InfoContext(ctx, "application wired",
		slog.String("version", BuildVersion()),
		slog.Bool("bucket_configured", collector.Configured()),
		slog.Any("extraction_providers", cfg.Extraction.Providers),
		slog.Bool("redis_lock", cfg.Redis.Enabled()),
		slog.String("reopen_policy", cfg.Opening.ReopenPolicy),
	)

	return a, nil
}

// Pool returns the shared database pool.
func (a *App) Pool() *pgxpool.Pool { return a.pool }

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// newExtractor builds the generator chain in the configured order.
// Providers without an API key are skipped.
func newExtractor(cfg config.ExtractionConfig, logger *slog.Logger) (*inventory.Extractor, error) {
	var gens []inventory.Generator
	for _, name := range cfg.Providers {
		switch name {
		case config.ProviderAnthropic:
			if cfg.AnthropicAPIKey == "" {
				logger.Warn("anthropic provider skipped: no API key")
				continue
			}
			gens = append(gens, anthropic.NewProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger))
		case config.ProviderOpenAI:
			if cfg.OpenAIAPIKey == "" {
				logger.Warn("openai provider skipped: no API key")
				continue
			}
			p, err := openai.NewProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
			if err != nil {
				return nil, fmt.Errorf("openai provider: %w", err)
			}
			gens = append(gens, p)
		}
	}

	return inventory.NewExtractor(logger, inventory.ExtractorConfig{
		Timeout:     cfg.Timeout,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}, gens...), nil
}
