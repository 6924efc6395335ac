package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abdulachik/adskit/internal/campaign"
	"github.com/abdulachik/adskit/internal/config"
	"github.com/abdulachik/adskit/internal/generator"
	"github.com/abdulachik/adskit/internal/kit"
	"github.com/abdulachik/adskit/internal/llm"
)

// App is the main application container holding all dependencies.
type App struct {
	Config    *config.Config
	Provider  llm.Provider
	Generator *generator.Generator
	Logger    *slog.Logger
}

// Options adjusts how New wires the application.
type Options struct {
	// Offline skips provider construction; every kit uses fallback content.
	Offline bool
	Logger  *slog.Logger
}

// New creates a new application instance with all dependencies wired up.
func New(cfg *config.Config, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var provider llm.Provider
	if !opts.Offline {
		if err := cfg.ValidateForProvider(); err != nil {
			return nil, err
		}

		p, err := llm.New(llm.Config{
			Provider:  cfg.AIProvider,
			APIKey:    cfg.APIKey(),
			BaseURL:   cfg.AIBaseURL,
			PlanModel: cfg.PlanModel,
			CopyModel: cfg.CopyModel,
			Timeout:   cfg.AITimeout,
			Logger:    logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create provider: %w", err)
		}
		provider = p
	}

	return NewWithProvider(cfg, provider, logger), nil
}

// NewWithProvider wires the application around an existing provider, which may be nil.
func NewWithProvider(cfg *config.Config, provider llm.Provider, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Config:   cfg,
		Provider: provider,
		Generator: generator.New(generator.Config{
			Provider:    provider,
			MaxAttempts: cfg.AIMaxAttempts,
			Logger:      logger,
		}),
		Logger: logger,
	}
}

// Kit is a generated archive and its metadata.
type Kit struct {
	RequestID string
	Brand     string
	Filename  string
	Archive   []byte
	Fallback  bool
}

// BuildKit validates the input, generates campaign data and packages it.
// Only *campaign.InputError and archive write failures are returned.
func (a *App) BuildKit(ctx context.Context, in campaign.Input) (*Kit, error) {
	return a.BuildKitWithID(ctx, uuid.NewString(), in)
}

// BuildKitWithID is BuildKit with a caller-supplied request ID.
func (a *App) BuildKitWithID(ctx context.Context, requestID string, in campaign.Input) (*Kit, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	log := a.Logger.With("request_id", requestID)
	log.Info("generating kit", "store_url", in.StoreURL, "country", in.Country)

	gen := a.Generator.WithLogger(log)
	res := gen.GenerateOrFallback(ctx, in)

	archive, err := kit.Build(res.Data, in)
	if err != nil {
		return nil, fmt.Errorf("build archive: %w", err)
	}

	log.Info("kit generated",
		"brand", res.Data.Brand,
		"ad_groups", len(res.Data.AdGroups),
		"negatives", len(res.Data.Negatives),
		"fallback", res.Fallback,
		"bytes", len(archive),
	)

	return &Kit{
		RequestID: requestID,
		Brand:     res.Data.Brand,
		Filename:  kit.Filename(res.Data.Brand),
		Archive:   archive,
		Fallback:  res.Fallback,
	}, nil
}
