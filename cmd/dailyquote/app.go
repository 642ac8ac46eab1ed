package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/dailyquote/internal/adapters/cli"
	"github.com/jsamuelsen/dailyquote/internal/adapters/console"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
	"github.com/jsamuelsen/dailyquote/internal/platform/random"
	"github.com/jsamuelsen/dailyquote/internal/platform/telemetry"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// environment holds what start reads from the process. Tests replace it.
type environment struct {
	getenv func(string) string

	// clock overrides the configured system clock when set.
	clock ports.Clock
}

// start is the composition root:
//  1. load and validate config (fail fast, nothing printed)
//  2. logging and telemetry
//  3. random source, clock, quote service
//  4. print once, or serve until signalled
func start(cmd *cobra.Command, flags *cli.Flags, stdout, stderr io.Writer, env environment) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, flags, env)
	if err != nil {
		return err
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, stderr)
	logging.SetDefault(logger)

	ctx = logging.WithRunID(logging.WithContext(ctx, logger), uuid.NewString())

	logger.InfoContext(ctx, "starting dailyquote",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("mode", cfg.App.Mode),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		Mode:         cfg.App.Mode,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.WarnContext(ctx, "telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	service, presenter, err := buildService(cfg, logger, env)
	if err != nil {
		return err
	}

	if cfg.App.Mode == config.ModeServer {
		return serve(ctx, cfg, logger, service, presenter)
	}

	return cli.PrintReport(ctx, service, presenter, stdout)
}

func loadConfig(cmd *cobra.Command, flags *cli.Flags, env environment) (*config.Config, error) {
	profile := flags.ResolveProfile(env.getenv("APP_ENVIRONMENT"))

	cfg, err := config.LoadFrom(flags.ConfigDir, profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags.Apply(cmd, cfg)

	if cfg.App.Version == "dev" {
		cfg.App.Version = Version
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func buildService(cfg *config.Config, logger *slog.Logger, env environment) (*app.QuoteService, *console.Presenter, error) {
	rng, err := random.FromConfig(cfg.Quote.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("creating random source: %w", err)
	}

	clk := env.clock
	if clk == nil {
		loc, err := cfg.Output.Location()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving timezone: %w", err)
		}

		clk = clock.NewSystem(loc)
	}

	style, err := console.ParseStyle(cfg.Output.Style)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving output style: %w", err)
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  domain.DefaultStore(),
		Random: rng,
		Clock:  clk,
		Logger: logger,
	})

	return service, console.NewPresenter(style), nil
}

// serve runs server mode until ctx is cancelled by SIGINT or SIGTERM.
func serve(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	service *app.QuoteService,
	presenter *console.Presenter,
) error {
	registry := ports.NewHealthRegistry()
	if err := registry.Register(service); err != nil {
		return fmt.Errorf("registering health check: %w", err)
	}

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      logger,
		ServiceName: cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(registry,
			handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime)),
		QuoteHandler: handlers.NewQuoteHandler(service, presenter),
		Timeout:      cfg.Server.RequestTimeout,
	})

	err := server.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server: %w", err)
	}

	logger.InfoContext(ctx, "shutdown complete")

	return nil
}
