// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
	"github.com/jsamuelsen/dailyquote/internal/platform/random"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

const (
	instrumentationName = "github.com/jsamuelsen/dailyquote/internal/app"

	// HealthCheckName identifies the store in health reports.
	HealthCheckName = "quote-store"
)

// QuoteService orchestrates the daily quote use case.
// It depends on port interfaces for randomness and time, never on
// process-wide state, so every result is reproducible in tests.
type QuoteService struct {
	store    *domain.Store
	random   ports.RandomSource
	clock    ports.Clock
	logger   *slog.Logger
	tracer   trace.Tracer
	selected metric.Int64Counter
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	// Store is required.
	Store *domain.Store

	// Random defaults to random.Global().
	Random ports.RandomSource

	// Clock defaults to the system clock in local time.
	Clock ports.Clock

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

var (
	_ ports.QuoteService  = (*QuoteService)(nil)
	_ ports.HealthChecker = (*QuoteService)(nil)
)

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics if no store is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: NewQuoteService requires a quote store")
	}

	rng := cfg.Random
	if rng == nil {
		rng = random.Global()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem(nil)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	selected, err := otel.Meter(instrumentationName).Int64Counter(
		"dailyquote.quotes.selected",
		metric.WithDescription("Number of quotes selected"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &QuoteService{
		store:    cfg.Store,
		random:   rng,
		clock:    clk,
		logger:   logger.With(slog.String("component", "app.QuoteService")),
		tracer:   otel.Tracer(instrumentationName),
		selected: selected,
	}
}

// GetRandomQuote selects one quote uniformly at random from the store.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (domain.Quote, error) {
	q, err := Select(s.store, s.random)
	if err != nil {
		s.loggerFor(ctx).ErrorContext(ctx, "failed to select quote",
			slog.Int("store_size", s.store.Len()),
			slog.Any("error", err),
		)

		return domain.Quote{}, fmt.Errorf("selecting quote: %w", err)
	}

	if s.selected != nil {
		s.selected.Add(ctx, 1, metric.WithAttributes(
			attribute.Bool("attributed", q.Author() != ""),
		))
	}

	s.loggerFor(ctx).DebugContext(ctx, "selected quote",
		slog.String("author", q.Author()),
		slog.Int("store_size", s.store.Len()),
	)

	return q, nil
}

// DailyReport stamps a freshly selected quote with the current date.
func (s *QuoteService) DailyReport(ctx context.Context) (*domain.Report, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.DailyReport")
	defer span.End()

	now := s.clock.Now()

	q, err := s.GetRandomQuote(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "quote selection failed")

		return nil, err
	}

	span.SetAttributes(
		attribute.String("report.date", now.Format("2006-01-02")),
		attribute.String("quote.author", q.Author()),
	)

	return &domain.Report{Date: now, Quote: q}, nil
}

// Quotes enumerates the store in order.
func (s *QuoteService) Quotes(_ context.Context) []domain.Quote {
	return s.store.All()
}

// QuoteAt returns the quote at the given store position.
func (s *QuoteService) QuoteAt(_ context.Context, index int) (domain.Quote, error) {
	q, err := s.store.Get(index)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("getting quote: %w", err)
	}

	return q, nil
}

// Name implements ports.HealthChecker.
func (s *QuoteService) Name() string {
	return HealthCheckName
}

// Check implements ports.HealthChecker. The store is unhealthy when empty,
// since every selection would fail.
func (s *QuoteService) Check(_ context.Context) error {
	if s.store.Len() == 0 {
		return domain.NewInvalidStateError("Check", "quote store is empty")
	}

	return nil
}

func (s *QuoteService) loggerFor(ctx context.Context) *slog.Logger {
	if logging.HasLogger(ctx) {
		return logging.FromContext(ctx)
	}

	return s.logger
}
