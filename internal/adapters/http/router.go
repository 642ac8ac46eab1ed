package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/middleware"
	"github.com/jsamuelsen/dailyquote/internal/platform/telemetry"
)

// DefaultRequestTimeout is used when RouterConfig.Timeout is zero.
const DefaultRequestTimeout = 5 * time.Second

// RouterConfig contains everything SetupRouter wires.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler

	// Timeout bounds /api/v1 requests. Negative disables it.
	Timeout time.Duration
}

// SetupRouter installs middleware and routes on engine.
// Middleware order (first to last):
//  1. Recovery
//  2. Request ID and request logger
//  3. OpenTelemetry tracing and metrics
//  4. Request logging (skips /-/ probes)
//  5. Timeout, on /api/v1 only
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(logger),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	if timeout > 0 {
		apiV1.Use(middleware.Timeout(timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}
}
