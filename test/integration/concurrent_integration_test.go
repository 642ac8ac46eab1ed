//go:build integration

package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/adapters/console"
	httpadapter "github.com/jsamuelsen/dailyquote/internal/adapters/http"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/platform/random"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// newConcurrentServer serves the full router over one shared seeded source.
func newConcurrentServer(t *testing.T) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  domain.DefaultStore(),
		Random: random.NewSeeded(7),
		Clock:  clock.NewFixed(time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)),
		Logger: logger,
	})

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(service))

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   "dailyquote",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("dailyquote", "test", "none", "now")),
		QuoteHandler:  handlers.NewQuoteHandler(service, console.NewPresenter(console.StylePlain)),
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return server
}

// TestConcurrent_DailyReports verifies that concurrent report requests
// sharing one random source all succeed with a reference quote.
func TestConcurrent_DailyReports(t *testing.T) {
	server := newConcurrentServer(t)

	reference := make(map[string]bool)
	for _, q := range domain.DefaultStore().All() {
		reference[q.Text()] = true
	}

	const numGoroutines = 50

	var (
		wg       sync.WaitGroup
		failures atomic.Int32
		mu       sync.Mutex
		seen     = make(map[string]int)
	)

	client := &http.Client{Timeout: 10 * time.Second}

	for range numGoroutines {
		wg.Go(func() {
			resp, err := client.Get(server.URL + "/api/v1/quotes/daily")
			if err != nil {
				failures.Add(1)
				return
			}
			defer resp.Body.Close()

			var body dto.DailyReportResponse
			if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&body) != nil {
				failures.Add(1)
				return
			}

			mu.Lock()
			seen[body.Quote]++
			mu.Unlock()
		})
	}

	wg.Wait()

	require.Zero(t, failures.Load(), "all requests should succeed")

	total := 0
	for text, n := range seen {
		assert.True(t, reference[text], "unexpected quote %q", text)
		total += n
	}

	assert.Equal(t, numGoroutines, total)
}

// TestConcurrent_MixedEndpoints hits probes and quote routes together.
func TestConcurrent_MixedEndpoints(t *testing.T) {
	server := newConcurrentServer(t)

	paths := []string{
		"/-/live",
		"/-/ready",
		"/-/build",
		"/api/v1/quotes",
		"/api/v1/quotes/3",
		"/api/v1/quotes/daily.txt",
	}

	const rounds = 10

	var (
		wg       sync.WaitGroup
		failures atomic.Int32
	)

	client := &http.Client{Timeout: 10 * time.Second}

	for range rounds {
		for _, path := range paths {
			wg.Go(func() {
				resp, err := client.Get(server.URL + path)
				if err != nil {
					failures.Add(1)
					return
				}
				defer resp.Body.Close()

				_, _ = io.Copy(io.Discard, resp.Body)

				if resp.StatusCode != http.StatusOK {
					failures.Add(1)
				}
			})
		}
	}

	wg.Wait()

	assert.Zero(t, failures.Load())
}
