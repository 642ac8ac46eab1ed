package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/console"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// QuoteHandler serves daily reports and the read-only quote store.
type QuoteHandler struct {
	service   ports.QuoteService
	presenter *console.Presenter
}

// NewQuoteHandler creates a quote handler. A nil presenter renders the
// emoji style.
func NewQuoteHandler(service ports.QuoteService, presenter *console.Presenter) *QuoteHandler {
	if presenter == nil {
		presenter = console.NewPresenter(console.StyleEmoji)
	}

	return &QuoteHandler{
		service:   service,
		presenter: presenter,
	}
}

// DailyReport handles GET /api/v1/quotes/daily.
// Every request selects a fresh quote; nothing is cached per day.
func (h *QuoteHandler) DailyReport(c *gin.Context) {
	report, err := h.service.DailyReport(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDailyReportResponse(report, console.FormatDate(report.Date)))
}

// DailyReportText handles GET /api/v1/quotes/daily.txt with the same six
// lines the CLI prints.
func (h *QuoteHandler) DailyReportText(c *gin.Context) {
	report, err := h.service.DailyReport(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.String(http.StatusOK, h.presenter.Text(report))
}

// ListQuotes handles GET /api/v1/quotes.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewQuoteListResponse(h.service.Quotes(c.Request.Context())))
}

// GetQuote handles GET /api/v1/quotes/:index.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	raw := c.Param("index")

	index, err := strconv.Atoi(raw)
	if err != nil {
		dto.HandleError(c, domain.NewValidationErrorWithValue("index", "must be an integer", raw))
		return
	}

	q, err := h.service.QuoteAt(c.Request.Context(), index)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(index, q))
}

// RegisterQuoteRoutes registers the quote routes under rg/quotes.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/daily", h.DailyReport)
	quotes.GET("/daily.txt", h.DailyReportText)
	quotes.GET("/:index", h.GetQuote)
}
