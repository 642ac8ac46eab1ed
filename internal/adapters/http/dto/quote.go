package dto

import "github.com/jsamuelsen/dailyquote/internal/domain"

// ISODate is the machine-readable date layout used next to the formatted one.
const ISODate = "2006-01-02"

// QuoteResponse is one store entry.
type QuoteResponse struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Body   string `json:"body"`
	Author string `json:"author,omitempty"`
}

// NewQuoteResponse converts a domain quote at the given store position.
func NewQuoteResponse(index int, q domain.Quote) QuoteResponse {
	return QuoteResponse{
		Index:  index,
		Text:   q.Text(),
		Body:   q.Body(),
		Author: q.Author(),
	}
}

// QuoteListResponse enumerates the store.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
}

// NewQuoteListResponse converts the store listing, keeping store order.
func NewQuoteListResponse(quotes []domain.Quote) QuoteListResponse {
	resp := QuoteListResponse{
		Quotes: make([]QuoteResponse, 0, len(quotes)),
		Count:  len(quotes),
	}

	for i, q := range quotes {
		resp.Quotes = append(resp.Quotes, NewQuoteResponse(i, q))
	}

	return resp
}

// DailyReportResponse is the JSON form of a daily report.
type DailyReportResponse struct {
	Date          string `json:"date"`
	FormattedDate string `json:"formattedDate"`
	Quote         string `json:"quote"`
	Body          string `json:"body"`
	Author        string `json:"author,omitempty"`
}

// NewDailyReportResponse converts a report; formattedDate is the date as the
// text report prints it.
func NewDailyReportResponse(r *domain.Report, formattedDate string) DailyReportResponse {
	return DailyReportResponse{
		Date:          r.Date.Format(ISODate),
		FormattedDate: formattedDate,
		Quote:         r.Quote.Text(),
		Body:          r.Quote.Body(),
		Author:        r.Quote.Author(),
	}
}
