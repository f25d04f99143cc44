package entities

import "time"

// LineItem is one priced row of a quote. Total is always Quantity * Rate.
type LineItem struct {
	Option      string  `json:"option"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

// Quote is the immutable result of compiling a completed wizard session.
//
// Monetary representation:
//   - amounts are kept unrounded; currency rounding happens only when the
//     quote is presented.
//   - GrandTotal equals the sum of LineItems totals.
type Quote struct {
	QuoteNumber   string     `json:"quote_number"`
	Date          time.Time  `json:"date"`
	Engagement    Engagement `json:"engagement"`
	ClientName    string     `json:"client_name"`
	ClientEmail   string     `json:"client_email"`
	ClientPhone   string     `json:"client_phone"`
	ClientCompany string     `json:"client_company,omitempty"`
	ProjectName   string     `json:"project_name"`
	LineItems     []LineItem `json:"line_items"`
	GrandTotal    float64    `json:"grand_total"`
	Currency      string     `json:"currency"`
	ValidityDays  int        `json:"validity_days"`
	Notes         string     `json:"notes"`
}

// ValidUntil is the last day the quoted prices are honoured.
func (q Quote) ValidUntil() time.Time {
	return q.Date.AddDate(0, 0, q.ValidityDays)
}
