// Package presentation turns a compiled quote into what the visitor sees: a
// localized document model, PDF and XLSX exports, a terminal table and the
// count-up animation of amounts.
//
// Amounts are rounded to currency precision here and nowhere else.
package presentation

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"studioo/internal/domain/entities"
	"studioo/internal/i18n"
)

const dateLayout = "2006-01-02"

type Labels struct {
	Title       string `json:"title"`
	QuoteNumber string `json:"quote_number"`
	Date        string `json:"date"`
	ValidUntil  string `json:"valid_until"`
	PreparedFor string `json:"prepared_for"`
	Project     string `json:"project"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Total       string `json:"total"`
	GrandTotal  string `json:"grand_total"`
	Notes       string `json:"notes"`
}

type ClientBlock struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
}

type Line struct {
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	Rate         float64 `json:"rate"`
	Total        float64 `json:"total"`
	QuantityText string  `json:"quantity_text"`
	RateText     string  `json:"rate_text"`
	TotalText    string  `json:"total_text"`
}

// Document is the render-ready quote. Numeric fields are the quote amounts
// rounded to currency precision; the *Text fields are their display form.
type Document struct {
	Language       i18n.Language `json:"language"`
	Direction      string        `json:"dir"`
	Labels         Labels        `json:"labels"`
	QuoteNumber    string        `json:"quote_number"`
	Date           string        `json:"date"`
	ValidUntil     string        `json:"valid_until"`
	ProjectName    string        `json:"project_name"`
	Client         ClientBlock   `json:"client"`
	Currency       string        `json:"currency"`
	Lines          []Line        `json:"lines"`
	GrandTotal     float64       `json:"grand_total"`
	GrandTotalText string        `json:"grand_total_text"`
	Notes          string        `json:"notes"`
}

func NewDocument(q entities.Quote, lang i18n.Language) Document {
	d := Document{
		Language:    lang,
		Direction:   lang.Direction(),
		Labels:      labelsFor(lang),
		QuoteNumber: q.QuoteNumber,
		Date:        q.Date.Format(dateLayout),
		ValidUntil:  q.ValidUntil().Format(dateLayout),
		ProjectName: q.ProjectName,
		Client: ClientBlock{
			Name:    q.ClientName,
			Email:   q.ClientEmail,
			Phone:   q.ClientPhone,
			Company: q.ClientCompany,
		},
		Currency:   q.Currency,
		Lines:      make([]Line, 0, len(q.LineItems)),
		GrandTotal: RoundCurrency(q.GrandTotal),
		Notes:      i18n.Tf(lang, "quote.notes_body", q.ValidityDays, q.Currency),
	}
	for _, it := range q.LineItems {
		d.Lines = append(d.Lines, Line{
			Description:  it.Description,
			Quantity:     it.Quantity,
			Rate:         RoundCurrency(it.Rate),
			Total:        RoundCurrency(it.Total),
			QuantityText: FormatQuantity(it.Quantity),
			RateText:     FormatMoney(it.Rate, q.Currency),
			TotalText:    FormatMoney(it.Total, q.Currency),
		})
	}
	d.GrandTotalText = FormatMoney(q.GrandTotal, q.Currency)
	return d
}

func labelsFor(lang i18n.Language) Labels {
	return Labels{
		Title:       i18n.T(lang, "quote.title"),
		QuoteNumber: i18n.T(lang, "quote.number"),
		Date:        i18n.T(lang, "quote.date"),
		ValidUntil:  i18n.T(lang, "quote.valid_until"),
		PreparedFor: i18n.T(lang, "quote.prepared_for"),
		Project:     i18n.T(lang, "quote.project"),
		Description: i18n.T(lang, "quote.description"),
		Quantity:    i18n.T(lang, "quote.quantity"),
		Rate:        i18n.T(lang, "quote.rate"),
		Total:       i18n.T(lang, "quote.total"),
		GrandTotal:  i18n.T(lang, "quote.grand_total"),
		Notes:       i18n.T(lang, "quote.notes"),
	}
}

// RoundCurrency rounds half away from zero to two decimals.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney renders "AED 1,500.00".
func FormatMoney(v float64, currency string) string {
	s := humanize.FormatFloat("#,###.##", RoundCurrency(v))
	if currency == "" {
		return s
	}
	return fmt.Sprintf("%s %s", currency, s)
}

// FormatQuantity drops the decimals of whole quantities.
func FormatQuantity(v float64) string {
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.FormatFloat("#,###.##", v)
}
