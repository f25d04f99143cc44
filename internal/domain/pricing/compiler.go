package pricing

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"studioo/internal/domain/entities"
)

var (
	ErrMissingConfiguration = errors.New("configuration is required to compile a quote")
	ErrEngagementMismatch   = errors.New("configuration does not belong to the engagement")
)

const (
	seedLength   = 4
	seedAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	DefaultValidityDays = 30
)

// Anomaly is a selection the catalog could not price. It contributes zero to
// the quote and is reported to operators so the catalog can be fixed.
type Anomaly struct {
	Engagement string `json:"engagement"`
	Option     string `json:"option"`
}

func (a Anomaly) String() string {
	return fmt.Sprintf("no price for %s in %s", a.Option, a.Engagement)
}

// NewQuoteSeed returns the random part of a quote number. It is drawn once
// per wizard session.
func NewQuoteSeed() string {
	var sb strings.Builder
	radix := big.NewInt(int64(len(seedAlphabet)))
	for range seedLength {
		n, err := rand.Int(rand.Reader, radix)
		if err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(err)
		}
		sb.WriteByte(seedAlphabet[n.Int64()])
	}
	return sb.String()
}

// QuoteNumber formats the quote number of a session, e.g. "QSKD1W0-7F3K".
func QuoteNumber(startedAt time.Time, seed string) string {
	return "Q" + strings.ToUpper(strconv.FormatInt(startedAt.Unix(), 36)) + "-" + seed
}

// CompileInput is a fully validated wizard session.
type CompileInput struct {
	Engagement entities.Engagement
	Config     entities.ServiceConfig
	Contact    entities.ContactInfo
	StartedAt  time.Time
	Seed       string
}

type Compiler struct {
	catalog      *Catalog
	logger       *zap.Logger
	validityDays int
}

type CompilerOption func(*Compiler)

func WithValidityDays(days int) CompilerOption {
	return func(c *Compiler) {
		if days > 0 {
			c.validityDays = days
		}
	}
}

func WithLogger(logger *zap.Logger) CompilerOption {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCompiler(catalog *Catalog, opts ...CompilerOption) *Compiler {
	c := &Compiler{catalog: catalog, logger: zap.NewNop(), validityDays: DefaultValidityDays}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Compiler) Catalog() *Catalog {
	return c.catalog
}

// Compile prices the selections of in. It is a pure function of its input and
// the catalog: the same input always yields the same quote.
//
// Line items follow phase order. Percentage prices are charged over the
// running subtotal of every item before them, so add-ons are summed before a
// surcharge and travel fees come after it.
func (c *Compiler) Compile(in CompileInput) (entities.Quote, []Anomaly, error) {
	if in.Config == nil {
		return entities.Quote{}, nil, ErrMissingConfiguration
	}
	if in.Config.Engagement() != in.Engagement {
		return entities.Quote{}, nil, ErrEngagementMismatch
	}

	type priced struct {
		sel   entities.Selection
		price Price
		phase entities.Phase
	}

	var (
		rows      []priced
		anomalies []Anomaly
	)
	for _, sel := range in.Config.Selections() {
		price, ok := c.catalog.Lookup(in.Engagement, sel.Option)
		if !ok {
			anomalies = append(anomalies, Anomaly{Engagement: in.Engagement.Key(), Option: sel.Option})
			c.logger.Warn("[pricing][compiler] catalog_miss",
				zap.String("engagement", in.Engagement.Key()),
				zap.String("option", sel.Option),
			)
			continue
		}
		phase := sel.Phase
		if price.Kind == KindPercent && phase < entities.PhaseSurcharge {
			phase = entities.PhaseSurcharge
		}
		rows = append(rows, priced{sel: sel, price: price, phase: phase})
	}
	slices.SortStableFunc(rows, func(a, b priced) int { return int(a.phase) - int(b.phase) })

	items := make([]entities.LineItem, 0, len(rows))
	var subtotal float64
	for _, r := range rows {
		item := entities.LineItem{
			Option:      r.sel.Option,
			Description: describe(in.Engagement, r.sel.Option, r.price),
		}
		switch r.price.Kind {
		case KindPercent:
			item.Quantity = 1
			item.Rate = subtotal * r.price.Amount / 100
		case KindFlat:
			item.Quantity = r.sel.Quantity
			if item.Quantity <= 0 {
				item.Quantity = 1
			}
			item.Rate = r.price.Amount
		default:
			item.Quantity = r.sel.Quantity
			item.Rate = r.price.Amount
		}
		item.Total = item.Quantity * item.Rate
		// Included options (Dubai logistics, standard delivery) are not listed.
		if item.Total == 0 {
			continue
		}
		items = append(items, item)
		subtotal += item.Total
	}

	contact := in.Contact.Normalize()
	q := entities.Quote{
		QuoteNumber:   QuoteNumber(in.StartedAt, in.Seed),
		Date:          startOfDay(in.StartedAt),
		Engagement:    in.Engagement,
		ClientName:    contact.Name,
		ClientEmail:   contact.Email,
		ClientPhone:   contact.Phone,
		ClientCompany: contact.Company,
		ProjectName:   in.Config.Summary(),
		LineItems:     items,
		GrandTotal:    subtotal,
		Currency:      c.catalog.Currency(),
		ValidityDays:  c.validityDays,
		Notes:         fmt.Sprintf("This quotation is valid for %d days from the date of issue. Prices are in %s.", c.validityDays, c.catalog.Currency()),
	}
	return q, anomalies, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func describe(e entities.Engagement, option string, p Price) string {
	if p.Description != "" {
		return p.Description
	}
	group, label := entities.SplitOptionKey(option)
	if p.Kind == KindPercent {
		return fmt.Sprintf("%s (+%s%%)", label, strconv.FormatFloat(p.Amount, 'f', -1, 64))
	}

	var d string
	switch group {
	case entities.GroupSubService, entities.GroupFormat:
		d = e.Title() + " - " + label
	case entities.GroupHours:
		d = "Retainer - " + label
	case entities.GroupLength:
		d = "Editing - " + label + " video"
	case entities.GroupAddOn:
		d = "Add-on: " + label
	case entities.GroupLogistics:
		d = "Logistics: " + label
	default:
		d = label
	}
	if p.Kind == KindPerUnit && p.Unit != "" {
		d += " (per " + p.Unit + ")"
	}
	return d
}
