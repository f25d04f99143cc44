package pricing

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"studioo/internal/domain/entities"
)

var (
	photography = entities.ProjectEngagement(entities.ServicePhotography)
	startedAt   = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	contact     = entities.ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "+971500000000"}
)

func eventPhotography(qty int, delivery string) *entities.PhotographyConfig {
	return &entities.PhotographyConfig{ProjectOptions: entities.ProjectOptions{
		SubService: "Event",
		Quantity:   qty,
		Logistics:  "Dubai",
		Delivery:   delivery,
	}}
}

func compile(t *testing.T, c *Compiler, cfg entities.ServiceConfig) entities.Quote {
	t.Helper()
	q, anomalies, err := c.Compile(CompileInput{
		Engagement: cfg.Engagement(),
		Config:     cfg,
		Contact:    contact,
		StartedAt:  startedAt,
		Seed:       "AB12",
	})
	require.NoError(t, err)
	require.Empty(t, anomalies)
	return q
}

func sumTotals(items []entities.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total
	}
	return sum
}

func TestCompile_RushSurchargeOverSubtotal(t *testing.T) {
	c := NewCompiler(DefaultCatalog())

	q := compile(t, c, eventPhotography(2, "Rush Delivery (24h)"))

	require.Len(t, q.LineItems, 2)
	assert.Equal(t, 2.0, q.LineItems[0].Quantity)
	assert.Equal(t, 500.0, q.LineItems[0].Rate)
	assert.Equal(t, 1000.0, q.LineItems[0].Total)
	assert.Equal(t, "delivery:Rush Delivery (24h)", q.LineItems[1].Option)
	assert.Equal(t, 500.0, q.LineItems[1].Total)
	assert.Equal(t, 1500.0, q.GrandTotal)
	assert.Equal(t, "Photography - Event", q.ProjectName)
	assert.Equal(t, "AED", q.Currency)
}

func TestCompile_AddOnsBeforeSurchargeAndTravelAfter(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	cfg := eventPhotography(2, "Rush Delivery (24h)")
	cfg.AddOns = []string{"Drone Photography"}
	cfg.Logistics = "Sharjah"

	q := compile(t, c, cfg)

	require.Len(t, q.LineItems, 4)
	assert.Equal(t, "addon:Drone Photography", q.LineItems[1].Option)
	// 50% of 1000 + 800
	assert.Equal(t, 900.0, q.LineItems[2].Total)
	assert.Equal(t, "logistics:Sharjah", q.LineItems[3].Option)
	assert.Equal(t, 150.0, q.LineItems[3].Total)
	assert.Equal(t, 2850.0, q.GrandTotal)
}

func TestCompile_GrandTotalIsSumOfItems(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	configs := []entities.ServiceConfig{
		eventPhotography(7, "Standard Delivery"),
		&entities.VideoProductionConfig{SubService: "Commercial", ShootingDays: 3, VideoLength: "3-5 min", AddOns: []string{"Voice Over", "Subtitles"}, Logistics: "Abu Dhabi / Other Emirates", Delivery: "Rush Delivery (24h)"},
		&entities.PostProductionConfig{SubService: "Photo Editing", Quantity: 33, Delivery: "Rush Delivery (24h)"},
		&entities.RetainerConfig{Hours: 45, AddOns: []string{"Priority Scheduling", "Monthly Strategy Session"}},
		&entities.TrainingConfig{Format: "Team Workshop", Sessions: 2, AddOns: []string{"Course Materials"}},
	}
	for _, cfg := range configs {
		t.Run(cfg.Engagement().Key(), func(t *testing.T) {
			q := compile(t, c, cfg)
			assert.InDelta(t, sumTotals(q.LineItems), q.GrandTotal, 1e-9)
			for _, it := range q.LineItems {
				assert.InDelta(t, it.Quantity*it.Rate, it.Total, 1e-9)
			}
		})
	}
}

func TestCompile_PercentAddOnIsChargedAfterFlatAddOns(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	// Priority Scheduling is listed first but must apply over hours + manager.
	cfg := &entities.RetainerConfig{Hours: 20, AddOns: []string{"Priority Scheduling", "Dedicated Account Manager"}}

	q := compile(t, c, cfg)

	require.Len(t, q.LineItems, 3)
	assert.Equal(t, "addon:Priority Scheduling", q.LineItems[2].Option)
	assert.InDelta(t, (20*350+1500)*0.10, q.LineItems[2].Total, 1e-9)
}

func TestCompile_SingleChangeOnlyTouchesItsItem(t *testing.T) {
	c := NewCompiler(DefaultCatalog())
	before := eventPhotography(2, "Standard Delivery")
	before.AddOns = []string{"RAW Files"}
	after := eventPhotography(2, "Standard Delivery")
	after.AddOns = []string{"Advanced Retouching"}

	qb := compile(t, c, before)
	qa := compile(t, c, after)

	require.Len(t, qa.LineItems, len(qb.LineItems))
	assert.Equal(t, qb.LineItems[0], qa.LineItems[0])
	assert.NotEqual(t, qb.LineItems[1], qa.LineItems[1])
}

func TestCompile_Deterministic(t *testing.T) {
	c := NewCompiler(DefaultCatalog(), WithValidityDays(14))
	cfg := eventPhotography(3, "Rush Delivery (24h)")

	first := compile(t, c, cfg)
	second := compile(t, c, cfg)

	assert.Equal(t, first, second)
	assert.Equal(t, QuoteNumber(startedAt, "AB12"), first.QuoteNumber)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Contains(t, first.Notes, "14 days")
	assert.Equal(t, time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), first.ValidUntil())
}

func TestCompile_CatalogMissIsAnAnomaly(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cat := NewCatalog("AED", map[string][]Entry{
		photography.Key(): {{Option: "sub_service:Event", Price: Price{Kind: KindPerUnit, Amount: 500}}},
	})
	c := NewCompiler(cat, WithLogger(zap.New(core)))
	cfg := eventPhotography(2, "Rush Delivery (24h)")

	q, anomalies, err := c.Compile(CompileInput{Engagement: photography, Config: cfg, Contact: contact, StartedAt: startedAt, Seed: "AB12"})

	require.NoError(t, err)
	assert.Equal(t, 1000.0, q.GrandTotal)
	assert.ElementsMatch(t, []Anomaly{
		{Engagement: "project/photography", Option: "logistics:Dubai"},
		{Engagement: "project/photography", Option: "delivery:Rush Delivery (24h)"},
	}, anomalies)
	assert.Equal(t, 2, logs.FilterMessage("[pricing][compiler] catalog_miss").Len())
}

func TestCompile_RejectsInvalidInput(t *testing.T) {
	c := NewCompiler(DefaultCatalog())

	_, _, err := c.Compile(CompileInput{Engagement: photography})
	assert.ErrorIs(t, err, ErrMissingConfiguration)

	_, _, err = c.Compile(CompileInput{Engagement: entities.RetainerEngagement(), Config: eventPhotography(1, "Standard Delivery")})
	assert.ErrorIs(t, err, ErrEngagementMismatch)
}

func TestQuoteNumberFormat(t *testing.T) {
	seed := NewQuoteSeed()
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-Z]{4}$`), seed)
	assert.Regexp(t, regexp.MustCompile(`^Q[0-9A-Z]+-[0-9A-Z]{4}$`), QuoteNumber(startedAt, seed))
}
