package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
	"studioo/internal/i18n"
)

var (
	clock       = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	photography = entities.ProjectEngagement(entities.ServicePhotography)
	validCfg    = &entities.PhotographyConfig{ProjectOptions: entities.ProjectOptions{
		SubService: "Event", Quantity: 2, Logistics: "Dubai", Delivery: "Rush Delivery (24h)",
	}}
	validContact = entities.ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "+971500000000"}
)

func newSequencer() *Sequencer {
	seeds := []string{"AAAA", "BBBB", "CCCC"}
	return NewSequencer(
		pricing.NewCompiler(pricing.DefaultCatalog()),
		WithClock(func() time.Time { return clock }),
		WithSeedSource(func() string {
			s := seeds[0]
			seeds = seeds[1:]
			return s
		}),
	)
}

// walk drives a fresh session to Complete.
func walk(t *testing.T, s *Sequencer) *entities.WizardSession {
	t.Helper()
	sess := s.Start("sess-1", "en")
	require.NoError(t, s.SelectEngagement(sess, photography))
	_, err := s.Next(sess)
	require.NoError(t, err)
	require.NoError(t, s.Configure(sess, validCfg))
	_, err = s.Next(sess)
	require.NoError(t, err)
	require.NoError(t, s.UpdateContact(sess, validContact))
	_, err = s.Next(sess)
	require.NoError(t, err)
	return sess
}

func TestSequencer_HappyPath(t *testing.T) {
	s := newSequencer()

	sess := walk(t, s)

	assert.Equal(t, entities.StepComplete, sess.Step)
	require.NotNil(t, sess.Quote)
	assert.Equal(t, 1500.0, sess.Quote.GrandTotal)
	assert.Equal(t, pricing.QuoteNumber(clock, "AAAA"), sess.Quote.QuoteNumber)
	assert.Equal(t, "Jane Doe", sess.Quote.ClientName)
}

func TestSequencer_NextBlockedByValidation(t *testing.T) {
	s := newSequencer()
	sess := s.Start("sess-1", "en")

	_, err := s.Next(sess)
	var errs entities.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "engagement", errs[0].Field)
	assert.Equal(t, entities.StepSelectEngagement, sess.Step)

	require.NoError(t, s.SelectEngagement(sess, photography))
	_, err = s.Next(sess)
	require.NoError(t, err)

	_, err = s.Next(sess)
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "configuration", errs[0].Field)

	require.NoError(t, s.Configure(sess, &entities.PhotographyConfig{}))
	_, err = s.Next(sess)
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, entities.StepConfigure, sess.Step)

	require.NoError(t, s.Configure(sess, validCfg))
	_, err = s.Next(sess)
	require.NoError(t, err)

	require.NoError(t, s.UpdateContact(sess, entities.ContactInfo{Name: "Jane", Email: "nope", Phone: "1"}))
	_, err = s.Next(sess)
	require.ErrorAs(t, err, &errs)
	e, ok := errs.Field("email")
	require.True(t, ok)
	assert.Equal(t, entities.CodeInvalidFormat, e.Code)
	assert.Nil(t, sess.Quote)
}

func TestSequencer_MutationsOnlyInOwningStep(t *testing.T) {
	s := newSequencer()
	sess := s.Start("sess-1", "en")

	assert.ErrorIs(t, s.Configure(sess, validCfg), ErrWrongStep)
	assert.ErrorIs(t, s.UpdateContact(sess, validContact), ErrWrongStep)

	require.NoError(t, s.SelectEngagement(sess, photography))
	_, err := s.Next(sess)
	require.NoError(t, err)

	assert.ErrorIs(t, s.SelectEngagement(sess, entities.RetainerEngagement()), ErrWrongStep)
	assert.ErrorIs(t, s.Configure(sess, &entities.RetainerConfig{Hours: 20}), entities.ErrConfigurationMismatch)
}

func TestSequencer_CompleteIsTerminal(t *testing.T) {
	s := newSequencer()
	sess := walk(t, s)

	_, err := s.Next(sess)
	assert.ErrorIs(t, err, ErrTerminalStep)
}

func TestSequencer_BackFromCompleteRecompilesIdentically(t *testing.T) {
	s := newSequencer()
	sess := walk(t, s)
	first := *sess.Quote

	require.NoError(t, s.Back(sess))
	assert.Equal(t, entities.StepContactInfo, sess.Step)
	assert.Nil(t, sess.Quote)
	assert.Equal(t, validContact, sess.Contact, "inputs survive going back")

	_, err := s.Next(sess)
	require.NoError(t, err)
	assert.Equal(t, first, *sess.Quote)
}

func TestSequencer_BackFromSubmittedQuoteDrawsNewNumber(t *testing.T) {
	s := newSequencer()
	sess := walk(t, s)
	first := *sess.Quote
	sess.SubmittedAs = "QREQ"

	require.NoError(t, s.Back(sess))
	assert.False(t, sess.Submitted())
	assert.Equal(t, "BBBB", sess.QuoteSeed)

	_, err := s.Next(sess)
	require.NoError(t, err)
	assert.NotEqual(t, first.QuoteNumber, sess.Quote.QuoteNumber)
	assert.Equal(t, first.LineItems, sess.Quote.LineItems)
	assert.Equal(t, first.Date, sess.Quote.Date)
}

func TestSequencer_BackAlwaysRetreats(t *testing.T) {
	s := newSequencer()
	sess := walk(t, s)

	want := []entities.WizardStep{
		entities.StepContactInfo,
		entities.StepConfigure,
		entities.StepSelectEngagement,
		entities.StepSelectEngagement,
	}
	for _, step := range want {
		require.NoError(t, s.Back(sess))
		assert.Equal(t, step, sess.Step)
	}
	assert.Equal(t, photography, sess.Engagement)
}

func TestSequencer_ChangingEngagementDropsConfiguration(t *testing.T) {
	s := newSequencer()
	sess := s.Start("sess-1", "en")
	require.NoError(t, s.SelectEngagement(sess, photography))
	_, _ = s.Next(sess)
	require.NoError(t, s.Configure(sess, validCfg))
	require.NoError(t, s.Back(sess))

	require.NoError(t, s.SelectEngagement(sess, photography))
	_, ok := sess.ActiveConfig()
	assert.True(t, ok, "same engagement keeps its configuration")

	require.NoError(t, s.SelectEngagement(sess, entities.TrainingEngagement()))
	assert.True(t, sess.Configuration.IsEmpty())
}

func TestSequencer_SelectEngagementRejectsUnknown(t *testing.T) {
	s := newSequencer()
	sess := s.Start("sess-1", "en")

	err := s.SelectEngagement(sess, entities.ProjectEngagement("Weddings"))
	var errs entities.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.True(t, sess.Engagement.IsZero())
}

func TestSequencer_ResetStartsOver(t *testing.T) {
	s := newSequencer()
	sess := walk(t, s)
	sess.ClientUserID = "user-1"

	s.Reset(sess)

	assert.Equal(t, "sess-1", sess.ID)
	assert.Equal(t, "user-1", sess.ClientUserID)
	assert.Equal(t, entities.StepSelectEngagement, sess.Step)
	assert.True(t, sess.Engagement.IsZero())
	assert.Nil(t, sess.Quote)
	assert.Equal(t, "BBBB", sess.QuoteSeed)
}

func TestProgressOf(t *testing.T) {
	tests := []struct {
		step  entities.WizardStep
		index int
		pct   float64
	}{
		{entities.StepSelectEngagement, 1, 0},
		{entities.StepConfigure, 2, 50},
		{entities.StepContactInfo, 3, 100},
		{entities.StepComplete, 3, 100},
	}
	for _, tt := range tests {
		t.Run(string(tt.step), func(t *testing.T) {
			p := ProgressOf(&entities.WizardSession{Step: tt.step}, i18n.English)
			assert.Equal(t, tt.index, p.Index)
			assert.Equal(t, 3, p.Total)
			assert.Equal(t, tt.pct, p.Percentage)
			assert.Len(t, p.Steps, 3)
		})
	}

	p := ProgressOf(&entities.WizardSession{Step: entities.StepConfigure}, i18n.Arabic)
	assert.Equal(t, "الإعدادات", p.Name)
}
