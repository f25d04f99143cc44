// Package wizard drives a quote session through its steps:
//
//	SelectEngagement -> Configure -> ContactInfo -> Complete
//
// Each step owns one part of the session and only accepts mutations of that
// part. Next moves forward only when the current step validates; Back always
// retreats one step. Entering Complete compiles the quote exactly once.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
)

var (
	ErrWrongStep    = errors.New("operation not allowed at the current step")
	ErrTerminalStep = errors.New("wizard is already complete")
	ErrUnknownStep  = errors.New("unknown wizard step")
)

// Sequencer holds no session state; every call receives the session it acts
// on, so one Sequencer serves every visitor.
type Sequencer struct {
	compiler *pricing.Compiler
	now      func() time.Time
	newSeed  func() string
}

type Option func(*Sequencer)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Sequencer) { s.now = now }
}

// WithSeedSource replaces the random quote number suffix source.
func WithSeedSource(seed func() string) Option {
	return func(s *Sequencer) { s.newSeed = seed }
}

func NewSequencer(compiler *pricing.Compiler, opts ...Option) *Sequencer {
	s := &Sequencer{compiler: compiler, now: time.Now, newSeed: pricing.NewQuoteSeed}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sequencer) Catalog() *pricing.Catalog {
	return s.compiler.Catalog()
}

// Start returns a fresh session at the first step.
func (s *Sequencer) Start(id, language string) *entities.WizardSession {
	now := s.now().UTC()
	return &entities.WizardSession{
		ID:        id,
		Step:      entities.StepSelectEngagement,
		Language:  language,
		QuoteSeed: s.newSeed(),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// SelectEngagement records the engagement. Choosing a different engagement
// discards the configuration of the previous one.
func (s *Sequencer) SelectEngagement(sess *entities.WizardSession, e entities.Engagement) error {
	if sess.Step != entities.StepSelectEngagement {
		return ErrWrongStep
	}
	if err := e.Validate(); err != nil {
		return entities.ValidationErrors{{Field: "engagement", Code: entities.CodeUnknownOption}}
	}
	if sess.Engagement != e {
		sess.Configuration.Clear()
	}
	sess.Engagement = e
	s.touch(sess)
	return nil
}

// Configure stores the configuration of the selected engagement. It does not
// validate: validation gates Next.
func (s *Sequencer) Configure(sess *entities.WizardSession, cfg entities.ServiceConfig) error {
	if sess.Step != entities.StepConfigure {
		return ErrWrongStep
	}
	if cfg == nil {
		return entities.ErrNilConfiguration
	}
	if cfg.Engagement() != sess.Engagement {
		return entities.ErrConfigurationMismatch
	}
	if err := sess.Configuration.Set(cfg); err != nil {
		return err
	}
	s.touch(sess)
	return nil
}

func (s *Sequencer) UpdateContact(sess *entities.WizardSession, c entities.ContactInfo) error {
	if sess.Step != entities.StepContactInfo {
		return ErrWrongStep
	}
	sess.Contact = c
	s.touch(sess)
	return nil
}

// Validate reports what blocks Next at the current step.
func (s *Sequencer) Validate(sess *entities.WizardSession) entities.ValidationErrors {
	switch sess.Step {
	case entities.StepSelectEngagement:
		if sess.Engagement.IsZero() {
			return entities.ValidationErrors{{Field: "engagement", Code: entities.CodeRequired}}
		}
		if sess.Engagement.Validate() != nil {
			return entities.ValidationErrors{{Field: "engagement", Code: entities.CodeUnknownOption}}
		}
	case entities.StepConfigure:
		cfg, ok := sess.ActiveConfig()
		if !ok {
			return entities.ValidationErrors{{Field: "configuration", Code: entities.CodeRequired}}
		}
		return cfg.Validate(s.compiler.Catalog())
	case entities.StepContactInfo:
		return sess.Contact.Validate()
	}
	return nil
}

// Next advances one step when the current step validates. Leaving
// ContactInfo compiles the quote; the returned anomalies are catalog misses
// met while compiling.
func (s *Sequencer) Next(sess *entities.WizardSession) ([]pricing.Anomaly, error) {
	switch sess.Step {
	case entities.StepComplete:
		return nil, ErrTerminalStep
	case entities.StepSelectEngagement, entities.StepConfigure, entities.StepContactInfo:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, sess.Step)
	}

	if errs := s.Validate(sess); len(errs) > 0 {
		return nil, errs
	}

	var anomalies []pricing.Anomaly
	switch sess.Step {
	case entities.StepSelectEngagement:
		sess.Step = entities.StepConfigure
	case entities.StepConfigure:
		sess.Step = entities.StepContactInfo
	case entities.StepContactInfo:
		cfg, _ := sess.ActiveConfig()
		q, a, err := s.compiler.Compile(pricing.CompileInput{
			Engagement: sess.Engagement,
			Config:     cfg,
			Contact:    sess.Contact,
			StartedAt:  sess.StartedAt,
			Seed:       sess.QuoteSeed,
		})
		if err != nil {
			return nil, fmt.Errorf("compile quote: %w", err)
		}
		sess.Quote = &q
		sess.Step = entities.StepComplete
		anomalies = a
	}
	s.touch(sess)
	return anomalies, nil
}

// Back retreats one step. It is a no-op at the first step. Leaving Complete
// drops the compiled quote and the submission marker; the inputs are kept.
func (s *Sequencer) Back(sess *entities.WizardSession) error {
	switch sess.Step {
	case entities.StepSelectEngagement:
		return nil
	case entities.StepConfigure:
		sess.Step = entities.StepSelectEngagement
	case entities.StepContactInfo:
		sess.Step = entities.StepConfigure
	case entities.StepComplete:
		// A submitted quote number is taken; an edited quote needs its own.
		if sess.Submitted() {
			sess.QuoteSeed = s.newSeed()
		}
		sess.Quote = nil
		sess.SubmittedAs = ""
		sess.Step = entities.StepContactInfo
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, sess.Step)
	}
	s.touch(sess)
	return nil
}

// Reset discards every input and starts over with a new quote number. The
// session id, language and signed-in client are kept.
func (s *Sequencer) Reset(sess *entities.WizardSession) {
	fresh := s.Start(sess.ID, sess.Language)
	fresh.ClientUserID = sess.ClientUserID
	*sess = *fresh
}

func (s *Sequencer) touch(sess *entities.WizardSession) {
	sess.UpdatedAt = s.now().UTC()
}
