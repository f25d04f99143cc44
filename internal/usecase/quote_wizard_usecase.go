package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
	"studioo/internal/domain/wizard"
	"studioo/internal/i18n"
	"studioo/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound     = errors.New("quote session not found")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrQuoteNotReady       = errors.New("quote is not compiled yet")
	ErrSubmissionFailed    = errors.New("quote submission failed")
	ErrQuoteNumberConflict = errors.New("quote number already used by another request")
)

// IQuoteWizardUseCase exposes the quote wizard to the transport layer.
//
// Every mutation loads the session, applies one sequencer operation and
// saves it back:
//   - step 1 => SelectEngagement()
//   - step 2 => UpdateConfiguration()
//   - step 3 => UpdateContact()
//   - navigation => Next(), Back(), Reset()
//   - hand-off of the compiled quote => Submit()
type IQuoteWizardUseCase interface {
	StartSession(ctx context.Context, lang i18n.Language, userID string) (entities.WizardSession, error)
	GetSession(ctx context.Context, id string) (entities.WizardSession, error)
	SelectEngagement(ctx context.Context, id string, e entities.Engagement, advance bool) (entities.WizardSession, error)
	UpdateConfiguration(ctx context.Context, id string, in entities.ConfigurationInput) (entities.WizardSession, error)
	UpdateContact(ctx context.Context, id string, c entities.ContactInfo) (entities.WizardSession, error)
	Next(ctx context.Context, id string) (entities.WizardSession, error)
	Back(ctx context.Context, id string) (entities.WizardSession, error)
	Reset(ctx context.Context, id string) (entities.WizardSession, error)
	Submit(ctx context.Context, id string) (entities.QuoteRequest, error)
	Validate(s entities.WizardSession) entities.ValidationErrors
}

type QuoteWizardUseCase struct {
	sessions  interfaces.ISessionRepository
	clients   interfaces.IClientRepository
	requests  interfaces.IQuoteRequestRepository
	notifier  interfaces.INotifier
	sequencer *wizard.Sequencer
	logger    *zap.Logger
}

var _ IQuoteWizardUseCase = (*QuoteWizardUseCase)(nil)

func NewQuoteWizardUseCase(
	sessions interfaces.ISessionRepository,
	clients interfaces.IClientRepository,
	requests interfaces.IQuoteRequestRepository,
	notifier interfaces.INotifier,
	sequencer *wizard.Sequencer,
	logger *zap.Logger,
) *QuoteWizardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteWizardUseCase{
		sessions:  sessions,
		clients:   clients,
		requests:  requests,
		notifier:  notifier,
		sequencer: sequencer,
		logger:    logger,
	}
}

// StartSession opens a new session. A signed-in partner gets the contact
// step prefilled from their profile.
func (u *QuoteWizardUseCase) StartSession(ctx context.Context, lang i18n.Language, userID string) (entities.WizardSession, error) {
	s := u.sequencer.Start(uuid.NewString(), lang.String())
	u.prefill(ctx, s, strings.TrimSpace(userID))

	if err := u.sessions.Save(ctx, *s); err != nil {
		return entities.WizardSession{}, err
	}
	u.logger.Info("[quote][usecase] session_started",
		zap.String("session_id", s.ID),
		zap.String("lang", s.Language),
		zap.Bool("prefilled", s.ClientUserID != ""),
	)
	return *s, nil
}

func (u *QuoteWizardUseCase) GetSession(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.load(ctx, id)
}

// SelectEngagement records the engagement and, when advance is set, moves on
// to the configuration step in the same call.
func (u *QuoteWizardUseCase) SelectEngagement(ctx context.Context, id string, e entities.Engagement, advance bool) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		if err := u.sequencer.SelectEngagement(s, e); err != nil {
			return err
		}
		if !advance {
			return nil
		}
		_, err := u.sequencer.Next(s)
		return err
	})
}

func (u *QuoteWizardUseCase) UpdateConfiguration(ctx context.Context, id string, in entities.ConfigurationInput) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		if s.Step != entities.StepConfigure {
			return wizard.ErrWrongStep
		}
		cfg, err := in.Build(s.Engagement)
		if err != nil {
			return err
		}
		return u.sequencer.Configure(s, cfg)
	})
}

func (u *QuoteWizardUseCase) UpdateContact(ctx context.Context, id string, c entities.ContactInfo) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		return u.sequencer.UpdateContact(s, c)
	})
}

// Next advances the session. Catalog misses met while compiling are reported
// to the operators; the visitor still gets the quote.
func (u *QuoteWizardUseCase) Next(ctx context.Context, id string) (entities.WizardSession, error) {
	var anomalies []pricing.Anomaly
	s, err := u.mutate(ctx, id, func(s *entities.WizardSession) error {
		a, err := u.sequencer.Next(s)
		anomalies = a
		return err
	})
	if err != nil {
		return s, err
	}

	if s.Step == entities.StepComplete && s.Quote != nil {
		u.logger.Info("[quote][usecase] quote_compiled",
			zap.String("session_id", s.ID),
			zap.String("quote_number", s.Quote.QuoteNumber),
			zap.Float64("grand_total", s.Quote.GrandTotal),
		)
	}
	if len(anomalies) > 0 {
		u.logger.Warn("[quote][usecase] pricing_anomalies",
			zap.String("session_id", s.ID),
			zap.Int("count", len(anomalies)),
		)
		if nerr := u.notifier.NotifyPricingAnomalies(ctx, s.ID, anomalies); nerr != nil {
			u.logger.Warn("[quote][usecase] notify_anomalies_failed", zap.String("session_id", s.ID), zap.Error(nerr))
		}
	}
	return s, nil
}

func (u *QuoteWizardUseCase) Back(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.mutate(ctx, id, u.sequencer.Back)
}

// Reset clears the session and, for partners, prefills the contact again.
func (u *QuoteWizardUseCase) Reset(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		userID := s.ClientUserID
		u.sequencer.Reset(s)
		u.prefill(ctx, s, userID)
		return nil
	})
}

// Submit hands the compiled quote over to the studio. It is idempotent: a
// session that was already submitted returns the stored request.
func (u *QuoteWizardUseCase) Submit(ctx context.Context, id string) (entities.QuoteRequest, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if s.Step != entities.StepComplete || s.Quote == nil {
		return entities.QuoteRequest{}, ErrQuoteNotReady
	}

	if s.Submitted() {
		existing, err := u.requests.GetByQuoteNumber(ctx, s.Quote.QuoteNumber)
		if err != nil {
			return entities.QuoteRequest{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
		}
		if existing.ID != "" {
			return existing, nil
		}
	}

	req := entities.QuoteRequest{
		ID:           uuid.NewString(),
		QuoteNumber:  s.Quote.QuoteNumber,
		SessionID:    s.ID,
		ClientUserID: s.ClientUserID,
		Language:     s.Language,
		Status:       entities.QuoteRequestStatusReceived,
		Quote:        *s.Quote,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := u.requests.Create(ctx, req)
	if errors.Is(err, interfaces.ErrQuoteNumberTaken) {
		created, err = u.resolveTakenNumber(ctx, s)
	}
	if err != nil {
		if errors.Is(err, ErrQuoteNumberConflict) {
			return entities.QuoteRequest{}, err
		}
		u.logger.Error("[quote][usecase] submit_failed", zap.String("session_id", s.ID), zap.Error(err))
		return entities.QuoteRequest{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	s.SubmittedAs = created.ID
	if err := u.sessions.Save(ctx, s); err != nil {
		// The request is stored; a retry resolves through the quote number.
		u.logger.Warn("[quote][usecase] mark_submitted_failed", zap.String("session_id", s.ID), zap.Error(err))
	}
	if err := u.notifier.NotifyQuoteRequest(ctx, created); err != nil {
		u.logger.Warn("[quote][usecase] notify_request_failed", zap.String("quote_number", created.QuoteNumber), zap.Error(err))
	}

	u.logger.Info("[quote][usecase] quote_submitted",
		zap.String("session_id", s.ID),
		zap.String("quote_number", created.QuoteNumber),
	)
	return created, nil
}

func (u *QuoteWizardUseCase) Validate(s entities.WizardSession) entities.ValidationErrors {
	return u.sequencer.Validate(&s)
}

// resolveTakenNumber tells a retried submission of this session apart from
// a genuine collision. Only the same session with the same quote is a retry.
func (u *QuoteWizardUseCase) resolveTakenNumber(ctx context.Context, s entities.WizardSession) (entities.QuoteRequest, error) {
	existing, err := u.requests.GetByQuoteNumber(ctx, s.Quote.QuoteNumber)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if existing.SessionID != s.ID || !sameQuote(existing.Quote, *s.Quote) {
		u.logger.Warn("[quote][usecase] quote_number_conflict",
			zap.String("session_id", s.ID),
			zap.String("quote_number", s.Quote.QuoteNumber),
		)
		return entities.QuoteRequest{}, ErrQuoteNumberConflict
	}
	return existing, nil
}

func sameQuote(a, b entities.Quote) bool {
	if a.QuoteNumber != b.QuoteNumber || a.GrandTotal != b.GrandTotal || a.Engagement != b.Engagement {
		return false
	}
	if a.ClientName != b.ClientName || a.ClientEmail != b.ClientEmail || a.ClientPhone != b.ClientPhone || a.ClientCompany != b.ClientCompany {
		return false
	}
	return slices.Equal(a.LineItems, b.LineItems)
}

func (u *QuoteWizardUseCase) prefill(ctx context.Context, s *entities.WizardSession, userID string) {
	if userID == "" || u.clients == nil {
		return
	}
	client, err := u.clients.GetByUserID(ctx, userID)
	if err != nil {
		u.logger.Warn("[quote][usecase] prefill_failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if client.ID == "" {
		return
	}
	s.ClientUserID = userID
	s.Contact = client.Contact()
}

func (u *QuoteWizardUseCase) load(ctx context.Context, id string) (entities.WizardSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WizardSession{}, ErrInvalidSessionID
	}
	s, err := u.sessions.Get(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	if s.ID == "" {
		return entities.WizardSession{}, ErrSessionNotFound
	}
	return s, nil
}

// mutate applies fn to the stored session and saves it. On error nothing is
// saved and the unchanged session is returned with the error.
func (u *QuoteWizardUseCase) mutate(ctx context.Context, id string, fn func(*entities.WizardSession) error) (entities.WizardSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	working := s
	if err := fn(&working); err != nil {
		return s, err
	}
	if err := u.sessions.Save(ctx, working); err != nil {
		return entities.WizardSession{}, err
	}
	return working, nil
}
