package response

import (
	"time"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/wizard"
	"studioo/internal/i18n"
	"studioo/internal/presentation"
)

type EngagementResponse struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Service string `json:"service,omitempty"`
	Title   string `json:"title"`
}

type ContactResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
}

// SessionResponse is the wizard state sent after every step operation. Texts
// are rendered in the request language, which may differ from the language
// the session started in.
type SessionResponse struct {
	ID            string                 `json:"id"`
	Step          string                 `json:"step"`
	Language      i18n.Language          `json:"language"`
	Direction     string                 `json:"dir"`
	Progress      wizard.Progress        `json:"progress"`
	Engagement    *EngagementResponse    `json:"engagement,omitempty"`
	Configuration entities.ServiceConfig `json:"configuration,omitempty"`
	Summary       string                 `json:"summary,omitempty"`
	Contact       ContactResponse        `json:"contact"`
	Quote         *presentation.Document `json:"quote,omitempty"`
	Prefilled     bool                   `json:"prefilled"`
	Submitted     bool                   `json:"submitted"`
	StartedAt     time.Time              `json:"started_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromSession(s entities.WizardSession, lang i18n.Language) SessionResponse {
	res := SessionResponse{
		ID:        s.ID,
		Step:      string(s.Step),
		Language:  lang,
		Direction: lang.Direction(),
		Progress:  wizard.ProgressOf(&s, lang),
		Contact: ContactResponse{
			Name:    s.Contact.Name,
			Email:   s.Contact.Email,
			Phone:   s.Contact.Phone,
			Company: s.Contact.Company,
		},
		Prefilled: s.ClientUserID != "",
		Submitted: s.Submitted(),
		StartedAt: s.StartedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if !s.Engagement.IsZero() {
		res.Engagement = &EngagementResponse{
			Key:     s.Engagement.Key(),
			Type:    string(s.Engagement.Type),
			Service: string(s.Engagement.Service),
			Title:   s.Engagement.Title(),
		}
	}
	if cfg, ok := s.ActiveConfig(); ok {
		res.Configuration = cfg
		res.Summary = cfg.Summary()
	}
	if s.Quote != nil {
		doc := presentation.NewDocument(*s.Quote, lang)
		res.Quote = &doc
	}
	return res
}

type SubmissionResponse struct {
	RequestID   string    `json:"request_id"`
	QuoteNumber string    `json:"quote_number"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromQuoteRequest(r entities.QuoteRequest) SubmissionResponse {
	return SubmissionResponse{
		RequestID:   r.ID,
		QuoteNumber: r.QuoteNumber,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

// FieldError is one entry of the details of a VALIDATION_ERROR response.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func FromValidationErrors(errs entities.ValidationErrors, lang i18n.Language) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{
			Field:   e.Field,
			Code:    e.Code,
			Message: i18n.ValidationMessage(lang, e.Field, e.Code),
		})
	}
	return out
}
