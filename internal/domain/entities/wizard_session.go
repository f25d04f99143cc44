package entities

import "time"

// WizardStep is the position of a session in the quote wizard.
type WizardStep string

const (
	StepSelectEngagement WizardStep = "select_engagement"
	StepConfigure        WizardStep = "configure"
	StepContactInfo      WizardStep = "contact_info"
	StepComplete         WizardStep = "complete"
)

// InputSteps are the steps that collect input, in order. Complete is terminal
// and not counted by the progress bar.
var InputSteps = []WizardStep{StepSelectEngagement, StepConfigure, StepContactInfo}

// Index returns the zero based position of the step, or len(InputSteps) for
// Complete.
func (s WizardStep) Index() int {
	for i, step := range InputSteps {
		if step == s {
			return i
		}
	}
	return len(InputSteps)
}

// WizardSession is the in-progress form state of one visitor.
//
// Storage model (Redis):
//   - key: quote_session:<id>, JSON encoded, expiring after the session TTL.
//
// QuoteSeed and StartedAt fix the quote number and date for the whole
// session, so going back from Complete and forward again with the same input
// produces the same quote. Leaving Complete after a submission draws a new
// seed.
type WizardSession struct {
	ID            string        `json:"id"`
	Step          WizardStep    `json:"step"`
	Language      string        `json:"language"`
	Engagement    Engagement    `json:"engagement"`
	Configuration Configuration `json:"configuration"`
	Contact       ContactInfo   `json:"contact"`
	Quote         *Quote        `json:"quote,omitempty"`
	QuoteSeed     string        `json:"quote_seed"`
	ClientUserID  string        `json:"client_user_id,omitempty"`
	SubmittedAs   string        `json:"submitted_as,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ActiveConfig returns the configuration of the selected engagement.
func (s *WizardSession) ActiveConfig() (ServiceConfig, bool) {
	if s.Engagement.IsZero() {
		return nil, false
	}
	return s.Configuration.For(s.Engagement)
}

func (s *WizardSession) Submitted() bool {
	return s.SubmittedAs != ""
}
