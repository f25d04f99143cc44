package wizard

import (
	"studioo/internal/domain/entities"
	"studioo/internal/i18n"
)

// Progress is the progress bar state of a session.
type Progress struct {
	Step       entities.WizardStep `json:"step"`
	Index      int                 `json:"index"`
	Total      int                 `json:"total"`
	Name       string              `json:"name"`
	Percentage float64             `json:"percentage"`
	Steps      []string            `json:"steps"`
}

// ProgressOf maps the session step onto the input steps. The first step is 0%
// and the last input step is 100%; Complete stays at 100%.
func ProgressOf(sess *entities.WizardSession, lang i18n.Language) Progress {
	total := len(entities.InputSteps)
	idx := sess.Step.Index()
	if idx >= total {
		idx = total - 1
	}

	names := make([]string, 0, total)
	for _, st := range entities.InputSteps {
		names = append(names, i18n.T(lang, "step."+string(st)))
	}

	return Progress{
		Step:       sess.Step,
		Index:      idx + 1,
		Total:      total,
		Name:       i18n.T(lang, "step."+string(sess.Step)),
		Percentage: float64(idx) / float64(total-1) * 100,
		Steps:      names,
	}
}
