package entities

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEngagement = errors.New("invalid engagement")
	ErrUnknownService    = errors.New("unknown service")
)

// EngagementType is the top-level category of work requested.
type EngagementType string

const (
	EngagementProject  EngagementType = "Project"
	EngagementRetainer EngagementType = "Retainer"
	EngagementTraining EngagementType = "Training"
)

// ServiceName identifies the studio service of a Project engagement.
type ServiceName string

const (
	ServicePhotography     ServiceName = "Photography"
	ServiceVideoProduction ServiceName = "Video Production"
	ServicePostProduction  ServiceName = "Post Production"
	ServiceTours           ServiceName = "360 Tours"
	ServiceTimeLapse       ServiceName = "Time Lapse"
	ServicePhotogrammetry  ServiceName = "Photogrammetry"
)

// Services lists the project services in display order.
var Services = []ServiceName{
	ServicePhotography,
	ServiceVideoProduction,
	ServicePostProduction,
	ServiceTours,
	ServiceTimeLapse,
	ServicePhotogrammetry,
}

var serviceKeys = map[ServiceName]string{
	ServicePhotography:     "photography",
	ServiceVideoProduction: "video-production",
	ServicePostProduction:  "post-production",
	ServiceTours:           "360-tours",
	ServiceTimeLapse:       "time-lapse",
	ServicePhotogrammetry:  "photogrammetry",
}

// Engagement is the tagged variant chosen in the first wizard step:
// Project{service}, Retainer or Training. Service is set only for Project.
type Engagement struct {
	Type    EngagementType `json:"type"`
	Service ServiceName    `json:"service,omitempty"`
}

func ProjectEngagement(service ServiceName) Engagement {
	return Engagement{Type: EngagementProject, Service: service}
}

func RetainerEngagement() Engagement {
	return Engagement{Type: EngagementRetainer}
}

func TrainingEngagement() Engagement {
	return Engagement{Type: EngagementTraining}
}

// AllEngagements returns every selectable engagement in display order.
func AllEngagements() []Engagement {
	out := make([]Engagement, 0, len(Services)+2)
	for _, s := range Services {
		out = append(out, ProjectEngagement(s))
	}
	return append(out, RetainerEngagement(), TrainingEngagement())
}

func (e Engagement) IsZero() bool {
	return e.Type == "" && e.Service == ""
}

func (e Engagement) Validate() error {
	switch e.Type {
	case EngagementProject:
		if _, ok := serviceKeys[e.Service]; !ok {
			return ErrUnknownService
		}
		return nil
	case EngagementRetainer, EngagementTraining:
		if e.Service != "" {
			return ErrInvalidEngagement
		}
		return nil
	default:
		return ErrInvalidEngagement
	}
}

// Key is the stable catalog key of the engagement, e.g. "project/photography".
func (e Engagement) Key() string {
	switch e.Type {
	case EngagementProject:
		return "project/" + serviceKeys[e.Service]
	case EngagementRetainer:
		return "retainer"
	case EngagementTraining:
		return "training"
	}
	return ""
}

// Title is the human label used in headings and project names.
func (e Engagement) Title() string {
	switch e.Type {
	case EngagementProject:
		return string(e.Service)
	case EngagementRetainer:
		return "Retainer"
	case EngagementTraining:
		return "Training & Workshops"
	}
	return ""
}

// ParseEngagementKey is the inverse of [Engagement.Key].
func ParseEngagementKey(key string) (Engagement, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "retainer":
		return RetainerEngagement(), nil
	case "training":
		return TrainingEngagement(), nil
	}
	if svc, ok := strings.CutPrefix(key, "project/"); ok {
		for name, k := range serviceKeys {
			if k == svc {
				return ProjectEngagement(name), nil
			}
		}
		return Engagement{}, ErrUnknownService
	}
	return Engagement{}, ErrInvalidEngagement
}
