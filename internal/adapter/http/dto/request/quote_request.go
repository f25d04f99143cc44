package request

import (
	"errors"
	"strings"

	"studioo/internal/domain/entities"
)

var ErrMissingEngagement = errors.New("engagement key or type is required")

// EngagementRequest selects the engagement either by catalog key
// ("project/photography") or by type and service.
type EngagementRequest struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Service string `json:"service"`
	Advance bool   `json:"advance"`
}

func (r EngagementRequest) ResolveEngagement() (entities.Engagement, error) {
	if key := strings.TrimSpace(r.Key); key != "" {
		return entities.ParseEngagementKey(key)
	}
	t := strings.TrimSpace(r.Type)
	if t == "" {
		return entities.Engagement{}, ErrMissingEngagement
	}
	return entities.Engagement{
		Type:    entities.EngagementType(t),
		Service: entities.ServiceName(strings.TrimSpace(r.Service)),
	}, nil
}

// ConfigurationRequest carries the step 2 fields. Fields that do not apply to
// the selected engagement are ignored.
type ConfigurationRequest struct {
	SubService   string   `json:"sub_service"`
	Quantity     int      `json:"quantity"`
	ShootingDays int      `json:"shooting_days"`
	VideoLength  string   `json:"video_length"`
	Hours        int      `json:"hours"`
	Format       string   `json:"format"`
	Sessions     int      `json:"sessions"`
	AddOns       []string `json:"addons"`
	Logistics    string   `json:"logistics"`
	Delivery     string   `json:"delivery"`
}

func (r ConfigurationRequest) ToInput() entities.ConfigurationInput {
	return entities.ConfigurationInput{
		SubService:   r.SubService,
		Quantity:     r.Quantity,
		ShootingDays: r.ShootingDays,
		VideoLength:  r.VideoLength,
		Hours:        r.Hours,
		Format:       r.Format,
		Sessions:     r.Sessions,
		AddOns:       r.AddOns,
		Logistics:    r.Logistics,
		Delivery:     r.Delivery,
	}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

func (r ContactRequest) ToContactInfo() entities.ContactInfo {
	return entities.ContactInfo{Name: r.Name, Email: r.Email, Phone: r.Phone, Company: r.Company}.Normalize()
}
