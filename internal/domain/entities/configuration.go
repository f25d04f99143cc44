package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigurationMismatch = errors.New("configuration does not match engagement")
	ErrNilConfiguration      = errors.New("configuration is nil")
)

// Option groups. A catalog option key is "<group>:<label>".
const (
	GroupSubService = "sub_service"
	GroupAddOn      = "addon"
	GroupLogistics  = "logistics"
	GroupDelivery   = "delivery"
	GroupLength     = "length"
	GroupFormat     = "format"
	GroupHours      = "hours"
)

// Bounds shared by every quantity stepper.
const (
	QuantityMin = 1
	QuantityMax = 100

	RetainerHoursMin  = 10
	RetainerHoursMax  = 160
	RetainerHoursStep = 5
)

// RetainerHoursOption is the per-hour catalog entry of a retainer.
const RetainerHoursOption = GroupHours + ":Monthly Hours"

func OptionKey(group, label string) string {
	return group + ":" + label
}

// SplitOptionKey returns the group and label of an option key.
func SplitOptionKey(key string) (group, label string) {
	group, label, found := strings.Cut(key, ":")
	if !found {
		return "", key
	}
	return group, label
}

// Phase orders line items in a compiled quote: base work, flat add-ons,
// percentage surcharges over everything before them, then travel.
type Phase int

const (
	PhaseBase Phase = iota
	PhaseAddOn
	PhaseSurcharge
	PhaseTravel
)

// Selection is one priced choice made in a configuration.
type Selection struct {
	Option   string  `json:"option"`
	Quantity float64 `json:"quantity"`
	Phase    Phase   `json:"phase"`
}

// OptionChecker answers whether a catalog knows an option for an engagement.
type OptionChecker interface {
	HasOption(e Engagement, option string) bool
}

// ServiceConfig is implemented by every engagement-specific configuration.
type ServiceConfig interface {
	Engagement() Engagement
	Validate(opts OptionChecker) ValidationErrors
	Selections() []Selection
	Summary() string
}

// Configuration is the closed union of engagement configurations. At most one
// variant is meaningful: the one matching the session engagement.
type Configuration struct {
	Photography     *PhotographyConfig     `json:"photography,omitempty"`
	VideoProduction *VideoProductionConfig `json:"video_production,omitempty"`
	PostProduction  *PostProductionConfig  `json:"post_production,omitempty"`
	Tours           *ToursConfig           `json:"tours,omitempty"`
	TimeLapse       *TimeLapseConfig       `json:"time_lapse,omitempty"`
	Photogrammetry  *PhotogrammetryConfig  `json:"photogrammetry,omitempty"`
	Retainer        *RetainerConfig        `json:"retainer,omitempty"`
	Training        *TrainingConfig        `json:"training,omitempty"`
}

// For returns the configuration variant of e, if one was set.
func (c Configuration) For(e Engagement) (ServiceConfig, bool) {
	var sc ServiceConfig
	switch {
	case e == ProjectEngagement(ServicePhotography) && c.Photography != nil:
		sc = c.Photography
	case e == ProjectEngagement(ServiceVideoProduction) && c.VideoProduction != nil:
		sc = c.VideoProduction
	case e == ProjectEngagement(ServicePostProduction) && c.PostProduction != nil:
		sc = c.PostProduction
	case e == ProjectEngagement(ServiceTours) && c.Tours != nil:
		sc = c.Tours
	case e == ProjectEngagement(ServiceTimeLapse) && c.TimeLapse != nil:
		sc = c.TimeLapse
	case e == ProjectEngagement(ServicePhotogrammetry) && c.Photogrammetry != nil:
		sc = c.Photogrammetry
	case e == RetainerEngagement() && c.Retainer != nil:
		sc = c.Retainer
	case e == TrainingEngagement() && c.Training != nil:
		sc = c.Training
	default:
		return nil, false
	}
	return sc, true
}

// Set replaces the whole union with sc so that stale variants never survive.
func (c *Configuration) Set(sc ServiceConfig) error {
	*c = Configuration{}
	switch v := sc.(type) {
	case *PhotographyConfig:
		c.Photography = v
	case *VideoProductionConfig:
		c.VideoProduction = v
	case *PostProductionConfig:
		c.PostProduction = v
	case *ToursConfig:
		c.Tours = v
	case *TimeLapseConfig:
		c.TimeLapse = v
	case *PhotogrammetryConfig:
		c.Photogrammetry = v
	case *RetainerConfig:
		c.Retainer = v
	case *TrainingConfig:
		c.Training = v
	case nil:
		return ErrNilConfiguration
	default:
		return fmt.Errorf("unsupported configuration %T", sc)
	}
	return nil
}

func (c *Configuration) Clear() {
	*c = Configuration{}
}

func (c Configuration) IsEmpty() bool {
	return c == Configuration{}
}

// ConfigurationInput is the open wire shape of a configuration update. Build
// narrows it to the variant of one engagement; fields that do not apply are
// ignored.
type ConfigurationInput struct {
	SubService   string   `json:"sub_service,omitempty"`
	Quantity     int      `json:"quantity,omitempty"`
	ShootingDays int      `json:"shooting_days,omitempty"`
	VideoLength  string   `json:"video_length,omitempty"`
	Hours        int      `json:"hours,omitempty"`
	Format       string   `json:"format,omitempty"`
	Sessions     int      `json:"sessions,omitempty"`
	AddOns       []string `json:"addons,omitempty"`
	Logistics    string   `json:"logistics,omitempty"`
	Delivery     string   `json:"delivery,omitempty"`
}

func (in ConfigurationInput) Build(e Engagement) (ServiceConfig, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	opts := ProjectOptions{
		SubService: strings.TrimSpace(in.SubService),
		Quantity:   in.Quantity,
		AddOns:     in.AddOns,
		Logistics:  strings.TrimSpace(in.Logistics),
		Delivery:   strings.TrimSpace(in.Delivery),
	}
	switch e.Type {
	case EngagementRetainer:
		return &RetainerConfig{Hours: in.Hours, AddOns: in.AddOns}, nil
	case EngagementTraining:
		return &TrainingConfig{
			Format:    strings.TrimSpace(in.Format),
			Sessions:  in.Sessions,
			AddOns:    in.AddOns,
			Logistics: opts.Logistics,
		}, nil
	}
	switch e.Service {
	case ServicePhotography:
		return &PhotographyConfig{ProjectOptions: opts}, nil
	case ServiceVideoProduction:
		return &VideoProductionConfig{
			SubService:   opts.SubService,
			ShootingDays: in.ShootingDays,
			VideoLength:  strings.TrimSpace(in.VideoLength),
			AddOns:       in.AddOns,
			Logistics:    opts.Logistics,
			Delivery:     opts.Delivery,
		}, nil
	case ServicePostProduction:
		return &PostProductionConfig{
			SubService: opts.SubService,
			Quantity:   in.Quantity,
			AddOns:     in.AddOns,
			Delivery:   opts.Delivery,
		}, nil
	case ServiceTours:
		return &ToursConfig{ProjectOptions: opts}, nil
	case ServiceTimeLapse:
		return &TimeLapseConfig{ProjectOptions: opts}, nil
	case ServicePhotogrammetry:
		return &PhotogrammetryConfig{ProjectOptions: opts}, nil
	}
	return nil, ErrUnknownService
}

func validateOption(errs *ValidationErrors, opts OptionChecker, e Engagement, field, group, label string, required bool) {
	if label == "" {
		if required {
			errs.add(field, CodeRequired)
		}
		return
	}
	if opts != nil && !opts.HasOption(e, OptionKey(group, label)) {
		errs.add(field, CodeUnknownOption)
	}
}

func validateAddOns(errs *ValidationErrors, opts OptionChecker, e Engagement, addOns []string) {
	seen := make(map[string]struct{}, len(addOns))
	for _, a := range addOns {
		if _, dup := seen[a]; dup {
			errs.add("addons", CodeInvalidFormat)
			return
		}
		seen[a] = struct{}{}
		if opts != nil && !opts.HasOption(e, OptionKey(GroupAddOn, a)) {
			errs.add("addons", CodeUnknownOption)
			return
		}
	}
}

func validateQuantity(errs *ValidationErrors, field string, n int) {
	if n < QuantityMin || n > QuantityMax {
		errs.add(field, CodeOutOfRange)
	}
}

func addOnSelections(addOns []string) []Selection {
	out := make([]Selection, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, Selection{Option: OptionKey(GroupAddOn, a), Quantity: 1, Phase: PhaseAddOn})
	}
	return out
}

func logisticsSelection(label string) []Selection {
	if label == "" {
		return nil
	}
	return []Selection{{Option: OptionKey(GroupLogistics, label), Quantity: 1, Phase: PhaseTravel}}
}

// Delivery options are percentages of everything before them.
func deliverySelection(label string) []Selection {
	if label == "" {
		return nil
	}
	return []Selection{{Option: OptionKey(GroupDelivery, label), Quantity: 1, Phase: PhaseSurcharge}}
}
