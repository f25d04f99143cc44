package entities

import "fmt"

// ProjectOptions are the fields shared by most project services. Quantity is
// counted in the unit of the chosen sub-service (hours, images, locations).
type ProjectOptions struct {
	SubService string   `json:"sub_service"`
	Quantity   int      `json:"quantity"`
	AddOns     []string `json:"addons,omitempty"`
	Logistics  string   `json:"logistics,omitempty"`
	Delivery   string   `json:"delivery,omitempty"`
}

func (o ProjectOptions) validate(e Engagement, opts OptionChecker) ValidationErrors {
	var errs ValidationErrors
	validateOption(&errs, opts, e, "sub_service", GroupSubService, o.SubService, true)
	validateQuantity(&errs, "quantity", o.Quantity)
	validateAddOns(&errs, opts, e, o.AddOns)
	validateOption(&errs, opts, e, "logistics", GroupLogistics, o.Logistics, true)
	validateOption(&errs, opts, e, "delivery", GroupDelivery, o.Delivery, true)
	return errs
}

func (o ProjectOptions) selections() []Selection {
	out := []Selection{{Option: OptionKey(GroupSubService, o.SubService), Quantity: float64(o.Quantity), Phase: PhaseBase}}
	out = append(out, addOnSelections(o.AddOns)...)
	out = append(out, deliverySelection(o.Delivery)...)
	return append(out, logisticsSelection(o.Logistics)...)
}

func summary(e Engagement, sub string) string {
	if sub == "" {
		return e.Title()
	}
	return fmt.Sprintf("%s - %s", e.Title(), sub)
}

type PhotographyConfig struct {
	ProjectOptions
}

func (c *PhotographyConfig) Engagement() Engagement { return ProjectEngagement(ServicePhotography) }
func (c *PhotographyConfig) Validate(opts OptionChecker) ValidationErrors {
	return c.validate(c.Engagement(), opts)
}
func (c *PhotographyConfig) Selections() []Selection { return c.selections() }
func (c *PhotographyConfig) Summary() string         { return summary(c.Engagement(), c.SubService) }

// VideoProductionConfig is priced per shooting day plus an editing fee that
// depends on the final video length.
type VideoProductionConfig struct {
	SubService   string   `json:"sub_service"`
	ShootingDays int      `json:"shooting_days"`
	VideoLength  string   `json:"video_length"`
	AddOns       []string `json:"addons,omitempty"`
	Logistics    string   `json:"logistics,omitempty"`
	Delivery     string   `json:"delivery,omitempty"`
}

func (c *VideoProductionConfig) Engagement() Engagement {
	return ProjectEngagement(ServiceVideoProduction)
}

func (c *VideoProductionConfig) Validate(opts OptionChecker) ValidationErrors {
	e := c.Engagement()
	var errs ValidationErrors
	validateOption(&errs, opts, e, "sub_service", GroupSubService, c.SubService, true)
	validateQuantity(&errs, "shooting_days", c.ShootingDays)
	validateOption(&errs, opts, e, "video_length", GroupLength, c.VideoLength, true)
	validateAddOns(&errs, opts, e, c.AddOns)
	validateOption(&errs, opts, e, "logistics", GroupLogistics, c.Logistics, true)
	validateOption(&errs, opts, e, "delivery", GroupDelivery, c.Delivery, true)
	return errs
}

func (c *VideoProductionConfig) Selections() []Selection {
	out := []Selection{
		{Option: OptionKey(GroupSubService, c.SubService), Quantity: float64(c.ShootingDays), Phase: PhaseBase},
		{Option: OptionKey(GroupLength, c.VideoLength), Quantity: 1, Phase: PhaseBase},
	}
	out = append(out, addOnSelections(c.AddOns)...)
	out = append(out, deliverySelection(c.Delivery)...)
	return append(out, logisticsSelection(c.Logistics)...)
}

func (c *VideoProductionConfig) Summary() string { return summary(c.Engagement(), c.SubService) }

// PostProductionConfig has no logistics: the work happens in the studio.
type PostProductionConfig struct {
	SubService string   `json:"sub_service"`
	Quantity   int      `json:"quantity"`
	AddOns     []string `json:"addons,omitempty"`
	Delivery   string   `json:"delivery,omitempty"`
}

func (c *PostProductionConfig) Engagement() Engagement {
	return ProjectEngagement(ServicePostProduction)
}

func (c *PostProductionConfig) Validate(opts OptionChecker) ValidationErrors {
	e := c.Engagement()
	var errs ValidationErrors
	validateOption(&errs, opts, e, "sub_service", GroupSubService, c.SubService, true)
	validateQuantity(&errs, "quantity", c.Quantity)
	validateAddOns(&errs, opts, e, c.AddOns)
	validateOption(&errs, opts, e, "delivery", GroupDelivery, c.Delivery, true)
	return errs
}

func (c *PostProductionConfig) Selections() []Selection {
	out := []Selection{{Option: OptionKey(GroupSubService, c.SubService), Quantity: float64(c.Quantity), Phase: PhaseBase}}
	out = append(out, addOnSelections(c.AddOns)...)
	return append(out, deliverySelection(c.Delivery)...)
}

func (c *PostProductionConfig) Summary() string { return summary(c.Engagement(), c.SubService) }

type ToursConfig struct {
	ProjectOptions
}

func (c *ToursConfig) Engagement() Engagement { return ProjectEngagement(ServiceTours) }
func (c *ToursConfig) Validate(opts OptionChecker) ValidationErrors {
	return c.validate(c.Engagement(), opts)
}
func (c *ToursConfig) Selections() []Selection { return c.selections() }
func (c *ToursConfig) Summary() string         { return summary(c.Engagement(), c.SubService) }

type TimeLapseConfig struct {
	ProjectOptions
}

func (c *TimeLapseConfig) Engagement() Engagement { return ProjectEngagement(ServiceTimeLapse) }
func (c *TimeLapseConfig) Validate(opts OptionChecker) ValidationErrors {
	return c.validate(c.Engagement(), opts)
}
func (c *TimeLapseConfig) Selections() []Selection { return c.selections() }
func (c *TimeLapseConfig) Summary() string         { return summary(c.Engagement(), c.SubService) }

type PhotogrammetryConfig struct {
	ProjectOptions
}

func (c *PhotogrammetryConfig) Engagement() Engagement {
	return ProjectEngagement(ServicePhotogrammetry)
}
func (c *PhotogrammetryConfig) Validate(opts OptionChecker) ValidationErrors {
	return c.validate(c.Engagement(), opts)
}
func (c *PhotogrammetryConfig) Selections() []Selection { return c.selections() }
func (c *PhotogrammetryConfig) Summary() string         { return summary(c.Engagement(), c.SubService) }

// RetainerConfig books a monthly block of hours.
type RetainerConfig struct {
	Hours  int      `json:"hours"`
	AddOns []string `json:"addons,omitempty"`
}

func (c *RetainerConfig) Engagement() Engagement { return RetainerEngagement() }

func (c *RetainerConfig) Validate(opts OptionChecker) ValidationErrors {
	var errs ValidationErrors
	switch {
	case c.Hours == 0:
		errs.add("hours", CodeRequired)
	case c.Hours < RetainerHoursMin || c.Hours > RetainerHoursMax:
		errs.add("hours", CodeOutOfRange)
	case (c.Hours-RetainerHoursMin)%RetainerHoursStep != 0:
		errs.add("hours", CodeInvalidFormat)
	}
	validateAddOns(&errs, opts, c.Engagement(), c.AddOns)
	return errs
}

func (c *RetainerConfig) Selections() []Selection {
	out := []Selection{{Option: RetainerHoursOption, Quantity: float64(c.Hours), Phase: PhaseBase}}
	return append(out, addOnSelections(c.AddOns)...)
}

func (c *RetainerConfig) Summary() string {
	return fmt.Sprintf("Monthly Retainer - %d hours", c.Hours)
}

// TrainingConfig logistics is optional: online courses need no travel.
type TrainingConfig struct {
	Format    string   `json:"format"`
	Sessions  int      `json:"sessions"`
	AddOns    []string `json:"addons,omitempty"`
	Logistics string   `json:"logistics,omitempty"`
}

func (c *TrainingConfig) Engagement() Engagement { return TrainingEngagement() }

func (c *TrainingConfig) Validate(opts OptionChecker) ValidationErrors {
	e := c.Engagement()
	var errs ValidationErrors
	validateOption(&errs, opts, e, "format", GroupFormat, c.Format, true)
	validateQuantity(&errs, "sessions", c.Sessions)
	validateAddOns(&errs, opts, e, c.AddOns)
	validateOption(&errs, opts, e, "logistics", GroupLogistics, c.Logistics, false)
	return errs
}

func (c *TrainingConfig) Selections() []Selection {
	out := []Selection{{Option: OptionKey(GroupFormat, c.Format), Quantity: float64(c.Sessions), Phase: PhaseBase}}
	out = append(out, addOnSelections(c.AddOns)...)
	return append(out, logisticsSelection(c.Logistics)...)
}

func (c *TrainingConfig) Summary() string { return summary(c.Engagement(), c.Format) }
