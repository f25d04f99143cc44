package pricing

import "studioo/internal/domain/entities"

const DefaultCurrency = "AED"

func perUnit(amount float64, unit string) Price {
	return Price{Kind: KindPerUnit, Amount: amount, Unit: unit}
}

func flat(amount float64) Price {
	return Price{Kind: KindFlat, Amount: amount}
}

func percent(amount float64) Price {
	return Price{Kind: KindPercent, Amount: amount}
}

func opt(group, label string, p Price) Entry {
	return Entry{Option: entities.OptionKey(group, label), Price: p}
}

// Logistics and delivery are offered by every on-site project service.
func commonLogistics() []Entry {
	return []Entry{
		opt(entities.GroupLogistics, "Dubai", flat(0)),
		opt(entities.GroupLogistics, "Sharjah", flat(150)),
		opt(entities.GroupLogistics, "Abu Dhabi / Other Emirates", flat(500)),
	}
}

func commonDelivery() []Entry {
	return []Entry{
		opt(entities.GroupDelivery, "Standard Delivery", flat(0)),
		opt(entities.GroupDelivery, "Rush Delivery (24h)", percent(50)),
	}
}

func withCommon(entries []Entry, logistics bool) []Entry {
	if logistics {
		entries = append(entries, commonLogistics()...)
	}
	return append(entries, commonDelivery()...)
}

// DefaultEntries is the studio price list. Every label reachable from a
// configuration variant has an entry here.
func DefaultEntries() map[string][]Entry {
	const (
		sub    = entities.GroupSubService
		addon  = entities.GroupAddOn
		length = entities.GroupLength
		format = entities.GroupFormat
	)

	return map[string][]Entry{
		entities.ProjectEngagement(entities.ServicePhotography).Key(): withCommon([]Entry{
			opt(sub, "Event", perUnit(500, "hour")),
			opt(sub, "Product", perUnit(75, "image")),
			opt(sub, "Real Estate", perUnit(1200, "property")),
			opt(sub, "Corporate Headshots", perUnit(150, "person")),
			opt(addon, "Drone Photography", flat(800)),
			opt(addon, "Advanced Retouching", flat(350)),
			opt(addon, "RAW Files", flat(250)),
		}, true),

		entities.ProjectEngagement(entities.ServiceVideoProduction).Key(): withCommon([]Entry{
			opt(sub, "Corporate", perUnit(3500, "shooting day")),
			opt(sub, "Event Highlights", perUnit(3000, "shooting day")),
			opt(sub, "Commercial", perUnit(5000, "shooting day")),
			opt(sub, "Social Media Reels", perUnit(2000, "shooting day")),
			opt(length, "Up to 1 min", flat(0)),
			opt(length, "1-3 min", flat(1500)),
			opt(length, "3-5 min", flat(3000)),
			opt(length, "5+ min", flat(5000)),
			opt(addon, "Drone Footage", flat(1200)),
			opt(addon, "Voice Over", flat(900)),
			opt(addon, "Motion Graphics", flat(1800)),
			opt(addon, "Subtitles", flat(400)),
		}, true),

		entities.ProjectEngagement(entities.ServicePostProduction).Key(): withCommon([]Entry{
			opt(sub, "Photo Editing", perUnit(40, "image")),
			opt(sub, "Video Editing", perUnit(600, "finished minute")),
			opt(sub, "Color Grading", perUnit(450, "finished minute")),
			opt(addon, "Sound Design", flat(700)),
			opt(addon, "Motion Graphics", flat(1800)),
		}, false),

		entities.ProjectEngagement(entities.ServiceTours).Key(): withCommon([]Entry{
			opt(sub, "Residential", perUnit(900, "property")),
			opt(sub, "Commercial", perUnit(1500, "property")),
			opt(sub, "Hospitality", perUnit(2200, "property")),
			opt(addon, "Floor Plan", flat(600)),
			opt(addon, "Hotspot Annotations", flat(450)),
			opt(addon, "Aerial Panorama", flat(900)),
		}, true),

		entities.ProjectEngagement(entities.ServiceTimeLapse).Key(): withCommon([]Entry{
			opt(sub, "Construction", perUnit(2500, "month")),
			opt(sub, "Event", perUnit(1200, "day")),
			opt(sub, "Cityscape", perUnit(1800, "day")),
			opt(addon, "Remote Monitoring", flat(750)),
			opt(addon, "Final Edit Video", flat(1500)),
		}, true),

		entities.ProjectEngagement(entities.ServicePhotogrammetry).Key(): withCommon([]Entry{
			opt(sub, "Object Scan", perUnit(800, "object")),
			opt(sub, "Building Scan", perUnit(4500, "building")),
			opt(sub, "Site Survey", perUnit(6000, "site")),
			opt(addon, "Textured 3D Model", flat(1200)),
			opt(addon, "Web Viewer", flat(650)),
		}, true),

		entities.RetainerEngagement().Key(): {
			{Option: entities.RetainerHoursOption, Price: perUnit(350, "hour")},
			opt(addon, "Dedicated Account Manager", flat(1500)),
			opt(addon, "Monthly Strategy Session", flat(800)),
			opt(addon, "Priority Scheduling", percent(10)),
		},

		entities.TrainingEngagement().Key(): append([]Entry{
			opt(format, "One-on-One", perUnit(750, "session")),
			opt(format, "Team Workshop", perUnit(2500, "session")),
			opt(format, "Online Course", perUnit(400, "session")),
			opt(addon, "Course Materials", flat(300)),
			opt(addon, "Certificate of Completion", flat(150)),
		}, commonLogistics()...),
	}
}

// DefaultCatalog returns a fresh catalog with the studio price list.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultCurrency, DefaultEntries())
}
