package usecase

import (
	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
	"studioo/internal/i18n"
)

// groupOrder is the order option groups are shown in the configuration step.
var groupOrder = []string{
	entities.GroupSubService,
	entities.GroupFormat,
	entities.GroupHours,
	entities.GroupLength,
	entities.GroupAddOn,
	entities.GroupLogistics,
	entities.GroupDelivery,
}

type OptionView struct {
	Label string        `json:"label"`
	Key   string        `json:"key"`
	Price pricing.Price `json:"price"`
}

type OptionGroupView struct {
	Group   string       `json:"group"`
	Options []OptionView `json:"options"`
}

// EngagementView is one selectable engagement with its priced options.
type EngagementView struct {
	Key      string            `json:"key"`
	Type     string            `json:"type"`
	Service  string            `json:"service,omitempty"`
	Label    string            `json:"label"`
	Title    string            `json:"title"`
	Groups   []OptionGroupView `json:"groups"`
	Currency string            `json:"currency"`
}

type ICatalogUseCase interface {
	ListEngagements(lang i18n.Language) []EngagementView
	GetEngagement(lang i18n.Language, key string) (EngagementView, error)
}

type CatalogUseCase struct {
	catalog *pricing.Catalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog *pricing.Catalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) ListEngagements(lang i18n.Language) []EngagementView {
	all := entities.AllEngagements()
	out := make([]EngagementView, 0, len(all))
	for _, e := range all {
		out = append(out, u.view(lang, e))
	}
	return out
}

func (u *CatalogUseCase) GetEngagement(lang i18n.Language, key string) (EngagementView, error) {
	e, err := entities.ParseEngagementKey(key)
	if err != nil {
		return EngagementView{}, err
	}
	return u.view(lang, e), nil
}

func (u *CatalogUseCase) view(lang i18n.Language, e entities.Engagement) EngagementView {
	byGroup := make(map[string][]OptionView)
	for _, entry := range u.catalog.Entries(e) {
		group, label := entities.SplitOptionKey(entry.Option)
		byGroup[group] = append(byGroup[group], OptionView{Label: label, Key: entry.Option, Price: entry.Price})
	}

	groups := make([]OptionGroupView, 0, len(byGroup))
	for _, g := range groupOrder {
		if opts, ok := byGroup[g]; ok {
			groups = append(groups, OptionGroupView{Group: g, Options: opts})
		}
	}

	return EngagementView{
		Key:      e.Key(),
		Type:     string(e.Type),
		Service:  string(e.Service),
		Label:    i18n.T(lang, "engagement."+string(e.Type)),
		Title:    e.Title(),
		Groups:   groups,
		Currency: u.catalog.Currency(),
	}
}
