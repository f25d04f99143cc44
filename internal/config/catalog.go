package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"studioo/internal/domain/pricing"
)

// CatalogFile is the optional price override file referenced by CATALOG_PATH.
//
// Example:
//
//	currency: AED
//	prices:
//	  - engagement: project/photography
//	    option: "sub_service:Event"
//	    kind: per_unit
//	    amount: 550
//	    unit: hour
//
// Prices are a list rather than a map because viper lower-cases map keys and
// option labels are case sensitive.
type CatalogFile struct {
	Currency string          `mapstructure:"currency"`
	Prices   []PriceOverride `mapstructure:"prices"`
}

type PriceOverride struct {
	Engagement  string  `mapstructure:"engagement"`
	Option      string  `mapstructure:"option"`
	Kind        string  `mapstructure:"kind"`
	Amount      float64 `mapstructure:"amount"`
	Unit        string  `mapstructure:"unit"`
	Description string  `mapstructure:"description"`
}

// CatalogLoader reads catalog files with viper. STUDIOO_CURRENCY overrides the
// currency of the file.
type CatalogLoader struct {
	v *viper.Viper
}

func NewCatalogLoader() *CatalogLoader {
	v := viper.New()
	v.SetEnvPrefix("STUDIOO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("currency", pricing.DefaultCurrency)
	return &CatalogLoader{v: v}
}

func (l *CatalogLoader) LoadFromFile(path string) (*CatalogFile, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var f CatalogFile
	if err := l.v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("error decoding catalog file: %w", err)
	}
	return &f, nil
}

// Overrides groups the file entries by engagement key.
func (f *CatalogFile) Overrides() (pricing.Overrides, error) {
	out := make(pricing.Overrides)
	for i, p := range f.Prices {
		if p.Engagement == "" || p.Option == "" {
			return nil, fmt.Errorf("prices[%d]: engagement and option are required", i)
		}
		if out[p.Engagement] == nil {
			out[p.Engagement] = make(map[string]pricing.Price)
		}
		out[p.Engagement][p.Option] = pricing.Price{
			Kind:        pricing.Kind(p.Kind),
			Amount:      p.Amount,
			Unit:        p.Unit,
			Description: p.Description,
		}
	}
	return out, nil
}

// LoadCatalog returns the default catalog in the configured currency with the
// overrides of q.CatalogPath applied, when set.
func LoadCatalog(q QuoteConfig) (*pricing.Catalog, error) {
	currency := q.Currency
	var overrides pricing.Overrides

	if q.CatalogPath != "" {
		f, err := NewCatalogLoader().LoadFromFile(q.CatalogPath)
		if err != nil {
			return nil, err
		}
		if f.Currency != "" {
			currency = f.Currency
		}
		if overrides, err = f.Overrides(); err != nil {
			return nil, err
		}
	}
	if currency == "" {
		currency = pricing.DefaultCurrency
	}

	catalog := pricing.NewCatalog(currency, pricing.DefaultEntries())
	if err := catalog.Merge(overrides); err != nil {
		return nil, fmt.Errorf("invalid catalog overrides: %w", err)
	}
	return catalog, nil
}
