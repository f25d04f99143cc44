// Package pricing holds the studio price catalog and compiles wizard
// selections into priced quotes.
//
// The catalog maps (engagement, option) pairs to a Price. Options are keyed
// "<group>:<label>" so that the same label can live in different groups, e.g.
// "sub_service:Event" or "delivery:Rush Delivery (24h)". Lookups never fail
// loudly: a missing entry is reported to the caller, which records an
// anomaly and prices the selection at zero.
package pricing

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"studioo/internal/domain/entities"
)

var (
	ErrUnknownEngagement = errors.New("unknown engagement in catalog")
	ErrInvalidPrice      = errors.New("invalid price")
)

// Kind tells the compiler how a Price turns into a line item.
type Kind string

const (
	// KindPerUnit is multiplied by the selection quantity.
	KindPerUnit Kind = "per_unit"
	// KindFlat is a fixed fee charged once per selection.
	KindFlat Kind = "flat"
	// KindPercent is a percentage of the running subtotal.
	KindPercent Kind = "percent"
)

// Price is a catalog entry. Amount is a rate in the catalog currency, or a
// percentage (50 means +50%) when Kind is KindPercent.
type Price struct {
	Kind        Kind    `json:"kind" mapstructure:"kind"`
	Amount      float64 `json:"amount" mapstructure:"amount"`
	Unit        string  `json:"unit,omitempty" mapstructure:"unit"`
	Description string  `json:"description,omitempty" mapstructure:"description"`
}

func (p Price) validate() error {
	switch p.Kind {
	case KindPerUnit, KindFlat, KindPercent:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidPrice, p.Kind)
	}
	if p.Amount < 0 {
		return fmt.Errorf("%w: negative amount %v", ErrInvalidPrice, p.Amount)
	}
	return nil
}

// Entry is one option of an engagement with its price.
type Entry struct {
	Option string `json:"option"`
	Price  Price  `json:"price"`
}

// Overrides replace or add catalog prices, keyed by engagement key and then by
// option key.
type Overrides map[string]map[string]Price

// Catalog is safe for concurrent reads; Merge takes the write lock.
type Catalog struct {
	mu       sync.RWMutex
	currency string
	entries  map[string][]Entry
}

func NewCatalog(currency string, entries map[string][]Entry) *Catalog {
	c := &Catalog{currency: currency, entries: make(map[string][]Entry, len(entries))}
	for k, v := range entries {
		c.entries[k] = slices.Clone(v)
	}
	return c
}

func (c *Catalog) Currency() string {
	return c.currency
}

// Lookup returns the price of option for engagement e.
func (c *Catalog) Lookup(e entities.Engagement, option string) (Price, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, entry := range c.entries[e.Key()] {
		if entry.Option == option {
			return entry.Price, true
		}
	}
	return Price{}, false
}

// HasOption implements entities.OptionChecker.
func (c *Catalog) HasOption(e entities.Engagement, option string) bool {
	_, ok := c.Lookup(e, option)
	return ok
}

// Entries returns the catalog entries of e in display order.
func (c *Catalog) Entries(e entities.Engagement) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entries[e.Key()])
}

// Options returns the selectable labels of e grouped by option group, each
// group in display order.
func (c *Catalog) Options(e entities.Engagement) map[string][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string][]string)
	for _, entry := range c.entries[e.Key()] {
		group, label := entities.SplitOptionKey(entry.Option)
		out[group] = append(out[group], label)
	}
	return out
}

// Merge applies overrides. Existing options keep their position; new options
// are appended. Nothing is applied when any override is invalid.
func (c *Catalog) Merge(o Overrides) error {
	for key, prices := range o {
		if _, err := entities.ParseEngagementKey(key); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownEngagement, key)
		}
		for option, p := range prices {
			if err := p.validate(); err != nil {
				return fmt.Errorf("%s %s: %w", key, option, err)
			}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, prices := range o {
		options := make([]string, 0, len(prices))
		for option := range prices {
			options = append(options, option)
		}
		slices.Sort(options)
		for _, option := range options {
			c.entries[key] = upsert(c.entries[key], Entry{Option: option, Price: prices[option]})
		}
	}
	return nil
}

func upsert(entries []Entry, e Entry) []Entry {
	for i := range entries {
		if entries[i].Option == e.Option {
			entries[i] = e
			return entries
		}
	}
	return append(entries, e)
}
