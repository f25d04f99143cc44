package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioo/internal/domain/entities"
)

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	p, ok := c.Lookup(photography, "sub_service:Event")
	require.True(t, ok)
	assert.Equal(t, Price{Kind: KindPerUnit, Amount: 500, Unit: "hour"}, p)

	p, ok = c.Lookup(photography, "delivery:Rush Delivery (24h)")
	require.True(t, ok)
	assert.Equal(t, KindPercent, p.Kind)

	_, ok = c.Lookup(photography, "sub_service:Weddings")
	assert.False(t, ok)
	_, ok = c.Lookup(entities.ProjectEngagement(entities.ServicePostProduction), "logistics:Dubai")
	assert.False(t, ok, "post production has no logistics")
}

func TestCatalog_EveryEngagementHasBaseOptions(t *testing.T) {
	c := DefaultCatalog()
	for _, e := range entities.AllEngagements() {
		opts := c.Options(e)
		switch e.Type {
		case entities.EngagementRetainer:
			assert.NotEmpty(t, opts[entities.GroupHours], e.Key())
		case entities.EngagementTraining:
			assert.NotEmpty(t, opts[entities.GroupFormat], e.Key())
		default:
			assert.NotEmpty(t, opts[entities.GroupSubService], e.Key())
			assert.Equal(t, []string{"Standard Delivery", "Rush Delivery (24h)"}, opts[entities.GroupDelivery], e.Key())
		}
	}
}

func TestCatalog_Merge(t *testing.T) {
	t.Run("overrides and appends", func(t *testing.T) {
		c := DefaultCatalog()
		before := len(c.Entries(photography))

		err := c.Merge(Overrides{
			"project/photography": {
				"sub_service:Event": {Kind: KindPerUnit, Amount: 550, Unit: "hour"},
				"addon:Photo Book":  {Kind: KindFlat, Amount: 400},
			},
		})
		require.NoError(t, err)

		p, _ := c.Lookup(photography, "sub_service:Event")
		assert.Equal(t, 550.0, p.Amount)
		entries := c.Entries(photography)
		assert.Len(t, entries, before+1)
		assert.Equal(t, "sub_service:Event", entries[0].Option, "existing option keeps its position")
		assert.Equal(t, "addon:Photo Book", entries[len(entries)-1].Option)
	})

	t.Run("rejects unknown engagement", func(t *testing.T) {
		c := DefaultCatalog()
		err := c.Merge(Overrides{"project/knitting": {"sub_service:Scarf": {Kind: KindFlat, Amount: 1}}})
		assert.ErrorIs(t, err, ErrUnknownEngagement)
	})

	t.Run("rejects invalid price atomically", func(t *testing.T) {
		c := DefaultCatalog()
		err := c.Merge(Overrides{
			"retainer": {
				"hours:Monthly Hours": {Kind: KindPerUnit, Amount: 1},
				"addon:Broken":        {Kind: "bogus", Amount: 1},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		p, _ := c.Lookup(entities.RetainerEngagement(), entities.RetainerHoursOption)
		assert.Equal(t, 350.0, p.Amount)
	})
}
