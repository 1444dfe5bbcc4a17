package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wizzbot/internal/domain/entity"
)

func floatPtr(v float64) *float64 { return &v }

func TestPriceChanged(t *testing.T) {
	assert.False(t, PriceChanged(nil, 100), "no stored price means no change")
	assert.False(t, PriceChanged(floatPtr(100), 100))
	assert.True(t, PriceChanged(floatPtr(100), 95))
	assert.True(t, PriceChanged(floatPtr(95), 100))
	assert.True(t, PriceChanged(floatPtr(0), 100))
}

func TestBestDatesChanged(t *testing.T) {
	base := []entity.DatePriceInfo{
		{Date: "19.06.2025", Price: 80},
		{Date: "22.06.2025", Price: 80},
	}

	t.Run("empty old set", func(t *testing.T) {
		assert.True(t, BestDatesChanged(nil, base))
		assert.True(t, BestDatesChanged([]entity.DatePriceInfo{}, base))
	})

	t.Run("identical sets", func(t *testing.T) {
		assert.False(t, BestDatesChanged(base, base))
	})

	t.Run("order does not matter", func(t *testing.T) {
		reordered := []entity.DatePriceInfo{
			{Date: "22.06.2025", Price: 80},
			{Date: "19.06.2025", Price: 80},
		}
		assert.False(t, BestDatesChanged(base, reordered))
	})

	t.Run("length differs", func(t *testing.T) {
		assert.True(t, BestDatesChanged(base, base[:1]))
		assert.True(t, BestDatesChanged(base[:1], base))
	})

	t.Run("price moved", func(t *testing.T) {
		cheaper := []entity.DatePriceInfo{
			{Date: "19.06.2025", Price: 75},
			{Date: "22.06.2025", Price: 75},
		}
		assert.True(t, BestDatesChanged(base, cheaper))
	})

	t.Run("date replaced", func(t *testing.T) {
		shifted := []entity.DatePriceInfo{
			{Date: "19.06.2025", Price: 80},
			{Date: "23.06.2025", Price: 80},
		}
		assert.True(t, BestDatesChanged(base, shifted))
	})

	t.Run("date removed and another duplicated", func(t *testing.T) {
		// Same entry count, fewer distinct dates.
		collapsed := []entity.DatePriceInfo{
			{Date: "19.06.2025", Price: 80, OriginCode: "FCO"},
			{Date: "19.06.2025", Price: 80, OriginCode: "CIA"},
		}
		assert.True(t, BestDatesChanged(base, collapsed))
	})

	t.Run("airport pair alone does not count", func(t *testing.T) {
		otherPair := []entity.DatePriceInfo{
			{Date: "19.06.2025", Price: 80, OriginCode: "FCO", DestinationCode: "EVN"},
			{Date: "22.06.2025", Price: 80, OriginCode: "CIA", DestinationCode: "EVN"},
		}
		assert.False(t, BestDatesChanged(base, otherPair))
	})
}
