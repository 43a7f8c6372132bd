package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawharapos/pos-api/internal/domain/pricing"
)

func TestComputeLineTotals_Basic(t *testing.T) {
	got, err := pricing.ComputeLineTotals(
		decimal.RequireFromString("18.00"),
		decimal.RequireFromString("28.00"),
		3,
	)
	require.NoError(t, err)

	assert.Equal(t, "54.00", got.Cost.StringFixed(2))
	assert.Equal(t, "84.00", got.GrossTotal.StringFixed(2))
	assert.Equal(t, "30.00", got.Profit.StringFixed(2))
}

// profit = grossTotal − cost always, including when selling below cost.
func TestComputeLineTotals_NegativeProfit(t *testing.T) {
	got, err := pricing.ComputeLineTotals(
		decimal.RequireFromString("60.00"),
		decimal.RequireFromString("52.50"),
		2,
	)
	require.NoError(t, err)
	assert.Equal(t, "-15.00", got.Profit.StringFixed(2))
}

func TestComputeLineTotals_Pure(t *testing.T) {
	a, err := pricing.ComputeLineTotals(decimal.RequireFromString("1.25"), decimal.RequireFromString("2.40"), 5)
	require.NoError(t, err)
	b, err := pricing.ComputeLineTotals(decimal.RequireFromString("1.25"), decimal.RequireFromString("2.40"), 5)
	require.NoError(t, err)

	assert.True(t, a.Cost.Equal(b.Cost))
	assert.True(t, a.GrossTotal.Equal(b.GrossTotal))
	assert.True(t, a.Profit.Equal(b.Profit))
}

func TestComputeLineTotals_RejectsQuantityBelowOne(t *testing.T) {
	for _, q := range []int{0, -1, -10} {
		_, err := pricing.ComputeLineTotals(decimal.Zero, decimal.Zero, q)
		assert.ErrorIs(t, err, pricing.ErrQuantityTooLow, "quantity %d", q)
	}
}

func TestComputeLineTotals_RejectsNegativePrices(t *testing.T) {
	neg := decimal.RequireFromString("-0.01")

	_, err := pricing.ComputeLineTotals(neg, decimal.Zero, 1)
	assert.ErrorIs(t, err, pricing.ErrNegativePrice)

	_, err = pricing.ComputeLineTotals(decimal.Zero, neg, 1)
	assert.ErrorIs(t, err, pricing.ErrNegativePrice)
}

func TestComputeLineTotals_ZeroPricesAllowed(t *testing.T) {
	got, err := pricing.ComputeLineTotals(decimal.Zero, decimal.Zero, 1)
	require.NoError(t, err)
	assert.True(t, got.Cost.IsZero())
	assert.True(t, got.GrossTotal.IsZero())
	assert.True(t, got.Profit.IsZero())
}
