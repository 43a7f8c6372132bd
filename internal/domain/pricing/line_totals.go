// Package pricing computes the financial summary of a single prospective
// sale before it is submitted.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Validation errors. A caller receiving any of these must block submission;
// no sale may be recorded until the input is corrected.
var (
	ErrQuantityTooLow = errors.New("pricing: quantity must be at least 1")
	ErrNegativePrice  = errors.New("pricing: prices must not be negative")
)

// LineTotals is the derived summary shown to the operator while composing a
// sale.
type LineTotals struct {
	Cost       decimal.Decimal // purchasePrice × quantity
	GrossTotal decimal.Decimal // sellingPrice × quantity
	Profit     decimal.Decimal // GrossTotal − Cost
}

// ComputeLineTotals derives cost, gross total and profit for quantity units
// of a product. Pure function of its inputs; it persists nothing.
func ComputeLineTotals(purchasePrice, sellingPrice decimal.Decimal, quantity int) (LineTotals, error) {
	if quantity < 1 {
		return LineTotals{}, ErrQuantityTooLow
	}
	if purchasePrice.IsNegative() || sellingPrice.IsNegative() {
		return LineTotals{}, ErrNegativePrice
	}
	q := decimal.NewFromInt(int64(quantity))
	cost := purchasePrice.Mul(q)
	gross := sellingPrice.Mul(q)
	return LineTotals{
		Cost:       cost,
		GrossTotal: gross,
		Profit:     gross.Sub(cost),
	}, nil
}
