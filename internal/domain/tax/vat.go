// Package tax implements the VAT derivation applied to every invoice.
//
// The rate is fixed at 15% and is not configurable anywhere in the system.
// Rounding is half-up to 2 decimal places and is applied exactly once per
// derived field, never per line item, so rounding error cannot compound.
package tax

import "github.com/shopspring/decimal"

// VATRate is the fixed 15% VAT rate.
var VATRate = decimal.New(15, -2) // 0.15

// Line is the monetary slice of a line item needed for aggregation.
type Line struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Totals are the three derived monetary fields of an invoice.
// Invariant: Total = Net + VAT exactly, after rounding.
type Totals struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Total decimal.Decimal
}

// Round2 rounds to 2 decimal places, half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Aggregate derives Net, VAT and Total over lines in order.
//
//	Net   = Σ quantity_i × unitPrice_i
//	VAT   = round2(Net × 0.15)
//	Total = round2(Net + VAT)
func Aggregate(lines []Line) Totals {
	net := decimal.Zero
	for _, l := range lines {
		net = net.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	net = Round2(net)
	vat := Round2(net.Mul(VATRate))
	total := Round2(net.Add(vat))
	return Totals{Net: net, VAT: vat, Total: total}
}
