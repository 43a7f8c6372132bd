package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one recorded sale of a product at a given quantity. Sales are
// append-only: once recorded they are never modified, only referenced by
// invoices.
type Sale struct {
	ID            string
	ProductID     string
	ProductName   string // resolved via join; not stored on the sale row
	ProductUnit   Unit   // resolved via join
	Quantity      int
	SellingPrice  decimal.Decimal // unit price snapshot at sale time
	PurchasePrice decimal.Decimal // unit cost snapshot at sale time
	Total         decimal.Decimal // Quantity × SellingPrice
	Profit        decimal.Decimal // Total − Quantity × PurchasePrice
	WeightGrams   int             // Quantity × product unit weight; 0 for PIECE products
	CreatedAt     time.Time
}
