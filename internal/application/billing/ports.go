package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptIntent selects the output format of a rendered receipt. Both
// intents carry identical content; only the page geometry differs.
type ReceiptIntent string

const (
	// IntentPreview renders on A4 for on-screen review.
	IntentPreview ReceiptIntent = "preview"
	// IntentPrint renders on an 80mm thermal roll.
	IntentPrint ReceiptIntent = "print"
)

// Valid reports whether the intent is one of the two known values.
func (i ReceiptIntent) Valid() bool {
	return i == IntentPreview || i == IntentPrint
}

// ReceiptLine is one sale projected onto the receipt.
type ReceiptLine struct {
	Name        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	WeightGrams int // 0 for PIECE products; a weight line is printed when > 0
}

// ReceiptData is everything the renderer needs. It is a pure projection of
// the stored invoice, settings and sales: the renderer must not recompute
// any monetary value.
type ReceiptData struct {
	ShopName      string
	TRN           string
	Address       string
	Phone         string
	InvoiceNumber int64
	CustomerName  string
	OrderRef      string // last 4 characters of the first sale id
	IssuedAt      time.Time
	Lines         []ReceiptLine
	Net           decimal.Decimal
	VAT           decimal.Decimal
	Total         decimal.Decimal
	QRPayload     string // stored compliance payload, rendered as-is
}

// ReceiptGenerator renders a receipt to PDF bytes.
type ReceiptGenerator interface {
	Generate(data ReceiptData, intent ReceiptIntent) ([]byte, error)
}
