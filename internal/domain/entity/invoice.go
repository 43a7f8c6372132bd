package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a numbered aggregation of one or more sales issued to a
// customer. The three monetary fields are derived from the referenced sales
// and recomputed on every update; they are never edited independently.
type Invoice struct {
	ID            string
	InvoiceNumber int64 // monotonically increasing, assigned at creation
	CustomerName  string
	SaleIDs       []string // ordered as selected by the operator
	NetAmount     decimal.Decimal
	VATAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	QRPayload     string // opaque base64 TLV compliance payload
	CreatedAt     time.Time // immutable after creation
	UpdatedAt     time.Time
}
