package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body for POST /invoice/create and
// PATCH /invoice/update/:id.
type CreateInvoiceRequest struct {
	Sales        []string `json:"sales"` // sale ids, in selection order
	CustomerName string   `json:"customerName"`
}

// InvoiceResponse list-view invoice for GET /invoice/getAll.
type InvoiceResponse struct {
	ID            string          `json:"_id"`
	InvoiceNumber int64           `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	SaleIDs       []string        `json:"sales"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ResolvedInvoiceResponse full invoice for GET /invoice/getById/:id:
// sale references are resolved to full sale records for display.
type ResolvedInvoiceResponse struct {
	ID             string          `json:"_id"`
	InvoiceNumber  int64           `json:"invoiceNumber"`
	CustomerName   string          `json:"customerName"`
	Sales          []SaleResponse  `json:"sales"`
	TotalNetAmount decimal.Decimal `json:"totalNetAmount"`
	TotalVatAmount decimal.Decimal `json:"totalVatAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	QRCode         string          `json:"qrCode"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
