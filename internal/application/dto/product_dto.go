package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /product/create.
// Unit is "PIECE" or "WEIGHT"; unitWeightGrams is required for WEIGHT and
// must be absent (zero) for PIECE.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Stock           int             `json:"stock"`
	Unit            string          `json:"unit"`
	UnitWeightGrams int             `json:"unitWeightGrams,omitempty"`
}

// UpdateProductRequest body for PATCH /product/update/:id. Same shape as
// create; the full record is replaced.
type UpdateProductRequest = CreateProductRequest

// ProductResponse product in responses.
type ProductResponse struct {
	ID              string          `json:"_id"`
	Name            string          `json:"name"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Stock           int             `json:"stock"`
	Unit            string          `json:"unit"`
	UnitWeightGrams int             `json:"unitWeightGrams,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
