package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is the sale-unit discriminator of a product.
type Unit string

// Products are sold either by piece or by weight. A WEIGHT product carries
// UnitWeightGrams (grams per sold unit); a PIECE product does not.
const (
	UnitPiece  Unit = "PIECE"
	UnitWeight Unit = "WEIGHT"
)

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u == UnitPiece || u == UnitWeight
}

// Product is a catalog item of the shop.
type Product struct {
	ID              string
	Name            string
	PurchasePrice   decimal.Decimal // cost per unit
	SellingPrice    decimal.Decimal // sale price per unit
	Stock           int
	Unit            Unit
	UnitWeightGrams int // grams per unit; meaningful only when Unit == UnitWeight
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
