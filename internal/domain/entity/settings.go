package entity

import "time"

// ShopSettings is the singleton shop identity printed on every receipt.
type ShopSettings struct {
	ID        int
	ShopName  string
	TRN       string // tax registration number (15 digits)
	Address   string
	Phone     string
	UpdatedAt time.Time
}
