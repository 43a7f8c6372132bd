package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body for POST /sale/create. Prices are snapshots taken
// by the operator screen at submission time.
type CreateSaleRequest struct {
	Product       string          `json:"product"` // product id
	Quantity      int             `json:"quantity"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// SaleProductRef the product slice embedded in a sale response.
type SaleProductRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// SaleResponse one recorded sale.
type SaleResponse struct {
	ID           string          `json:"_id"`
	Product      SaleProductRef  `json:"product"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Total        decimal.Decimal `json:"total"`
	Profit       decimal.Decimal `json:"profit"`
	Weight       int             `json:"weight,omitempty"` // grams; only for WEIGHT products
	CreatedAt    time.Time       `json:"createdAt"`
}

// SaleStatsResponse all-time aggregates for GET /sale/stats.
type SaleStatsResponse struct {
	TotalSales   int64           `json:"totalSales"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
}

// DayRevenue one day's slice of GET /sale/daily-revenue.
type DayRevenue struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalSales   int64           `json:"totalSales"`
}

// DailyRevenueResponse today vs yesterday.
type DailyRevenueResponse struct {
	Today     DayRevenue `json:"today"`
	Yesterday DayRevenue `json:"yesterday"`
}

// MonthlyRevenueSalesItem one month of GET /sale/monthly-revenue-sales.
type MonthlyRevenueSalesItem struct {
	Month        int             `json:"month"` // 1..12
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalSales   int64           `json:"totalSales"`
}
