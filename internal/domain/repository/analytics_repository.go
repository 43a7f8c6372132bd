package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics is an aggregate over a date range.
type SalesMetrics struct {
	TotalSales   int64
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
}

// MonthlyMetrics is one month of the revenue/sales series.
type MonthlyMetrics struct {
	Month        int // 1..12
	TotalRevenue decimal.Decimal
	TotalSales   int64
}

// AnalyticsRepository provides read-only aggregates over recorded sales.
type AnalyticsRepository interface {
	// GetSalesMetrics aggregates count, revenue and profit over the
	// half-open range [from, to) on created_at.
	GetSalesMetrics(ctx context.Context, from, to time.Time) (SalesMetrics, error)
	// GetMonthlyRevenueSales returns one row per month of the given year
	// that has at least one sale, ordered by month.
	GetMonthlyRevenueSales(ctx context.Context, year int) ([]MonthlyMetrics, error)
}
