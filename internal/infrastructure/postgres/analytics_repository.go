package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jawharapos/pos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements AnalyticsRepository with SQL aggregation. All
// sums run on the NUMERIC columns; no monetary math happens in Go here.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the read-only analytics adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (repository.SalesMetrics, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(profit), 0)
		FROM sales
		WHERE created_at >= $1 AND created_at < $2`
	var m repository.SalesMetrics
	err := r.q.QueryRow(ctx, query, from, to).Scan(&m.TotalSales, &m.TotalRevenue, &m.TotalProfit)
	if err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("sales metrics: %w", err)
	}
	return m, nil
}

func (r *AnalyticsRepo) GetMonthlyRevenueSales(ctx context.Context, year int) ([]repository.MonthlyMetrics, error) {
	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month, COALESCE(SUM(total), 0), COUNT(*)
		FROM sales
		WHERE created_at >= make_date($1, 1, 1) AND created_at < make_date($1 + 1, 1, 1)
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue sales: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlyMetrics
	for rows.Next() {
		var m repository.MonthlyMetrics
		if err := rows.Scan(&m.Month, &m.TotalRevenue, &m.TotalSales); err != nil {
			return nil, fmt.Errorf("scan monthly metrics: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
