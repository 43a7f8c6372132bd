package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/domain/repository"
	"github.com/jawharapos/pos-api/pkg/logger"
)

// DashboardUseCase computes the aggregates behind the dashboard cards and
// charts. All figures come from SQL aggregation; nothing is recomputed from
// individual rows in Go. The cache is optional: a nil cache means every
// request hits the database.
type DashboardUseCase struct {
	repo  repository.AnalyticsRepository
	cache Cache
	log   *logger.Logger
}

// NewDashboardUseCase builds the use case. cache may be nil.
func NewDashboardUseCase(repo repository.AnalyticsRepository, cache Cache, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache, log: log}
}

// Stats returns all-time sale count, revenue and profit.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.SaleStatsResponse, error) {
	var cached dto.SaleStatsResponse
	if uc.cacheGet(ctx, KeyStats, &cached) {
		return &cached, nil
	}

	m, err := uc.repo.GetSalesMetrics(ctx, time.Time{}, time.Now())
	if err != nil {
		return nil, err
	}
	out := &dto.SaleStatsResponse{
		TotalSales:   m.TotalSales,
		TotalRevenue: m.TotalRevenue,
		TotalProfit:  m.TotalProfit,
	}
	uc.cacheSet(ctx, KeyStats, out)
	return out, nil
}

// DailyRevenue returns today's and yesterday's revenue and sale count, with
// day boundaries at local midnight. The two ranges are queried in parallel.
func (uc *DashboardUseCase) DailyRevenue(ctx context.Context) (*dto.DailyRevenueResponse, error) {
	var cached dto.DailyRevenueResponse
	if uc.cacheGet(ctx, KeyDailyRevenue, &cached) {
		return &cached, nil
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var (
		wg               sync.WaitGroup
		today, yesterday repository.SalesMetrics
		errToday, errYst error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		today, errToday = uc.repo.GetSalesMetrics(ctx, todayStart, now)
	}()
	go func() {
		defer wg.Done()
		yesterday, errYst = uc.repo.GetSalesMetrics(ctx, yesterdayStart, todayStart)
	}()
	wg.Wait()

	if errToday != nil {
		return nil, errToday
	}
	if errYst != nil {
		return nil, errYst
	}

	out := &dto.DailyRevenueResponse{
		Today:     dto.DayRevenue{TotalRevenue: today.TotalRevenue, TotalSales: today.TotalSales},
		Yesterday: dto.DayRevenue{TotalRevenue: yesterday.TotalRevenue, TotalSales: yesterday.TotalSales},
	}
	uc.cacheSet(ctx, KeyDailyRevenue, out)
	return out, nil
}

// MonthlyRevenueSales returns the per-month revenue/sales series for the
// current year. Months without sales are omitted, matching the chart's
// sparse input format.
func (uc *DashboardUseCase) MonthlyRevenueSales(ctx context.Context) ([]dto.MonthlyRevenueSalesItem, error) {
	var cached []dto.MonthlyRevenueSalesItem
	if uc.cacheGet(ctx, KeyMonthly, &cached) {
		return cached, nil
	}

	rows, err := uc.repo.GetMonthlyRevenueSales(ctx, time.Now().Year())
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyRevenueSalesItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyRevenueSalesItem{
			Month:        r.Month,
			TotalRevenue: r.TotalRevenue,
			TotalSales:   r.TotalSales,
		})
	}
	uc.cacheSet(ctx, KeyMonthly, out)
	return out, nil
}

// Invalidate drops all cached aggregates. Called after every sale mutation.
func (uc *DashboardUseCase) Invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, KeyStats, KeyDailyRevenue, KeyMonthly); err != nil {
		uc.log.Warn().Err(err).Msg("analytics cache invalidation failed")
	}
}

// cacheGet reports whether key was found and decoded into v. Cache errors
// degrade to a miss.
func (uc *DashboardUseCase) cacheGet(ctx context.Context, key string, v any) bool {
	if uc.cache == nil {
		return false
	}
	hit, err := uc.cache.GetJSON(ctx, key, v)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("analytics cache read failed")
		return false
	}
	return hit
}

func (uc *DashboardUseCase) cacheSet(ctx context.Context, key string, v any) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetJSON(ctx, key, v, TTL); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("analytics cache write failed")
	}
}
