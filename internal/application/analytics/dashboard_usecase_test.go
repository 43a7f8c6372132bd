package analytics_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawharapos/pos-api/internal/application/analytics"
	"github.com/jawharapos/pos-api/internal/domain/repository"
	"github.com/jawharapos/pos-api/pkg/logger"
)

type fakeAnalyticsRepo struct {
	metrics     repository.SalesMetrics
	monthly     []repository.MonthlyMetrics
	metricCalls int
	ranges      [][2]time.Time
}

func (r *fakeAnalyticsRepo) GetSalesMetrics(_ context.Context, from, to time.Time) (repository.SalesMetrics, error) {
	r.metricCalls++
	r.ranges = append(r.ranges, [2]time.Time{from, to})
	return r.metrics, nil
}

func (r *fakeAnalyticsRepo) GetMonthlyRevenueSales(context.Context, int) ([]repository.MonthlyMetrics, error) {
	return r.monthly, nil
}

// memCache is an in-process analytics.Cache for tests.
type memCache struct {
	values  map[string][]byte
	deletes []string
}

func newMemCache() *memCache { return &memCache{values: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, v any) (bool, error) {
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (c *memCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
		c.deletes = append(c.deletes, k)
	}
	return nil
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func TestStats_ReadThroughCache(t *testing.T) {
	repo := &fakeAnalyticsRepo{metrics: repository.SalesMetrics{
		TotalSales:   7,
		TotalRevenue: money("350.00"),
		TotalProfit:  money("120.00"),
	}}
	cache := newMemCache()
	uc := analytics.NewDashboardUseCase(repo, cache, testLogger())

	first, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), first.TotalSales)
	assert.Equal(t, 1, repo.metricCalls)

	// Second read is served from the cache.
	second, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.metricCalls)
	assert.True(t, second.TotalRevenue.Equal(first.TotalRevenue))
}

func TestStats_NilCacheHitsRepositoryEveryTime(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo, nil, testLogger())

	_, err := uc.Stats(context.Background())
	require.NoError(t, err)
	_, err = uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.metricCalls)
}

// Day boundaries sit at local midnight: yesterday's range ends exactly
// where today's begins.
func TestDailyRevenue_RangesMeetAtMidnight(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo, nil, testLogger())

	_, err := uc.DailyRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, repo.ranges, 2)

	var today, yesterday [2]time.Time
	if repo.ranges[0][0].After(repo.ranges[1][0]) {
		today, yesterday = repo.ranges[0], repo.ranges[1]
	} else {
		today, yesterday = repo.ranges[1], repo.ranges[0]
	}
	assert.Equal(t, today[0], yesterday[1], "yesterday must end where today begins")
	assert.Equal(t, 24*time.Hour, today[0].Sub(yesterday[0]))
	assert.Equal(t, 0, today[0].Hour())
	assert.Equal(t, 0, today[0].Minute())
}

func TestInvalidate_DropsAllKeys(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	cache := newMemCache()
	uc := analytics.NewDashboardUseCase(repo, cache, testLogger())

	_, err := uc.Stats(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cache.values)

	uc.Invalidate(context.Background())
	assert.Empty(t, cache.values)
	assert.ElementsMatch(t,
		[]string{analytics.KeyStats, analytics.KeyDailyRevenue, analytics.KeyMonthly},
		cache.deletes,
	)

	// Next read repopulates from the repository.
	_, err = uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.metricCalls)
}

func TestMonthlyRevenueSales_SparseMonths(t *testing.T) {
	repo := &fakeAnalyticsRepo{monthly: []repository.MonthlyMetrics{
		{Month: 1, TotalRevenue: money("100.00"), TotalSales: 4},
		{Month: 3, TotalRevenue: money("250.00"), TotalSales: 9},
	}}
	uc := analytics.NewDashboardUseCase(repo, nil, testLogger())

	out, err := uc.MonthlyRevenueSales(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Month)
	assert.Equal(t, 3, out[1].Month)
	assert.Equal(t, int64(9), out[1].TotalSales)
}
