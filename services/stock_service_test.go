package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stockwatch/apperrors"
	"stockwatch/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	stocks   []models.Stock
	prices   map[uint][]models.StockPrice // already ordered most recent first
	storeErr error
}

func (f *fakeStore) FindStock(_ context.Context, symbol string) (*models.Stock, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	for i := range f.stocks {
		if strings.EqualFold(f.stocks[i].Symbol, symbol) {
			return &f.stocks[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) RecentPrices(_ context.Context, stockID uint, limit int) ([]models.StockPrice, error) {
	prices := f.prices[stockID]
	if len(prices) > limit {
		prices = prices[:limit]
	}
	return prices, nil
}

type fakeChecker struct {
	started []string
	err     error
}

func (f *fakeChecker) StartJob(stock *models.Stock) error {
	if f.err != nil {
		return f.err
	}
	f.started = append(f.started, stock.Symbol)
	return nil
}

func aaplStore(pricePoints ...models.StockPrice) *fakeStore {
	return &fakeStore{
		stocks: []models.Stock{{ID: 1, Symbol: "AAPL"}},
		prices: map[uint][]models.StockPrice{1: pricePoints},
	}
}

func TestGetSnapshot_ComputesWindowAggregates(t *testing.T) {
	t.Parallel()

	t3 := time.Date(2023, 10, 23, 15, 53, 0, 0, time.UTC)
	t2 := t3.Add(-time.Minute)
	t1 := t2.Add(-time.Minute)
	store := aaplStore(
		models.StockPrice{StockID: 1, Price: decimal.NewFromInt(100), RecordedAt: t3},
		models.StockPrice{StockID: 1, Price: decimal.NewFromInt(102), RecordedAt: t2},
		models.StockPrice{StockID: 1, Price: decimal.NewFromInt(98), RecordedAt: t1},
	)
	svc := NewStockService(store, &fakeChecker{}, 3)

	snapshot, err := svc.GetSnapshot(t.Context(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", snapshot.Symbol)
	assert.True(t, snapshot.CurrentPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, snapshot.LastUpdated.Equal(t3))
	assert.True(t, snapshot.MovingAverage.Equal(decimal.NewFromInt(100)))
}

func TestGetSnapshot_AveragesOnlyTheWindow(t *testing.T) {
	t.Parallel()

	// Five stored points but a window of 2: only the two most recent count.
	now := time.Now()
	points := []models.StockPrice{
		{StockID: 1, Price: decimal.NewFromInt(10), RecordedAt: now},
		{StockID: 1, Price: decimal.NewFromInt(20), RecordedAt: now.Add(-time.Minute)},
		{StockID: 1, Price: decimal.NewFromInt(1000), RecordedAt: now.Add(-2 * time.Minute)},
		{StockID: 1, Price: decimal.NewFromInt(1000), RecordedAt: now.Add(-3 * time.Minute)},
		{StockID: 1, Price: decimal.NewFromInt(1000), RecordedAt: now.Add(-4 * time.Minute)},
	}
	svc := NewStockService(aaplStore(points...), &fakeChecker{}, 2)

	snapshot, err := svc.GetSnapshot(t.Context(), "AAPL")
	require.NoError(t, err)
	assert.True(t, snapshot.MovingAverage.Equal(decimal.NewFromInt(15)),
		"moving average must cover the 2 most recent prices only, got %s", snapshot.MovingAverage)
}

func TestGetSnapshot_InsufficientData(t *testing.T) {
	t.Parallel()

	now := time.Now()
	points := make([]models.StockPrice, 0, 4)
	for i := 0; i < 4; i++ {
		points = append(points, models.StockPrice{
			StockID:    1,
			Price:      decimal.NewFromInt(int64(100 + i)),
			RecordedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	store := &fakeStore{
		stocks: []models.Stock{{ID: 1, Symbol: "TSLA"}},
		prices: map[uint][]models.StockPrice{1: points},
	}
	svc := NewStockService(store, &fakeChecker{}, 10)

	_, err := svc.GetSnapshot(t.Context(), "TSLA")
	require.Error(t, err)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInsufficientData, appErr.Code)
	assert.Equal(t, 4, appErr.Found)
	assert.Equal(t, 10, appErr.Required)
	assert.Equal(t, "Not enough price data for TSLA. At least 10 prices are required.", appErr.Message)
}

func TestGetSnapshot_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewStockService(aaplStore(), &fakeChecker{}, 10)

	_, err := svc.GetSnapshot(t.Context(), "MSFT")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeStockNotFound, appErr.Code)
}

func TestGetSnapshot_StoreFailureMapsToInternal(t *testing.T) {
	t.Parallel()

	store := &fakeStore{storeErr: errors.New("connection reset")}
	svc := NewStockService(store, &fakeChecker{}, 10)

	_, err := svc.GetSnapshot(t.Context(), "AAPL")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInternal, appErr.Code)
	assert.Equal(t, "Something went wrong", appErr.Message)
}

func TestGetSnapshot_IdempotentReads(t *testing.T) {
	t.Parallel()

	now := time.Now()
	points := make([]models.StockPrice, 0, 3)
	for i := 0; i < 3; i++ {
		points = append(points, models.StockPrice{
			StockID:    1,
			Price:      decimal.NewFromFloat(213.22),
			RecordedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	svc := NewStockService(aaplStore(points...), &fakeChecker{}, 3)

	first, err := svc.GetSnapshot(t.Context(), "AAPL")
	require.NoError(t, err)
	second, err := svc.GetSnapshot(t.Context(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetSnapshot_ResponseUsesCanonicalSymbolCase(t *testing.T) {
	t.Parallel()

	now := time.Now()
	points := []models.StockPrice{
		{StockID: 1, Price: decimal.NewFromInt(1), RecordedAt: now},
	}
	svc := NewStockService(aaplStore(points...), &fakeChecker{}, 1)

	snapshot, err := svc.GetSnapshot(t.Context(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", snapshot.Symbol)
}

func TestStartPriceCheck_ArmsJobForKnownSymbol(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{}
	svc := NewStockService(aaplStore(), checker, 10)

	require.NoError(t, svc.StartPriceCheck(t.Context(), "aapl"))
	assert.Equal(t, []string{"AAPL"}, checker.started)
}

func TestStartPriceCheck_UnknownSymbolRegistersNothing(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{}
	svc := NewStockService(aaplStore(), checker, 10)

	err := svc.StartPriceCheck(t.Context(), "MSFT")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeStockNotFound, appErr.Code)
	assert.Empty(t, checker.started)
}

func TestStartPriceCheck_PropagatesJobAlreadyRunning(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{err: apperrors.NewJobAlreadyRunning("AAPL")}
	svc := NewStockService(aaplStore(), checker, 10)

	err := svc.StartPriceCheck(t.Context(), "AAPL")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeJobAlreadyRunning, appErr.Code)
}
