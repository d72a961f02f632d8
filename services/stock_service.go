package services

import (
	"context"
	"errors"
	"log"
	"time"

	"stockwatch/apperrors"
	"stockwatch/models"
	"stockwatch/services/analysis"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockStore is the storage surface the stock service reads from
type StockStore interface {
	FindStock(ctx context.Context, symbol string) (*models.Stock, error)
	RecentPrices(ctx context.Context, stockID uint, limit int) ([]models.StockPrice, error)
}

// JobStarter arms a recurring price check job for a stock
type JobStarter interface {
	StartJob(stock *models.Stock) error
}

// StockSnapshot is the read-path response for a symbol
type StockSnapshot struct {
	Symbol        string          `json:"symbol"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	LastUpdated   time.Time       `json:"lastUpdated"`
	MovingAverage decimal.Decimal `json:"movingAverage"`
}

// StockService implements the caller-facing stock operations
type StockService struct {
	store   StockStore
	checker JobStarter
	window  int
}

// NewStockService creates a stock service computing moving averages over the
// given window size
func NewStockService(store StockStore, checker JobStarter, window int) *StockService {
	return &StockService{
		store:   store,
		checker: checker,
		window:  window,
	}
}

// GetSnapshot returns the current price, last update time and moving average
// for a symbol. Reading twice with no intervening writes yields identical
// results. The snapshot carries the stored canonical symbol, not the caller's
// casing.
func (s *StockService) GetSnapshot(ctx context.Context, symbol string) (*StockSnapshot, error) {
	stock, err := s.findStock(ctx, symbol)
	if err != nil {
		return nil, err
	}

	prices, err := s.store.RecentPrices(ctx, stock.ID, s.window)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if len(prices) < s.window {
		log.Printf("Not enough price data for %s: found %d, need %d", stock.Symbol, len(prices), s.window)
		return nil, apperrors.NewInsufficientData(stock.Symbol, len(prices), s.window)
	}

	return &StockSnapshot{
		Symbol:        stock.Symbol,
		CurrentPrice:  prices[0].Price,
		LastUpdated:   prices[0].RecordedAt,
		MovingAverage: analysis.SimpleMovingAverage(prices),
	}, nil
}

// StartPriceCheck starts the recurring price check job for a symbol. Returns
// once the job is armed; it does not wait for the first tick.
func (s *StockService) StartPriceCheck(ctx context.Context, symbol string) error {
	stock, err := s.findStock(ctx, symbol)
	if err != nil {
		return err
	}

	return s.checker.StartJob(stock)
}

func (s *StockService) findStock(ctx context.Context, symbol string) (*models.Stock, error) {
	stock, err := s.store.FindStock(ctx, symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Stock not found: %s", symbol)
			return nil, apperrors.NewNotFound(symbol)
		}
		return nil, apperrors.NewInternal(err)
	}
	return stock, nil
}
