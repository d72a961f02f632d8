package services

import (
	"context"
	"time"

	"stockwatch/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceStore provides durable storage for stocks and their recorded prices
type PriceStore struct {
	db *gorm.DB
}

// NewPriceStore creates a new price store backed by the given database
func NewPriceStore(db *gorm.DB) *PriceStore {
	return &PriceStore{db: db}
}

// FindStock looks up a stock by symbol, case-insensitively. Returns
// gorm.ErrRecordNotFound when no stock matches.
func (ps *PriceStore) FindStock(ctx context.Context, symbol string) (*models.Stock, error) {
	var stock models.Stock
	err := ps.db.WithContext(ctx).
		Where("LOWER(symbol) = LOWER(?)", symbol).
		First(&stock).Error
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// AppendPrice records a new price point for a stock
func (ps *PriceStore) AppendPrice(ctx context.Context, stock *models.Stock, price decimal.Decimal, recordedAt time.Time) (*models.StockPrice, error) {
	stockPrice := models.StockPrice{
		StockID:    stock.ID,
		Price:      price,
		RecordedAt: recordedAt,
	}
	if err := ps.db.WithContext(ctx).Create(&stockPrice).Error; err != nil {
		return nil, err
	}
	return &stockPrice, nil
}

// RecentPrices returns up to limit price points for a stock, most recent
// first. The result may be shorter than limit.
func (ps *PriceStore) RecentPrices(ctx context.Context, stockID uint, limit int) ([]models.StockPrice, error) {
	var prices []models.StockPrice
	err := ps.db.WithContext(ctx).
		Scopes(recentPricesQuery(stockID, limit)).
		Find(&prices).Error
	if err != nil {
		return nil, err
	}
	return prices, nil
}

// recentPricesQuery selects a stock's newest price points. The id tiebreaker
// keeps the selection deterministic when two rows share a recorded_at.
func recentPricesQuery(stockID uint, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("stock_id = ?", stockID).
			Order("recorded_at DESC, id DESC").
			Limit(limit)
	}
}
