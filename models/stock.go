package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stock represents a tracked stock instrument
type Stock struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Symbol        string    `gorm:"uniqueIndex;not null" json:"symbol"`
	DisplaySymbol string    `json:"display_symbol"`
	Description   string    `json:"description"`
	FIGI          string    `json:"figi"`
	MIC           string    `json:"mic"` // exchange identifier, e.g. XNAS
	Currency      string    `json:"currency"`
	Type          string    `json:"type"` // COMMON_STOCK, ETF, ...
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockPrice represents a single recorded price point for a stock.
// Rows are created only by the price check scheduler and are append-only.
type StockPrice struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	StockID    uint            `gorm:"index:idx_stock_recorded" json:"stock_id"`
	Stock      Stock           `gorm:"foreignKey:StockID" json:"stock,omitempty"`
	Price      decimal.Decimal `gorm:"type:decimal(15,4)" json:"price"`
	RecordedAt time.Time       `gorm:"index:idx_stock_recorded" json:"recorded_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MigrateStockModels runs database migrations for stock-related models
func MigrateStockModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&Stock{},
		&StockPrice{},
	)
}

// SeedDefaultStocks creates the default tracked stocks if they don't exist
func SeedDefaultStocks(db *gorm.DB) error {
	stocks := []Stock{
		{
			Symbol:        "AAPL",
			DisplaySymbol: "AAPL",
			Description:   "APPLE INC",
			FIGI:          "BBG000B9XRY4",
			MIC:           "XNAS",
			Currency:      "USD",
			Type:          "COMMON_STOCK",
		},
		{
			Symbol:        "AMZN",
			DisplaySymbol: "AMZN",
			Description:   "AMAZON.COM INC",
			FIGI:          "BBG000BVPV84",
			MIC:           "XNAS",
			Currency:      "USD",
			Type:          "COMMON_STOCK",
		},
	}

	for _, stock := range stocks {
		if err := db.Where("symbol = ?", stock.Symbol).FirstOrCreate(&stock).Error; err != nil {
			return err
		}
	}

	return nil
}
