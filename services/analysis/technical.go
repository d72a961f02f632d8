package analysis

import (
	"stockwatch/models"

	"github.com/shopspring/decimal"
)

// SimpleMovingAverage calculates the unweighted mean of the given price
// points. The caller is responsible for selecting the window; all points
// passed in are averaged. Returns zero for an empty slice.
func SimpleMovingAverage(prices []models.StockPrice) decimal.Decimal {
	if len(prices) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, price := range prices {
		sum = sum.Add(price.Price)
	}

	return sum.Div(decimal.NewFromInt(int64(len(prices))))
}
