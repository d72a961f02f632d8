package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"unicode/utf8"

	"stockwatch/apperrors"
	"stockwatch/services"

	"github.com/gin-gonic/gin"
)

const (
	minSymbolLength = 1
	maxSymbolLength = 5
)

// StockAPI is the service surface the stock controller exposes over HTTP
type StockAPI interface {
	GetSnapshot(ctx context.Context, symbol string) (*services.StockSnapshot, error)
	StartPriceCheck(ctx context.Context, symbol string) error
}

// StockController handles stock-related requests
type StockController struct {
	stocks StockAPI
}

// NewStockController creates a new stock controller
func NewStockController(stocks StockAPI) *StockController {
	return &StockController{stocks: stocks}
}

// GetStock returns the snapshot for a stock symbol
// GET /stock/:symbol
func (sc *StockController) GetStock(c *gin.Context) {
	symbol, ok := sc.symbolParam(c)
	if !ok {
		return
	}
	log.Printf("Fetching stock data for symbol: %s", symbol)

	snapshot, err := sc.stocks.GetSnapshot(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("Successfully fetched stock data for symbol: %s", symbol)
	c.JSON(http.StatusOK, snapshot)
}

// StartPriceCheck starts the recurring price check for a stock symbol
// PUT /stock/:symbol
func (sc *StockController) StartPriceCheck(c *gin.Context) {
	symbol, ok := sc.symbolParam(c)
	if !ok {
		return
	}
	log.Printf("Starting periodic price check for symbol: %s", symbol)

	if err := sc.stocks.StartPriceCheck(c.Request.Context(), symbol); err != nil {
		respondError(c, err)
		return
	}

	log.Printf("Started periodic price check for symbol: %s", symbol)
	c.JSON(http.StatusOK, gin.H{"started": true})
}

// symbolParam extracts and validates the symbol path parameter. On a
// validation failure it writes the error response and returns ok=false.
func (sc *StockController) symbolParam(c *gin.Context) (string, bool) {
	symbol := c.Param("symbol")
	// Length limits count characters, not bytes; symbols are not always ASCII.
	if n := utf8.RuneCountInString(symbol); n < minSymbolLength || n > maxSymbolLength {
		respondError(c, apperrors.NewUnprocessableEntity("Unprocessable entity"))
		return "", false
	}
	return symbol, true
}

// respondError maps an application error to its HTTP response. Anything that
// is not a known application error becomes a generic internal failure; the
// cause is logged but never sent to the client.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternal(err)
	}

	if appErr.Err != nil {
		log.Printf("Unexpected error for [%s] %s - %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	body := gin.H{
		"message":   appErr.Message,
		"errorCode": appErr.Code,
	}
	if appErr.Code == apperrors.CodeInsufficientData {
		body["found"] = appErr.Found
		body["required"] = appErr.Required
	}

	c.JSON(appErr.Status, body)
}
