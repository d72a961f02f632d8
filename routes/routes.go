package routes

import (
	"time"

	"stockwatch/controllers"
	"stockwatch/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, stockController *controllers.StockController) {
	startLimiter := middleware.NewRateLimiter(10, time.Minute)

	stock := router.Group("/stock")
	{
		stock.GET("/:symbol", stockController.GetStock)
		stock.PUT("/:symbol", startLimiter.Limit(), stockController.StartPriceCheck)
	}
}
