package routes

import (
	orderControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/order"
	"github.com/Muthurasu-6319/nrk-aura-shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Place a new order (online after verification, or COD)
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch all orders (admin dashboard)
		orders.GET("", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws/feed", orderControllers.OrderWebSocketHandler)

		// Excel export (admin)
		orders.GET("/export-excel", middleware.ValidateAPIKey, orderControllers.ExportOrdersToExcel(db))

		// Update order status (unconditional overwrite + customer email)
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// Delete an order (line items first)
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
