package routes

import (
	"github.com/Govind-619/PaySphere/controllers"
	"github.com/Govind-619/PaySphere/middleware"
	"github.com/gin-gonic/gin"
)

// initOrderRoutes wires the merchant-authenticated order routes and their
// public capability counterpart.
func initOrderRoutes(api *gin.RouterGroup) {
	orders := api.Group("/orders")
	{
		orders.POST("", middleware.AuthMiddleware(), controllers.CreateOrder)
		orders.GET("/:id", middleware.AuthMiddleware(), controllers.GetOrder)

		// The opaque order id is the capability; no credentials required.
		orders.GET("/:id/public", controllers.GetOrderPublic)
	}
}
