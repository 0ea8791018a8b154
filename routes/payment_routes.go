package routes

import (
	"github.com/Govind-619/PaySphere/controllers"
	"github.com/Govind-619/PaySphere/middleware"
	"github.com/gin-gonic/gin"
)

// initPaymentRoutes wires the merchant-authenticated payment routes and the
// public checkout-flow counterparts.
func initPaymentRoutes(api *gin.RouterGroup) {
	payments := api.Group("/payments")
	{
		payments.POST("", middleware.AuthMiddleware(), controllers.CreatePayment)
		payments.GET("", middleware.AuthMiddleware(), controllers.ListPayments)
		payments.GET("/:id", middleware.AuthMiddleware(), controllers.GetPayment)

		payments.POST("/public", controllers.CreatePaymentPublic)
		payments.GET("/:id/public", controllers.GetPaymentPublic)
	}
}
