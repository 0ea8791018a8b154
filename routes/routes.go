package routes

import (
	"github.com/Govind-619/PaySphere/controllers"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	// Middleware must be attached before routes are registered
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", controllers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version group
	api := router.Group("/api/v1")
	{
		initOrderRoutes(api)
		initPaymentRoutes(api)

		// Local development helper for the dashboard and checkout page
		api.GET("/test/merchant", controllers.GetTestMerchant)
	}

	return router
}
