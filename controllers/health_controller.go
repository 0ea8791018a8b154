package controllers

import (
	"time"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health with a live database ping.
func HealthCheck(c *gin.Context) {
	dbStatus := "disconnected"
	if config.DB != nil {
		if sqlDB, err := config.DB.DB(); err == nil {
			if err := sqlDB.Ping(); err == nil {
				dbStatus = "connected"
			}
		}
	}

	utils.OK(c, gin.H{
		"status":    "healthy",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
