package main

import (
	"log"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/controllers"
	"github.com/Govind-619/PaySphere/routes"
	"github.com/Govind-619/PaySphere/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the well-known test merchant
	if err := controllers.SeedTestMerchant(); err != nil {
		utils.LogError("Failed to seed test merchant: %v", err)
		log.Fatal("Failed to seed test merchant:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
