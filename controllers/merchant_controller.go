package controllers

import (
	"errors"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Fixed credentials of the seeded test merchant. The dashboard and checkout
// page fetch these through /api/v1/test/merchant during local development.
const (
	testMerchantID    = "550e8400-e29b-41d4-a716-446655440000"
	testMerchantEmail = "test@example.com"
)

// SeedTestMerchant creates the well-known test merchant if it does not exist
// yet. Merchants are otherwise immutable through the API.
func SeedTestMerchant() error {
	utils.LogInfo("SeedTestMerchant called")

	merchant := models.Merchant{
		ID:        testMerchantID,
		Name:      "Test Merchant",
		Email:     testMerchantEmail,
		APIKey:    "key_test_abc123",
		APISecret: "secret_test_xyz789",
		IsActive:  true,
	}

	err := config.DB.FirstOrCreate(&merchant, models.Merchant{Email: merchant.Email}).Error
	if err != nil {
		utils.LogError("Failed to seed test merchant: %v", err)
		return err
	}

	utils.LogInfo("Test merchant ready: %s", merchant.Email)
	return nil
}

// GetTestMerchant handles GET /api/v1/test/merchant, exposing the seeded
// credentials for local consumers.
func GetTestMerchant(c *gin.Context) {
	var merchant models.Merchant
	err := config.DB.Where("email = ?", testMerchantEmail).First(&merchant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Test merchant not found")
		} else {
			utils.LogError("Test merchant lookup failed: %v", err)
			utils.InternalServerError(c, "Failed to fetch test merchant")
		}
		return
	}

	utils.OK(c, gin.H{
		"id":         merchant.ID,
		"email":      merchant.Email,
		"api_key":    merchant.APIKey,
		"api_secret": merchant.APISecret,
		"seeded":     true,
	})
}
