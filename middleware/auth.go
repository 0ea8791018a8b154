package middleware

import (
	"errors"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MerchantKey is the gin context key the authenticated merchant is stored
// under.
const MerchantKey = "merchant"

// AuthMiddleware authenticates a merchant from the X-Api-Key / X-Api-Secret
// header pair and stores it in the request context. Public capability routes
// skip this middleware entirely.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(utils.HeaderAPIKey)
		apiSecret := c.GetHeader(utils.HeaderAPISecret)

		if apiKey == "" || apiSecret == "" {
			utils.LogError("Missing API credentials for %s %s", c.Request.Method, c.Request.URL.Path)
			utils.Unauthorized(c)
			c.Abort()
			return
		}

		var merchant models.Merchant
		err := config.DB.Where("api_key = ? AND api_secret = ?", apiKey, apiSecret).First(&merchant).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.LogError("Invalid API credentials for key %s", apiKey)
				utils.Unauthorized(c)
			} else {
				utils.LogError("Merchant lookup failed: %v", err)
				utils.InternalServerError(c, "Authentication failed")
			}
			c.Abort()
			return
		}

		c.Set(MerchantKey, merchant)
		c.Next()
	}
}

// MerchantFromContext returns the authenticated merchant, or nil on public
// routes.
func MerchantFromContext(c *gin.Context) *models.Merchant {
	val, exists := c.Get(MerchantKey)
	if !exists {
		return nil
	}
	merchant, ok := val.(models.Merchant)
	if !ok {
		return nil
	}
	return &merchant
}
