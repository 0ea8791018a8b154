package controllers

import (
	"errors"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrderPublic handles GET /api/v1/orders/:id/public. Knowledge of the
// opaque order id is the capability: there is no ownership check and the
// projection is reduced to what the checkout page needs.
func GetOrderPublic(c *gin.Context) {
	var order models.Order
	err := config.DB.Where("id = ?", c.Param("id")).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Order not found")
		} else {
			utils.LogError("Order lookup failed: %v", err)
			utils.InternalServerError(c, "Failed to fetch order")
		}
		return
	}

	utils.OK(c, gin.H{
		"id":       order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"status":   order.Status,
	})
}
