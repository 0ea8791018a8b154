package controllers

import (
	"errors"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePaymentPublic handles POST /api/v1/payments/public, the checkout-page
// path. Same processing as the authenticated route, with no merchant bound.
func CreatePaymentPublic(c *gin.Context) {
	handleCreatePayment(c, nil)
}

// GetPaymentPublic handles GET /api/v1/payments/:id/public. Used by checkout
// clients polling for a terminal status instead of holding the blocking
// create call open; the projection is minimal.
func GetPaymentPublic(c *gin.Context) {
	var payment models.Payment
	err := config.DB.Where("id = ?", c.Param("id")).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Payment not found")
		} else {
			utils.LogError("Payment lookup failed: %v", err)
			utils.InternalServerError(c, "Failed to fetch payment")
		}
		return
	}

	response := gin.H{
		"id":       payment.ID,
		"status":   payment.Status,
		"method":   payment.Method,
		"amount":   payment.Amount,
		"currency": payment.Currency,
	}
	if payment.Status == models.PaymentStatusFailed {
		response["error_description"] = payment.ErrorDescription
	}

	utils.OK(c, response)
}
