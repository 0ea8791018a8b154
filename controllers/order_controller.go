package controllers

import (
	"errors"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/metrics"
	"github.com/Govind-619/PaySphere/middleware"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

func orderIDExists(id string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateOrder handles POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	merchant := middleware.MerchantFromContext(c)
	if merchant == nil {
		utils.Unauthorized(c)
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order payload from merchant %s: %v", merchant.ID, err)
		utils.BadRequest(c, "amount must be at least 100")
		return
	}
	if req.Amount < models.MinOrderAmount {
		utils.BadRequest(c, "amount must be at least 100")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = utils.DefaultCurrency
	}

	orderID, err := utils.GenerateID(utils.OrderIDPrefix, orderIDExists)
	if err != nil {
		utils.LogError("Order id generation failed: %v", err)
		utils.InternalServerError(c, "Failed to create order")
		return
	}

	order := models.Order{
		ID:         orderID,
		MerchantID: merchant.ID,
		Amount:     req.Amount,
		Currency:   currency,
		Receipt:    req.Receipt,
		Notes:      req.Notes,
		Status:     models.OrderStatusCreated,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c, "Failed to create order")
		return
	}

	utils.LogInfo("Order %s created for merchant %s, amount %d %s", order.ID, merchant.ID, order.Amount, order.Currency)
	metrics.RecordOrderCreated(order.Currency, order.Amount)

	utils.Created(c, gin.H{
		"id":          order.ID,
		"merchant_id": order.MerchantID,
		"amount":      order.Amount,
		"currency":    order.Currency,
		"receipt":     order.Receipt,
		"notes":       order.Notes,
		"status":      order.Status,
		"created_at":  order.CreatedAt,
	})
}

// GetOrder handles GET /api/v1/orders/:id. The lookup is scoped to the
// authenticated merchant; foreign orders are indistinguishable from absent
// ones.
func GetOrder(c *gin.Context) {
	merchant := middleware.MerchantFromContext(c)
	if merchant == nil {
		utils.Unauthorized(c)
		return
	}

	var order models.Order
	err := config.DB.Where("id = ? AND merchant_id = ?", c.Param("id"), merchant.ID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Order not found")
		} else {
			utils.LogError("Order lookup failed: %v", err)
			utils.InternalServerError(c, "Failed to fetch order")
		}
		return
	}

	utils.OK(c, order)
}
