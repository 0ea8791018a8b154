package controllers

import (
	"errors"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/middleware"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type cardRequest struct {
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	CVV         string `json:"cvv"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
}

type createPaymentRequest struct {
	OrderID string       `json:"order_id" binding:"required"`
	Method  string       `json:"method" binding:"required"`
	VPA     string       `json:"vpa"`
	Card    *cardRequest `json:"card"`
}

func paymentIDExists(id string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Payment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// applyMethodDetails validates the method-specific fields of a payment
// request and copies the derived values onto the payment. The raw card
// number and CVV go no further than this function.
func applyMethodDetails(payment *models.Payment, req *createPaymentRequest) *utils.AppError {
	switch req.Method {
	case models.PaymentMethodUPI:
		if req.VPA == "" || !utils.ValidateVPA(req.VPA) {
			return utils.InvalidVPAError()
		}
		payment.VPA = req.VPA
	case models.PaymentMethodCard:
		card := req.Card
		if card == nil {
			return utils.BadRequestError("Card details missing")
		}
		if card.HolderName == "" || card.CVV == "" {
			return utils.BadRequestError("Incomplete card details")
		}
		if !utils.ValidateCardLuhn(card.Number) {
			return utils.InvalidCardError()
		}
		if !utils.ValidateCardExpiry(card.ExpiryMonth, card.ExpiryYear) {
			return utils.ExpiredCardError()
		}
		payment.CardNetwork = utils.DetectCardNetwork(card.Number)
		payment.CardLast4 = utils.CardLast4(card.Number)
	default:
		return utils.BadRequestError("Invalid payment method")
	}
	return nil
}

// handleCreatePayment is the single create-payment implementation shared by
// the authenticated and public routes. A nil merchant means the caller's
// authority is knowledge of the order id alone; a bound merchant additionally
// scopes the order lookup. All validation happens before the payment row is
// created, and the call blocks until the settlement reaches a terminal state.
func handleCreatePayment(c *gin.Context, merchant *models.Merchant) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "order_id and method are required")
		return
	}

	var order models.Order
	err := config.DB.Where("id = ?", req.OrderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Order not found")
		} else {
			utils.LogError("Order lookup failed for payment: %v", err)
			utils.InternalServerError(c, "Failed to create payment")
		}
		return
	}
	// Ownership mismatch reads the same as absence.
	if merchant != nil && order.MerchantID != merchant.ID {
		utils.NotFound(c, "Order not found")
		return
	}

	payment := models.Payment{
		OrderID:    order.ID,
		MerchantID: order.MerchantID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Method:     req.Method,
		Status:     models.PaymentStatusProcessing,
	}

	if appErr := applyMethodDetails(&payment, &req); appErr != nil {
		utils.RespondAppError(c, appErr)
		return
	}

	paymentID, err := utils.GenerateID(utils.PaymentIDPrefix, paymentIDExists)
	if err != nil {
		utils.LogError("Payment id generation failed: %v", err)
		utils.InternalServerError(c, "Failed to create payment")
		return
	}
	payment.ID = paymentID

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to create payment %s: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to create payment")
		return
	}
	utils.LogInfo("Payment %s created for order %s via %s, processing", payment.ID, order.ID, payment.Method)

	// Blocks for the full simulated delay; the response carries the final
	// outcome, not a processing snapshot.
	if err := processPayment(&payment, config.App.Simulation); err != nil {
		utils.InternalServerError(c, "Failed to process payment")
		return
	}

	response := gin.H{
		"id":         payment.ID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount,
		"currency":   payment.Currency,
		"method":     payment.Method,
		"status":     payment.Status,
		"created_at": payment.CreatedAt,
	}
	addMethodFields(response, &payment)
	if payment.Status == models.PaymentStatusFailed {
		response["error_code"] = payment.ErrorCode
		response["error_description"] = payment.ErrorDescription
	}

	utils.Created(c, response)
}

// addMethodFields attaches the method-specific fields of a payment to a
// response projection.
func addMethodFields(response gin.H, payment *models.Payment) {
	if payment.Method == models.PaymentMethodUPI {
		response["vpa"] = payment.VPA
	} else {
		response["card_network"] = payment.CardNetwork
		response["card_last4"] = payment.CardLast4
	}
}

// CreatePayment handles POST /api/v1/payments
func CreatePayment(c *gin.Context) {
	merchant := middleware.MerchantFromContext(c)
	if merchant == nil {
		utils.Unauthorized(c)
		return
	}
	handleCreatePayment(c, merchant)
}

// GetPayment handles GET /api/v1/payments/:id, scoped to the authenticated
// merchant.
func GetPayment(c *gin.Context) {
	merchant := middleware.MerchantFromContext(c)
	if merchant == nil {
		utils.Unauthorized(c)
		return
	}

	var payment models.Payment
	err := config.DB.Where("id = ? AND merchant_id = ?", c.Param("id"), merchant.ID).First(&payment).Error
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
		"id":         payment.ID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount,
		"currency":   payment.Currency,
		"method":     payment.Method,
		"status":     payment.Status,
		"created_at": payment.CreatedAt,
		"updated_at": payment.UpdatedAt,
	}
	addMethodFields(response, &payment)
	if payment.Status == models.PaymentStatusFailed {
		response["error_code"] = payment.ErrorCode
		response["error_description"] = payment.ErrorDescription
	}

	utils.OK(c, response)
}

// ListPayments handles GET /api/v1/payments, newest first, scoped to the
// authenticated merchant.
func ListPayments(c *gin.Context) {
	merchant := middleware.MerchantFromContext(c)
	if merchant == nil {
		utils.Unauthorized(c)
		return
	}

	var payments []models.Payment
	err := config.DB.Where("merchant_id = ?", merchant.ID).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		utils.LogError("Payment list failed for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments")
		return
	}

	response := make([]gin.H, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		item := gin.H{
			"id":         p.ID,
			"order_id":   p.OrderID,
			"amount":     p.Amount,
			"currency":   p.Currency,
			"method":     p.Method,
			"status":     p.Status,
			"created_at": p.CreatedAt,
		}
		addMethodFields(item, p)
		if p.Status == models.PaymentStatusFailed {
			item["error_description"] = p.ErrorDescription
		}
		response = append(response, item)
	}

	utils.OK(c, response)
}
