package controllers

import (
	"testing"
	"time"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/models"
	"github.com/stretchr/testify/assert"
)

func TestSettlementPlanTestMode(t *testing.T) {
	cfg := config.SimulationConfig{
		TestMode:    true,
		TestDelay:   25 * time.Millisecond,
		TestSuccess: true,
		// Rates must be ignored entirely in test mode
		UPISuccessRate:  0,
		CardSuccessRate: 0,
	}

	for i := 0; i < 20; i++ {
		delay, success := settlementPlan(cfg, models.PaymentMethodUPI)
		assert.Equal(t, 25*time.Millisecond, delay)
		assert.True(t, success)
	}

	cfg.TestSuccess = false
	_, success := settlementPlan(cfg, models.PaymentMethodCard)
	assert.False(t, success)
}

func TestSettlementPlanDelayWindow(t *testing.T) {
	cfg := config.SimulationConfig{
		UPISuccessRate:  0.9,
		CardSuccessRate: 0.95,
		DelayMin:        5 * time.Millisecond,
		DelayMax:        10 * time.Millisecond,
	}

	for i := 0; i < 200; i++ {
		delay, _ := settlementPlan(cfg, models.PaymentMethodUPI)
		assert.GreaterOrEqual(t, delay, cfg.DelayMin)
		assert.LessOrEqual(t, delay, cfg.DelayMax)
	}
}

func TestSettlementPlanRateSelection(t *testing.T) {
	// Rate 1 always succeeds, rate 0 always fails; the method picks which
	// rate applies.
	cfg := config.SimulationConfig{
		UPISuccessRate:  1,
		CardSuccessRate: 0,
		DelayMin:        time.Millisecond,
		DelayMax:        time.Millisecond,
	}

	for i := 0; i < 50; i++ {
		_, upiSuccess := settlementPlan(cfg, models.PaymentMethodUPI)
		assert.True(t, upiSuccess)

		_, cardSuccess := settlementPlan(cfg, models.PaymentMethodCard)
		assert.False(t, cardSuccess)
	}
}

func TestApplyMethodDetails(t *testing.T) {
	newReq := func(method string) *createPaymentRequest {
		return &createPaymentRequest{OrderID: "order_x", Method: method}
	}

	t.Run("upi valid", func(t *testing.T) {
		req := newReq(models.PaymentMethodUPI)
		req.VPA = "user.name-1@bank"
		payment := &models.Payment{}
		assert.Nil(t, applyMethodDetails(payment, req))
		assert.Equal(t, "user.name-1@bank", payment.VPA)
	})

	t.Run("upi invalid", func(t *testing.T) {
		req := newReq(models.PaymentMethodUPI)
		req.VPA = "user@@bank"
		appErr := applyMethodDetails(&models.Payment{}, req)
		assert.NotNil(t, appErr)
		assert.Equal(t, "INVALID_VPA", appErr.Code)
	})

	t.Run("upi missing", func(t *testing.T) {
		appErr := applyMethodDetails(&models.Payment{}, newReq(models.PaymentMethodUPI))
		assert.NotNil(t, appErr)
		assert.Equal(t, "INVALID_VPA", appErr.Code)
	})

	t.Run("card valid", func(t *testing.T) {
		req := newReq(models.PaymentMethodCard)
		req.Card = &cardRequest{
			Number:      "4111 1111 1111 1111",
			HolderName:  "Test User",
			CVV:         "123",
			ExpiryMonth: 12,
			ExpiryYear:  2099,
		}
		payment := &models.Payment{}
		assert.Nil(t, applyMethodDetails(payment, req))
		assert.Equal(t, models.CardNetworkVisa, payment.CardNetwork)
		assert.Equal(t, "1111", payment.CardLast4)
	})

	t.Run("card missing object", func(t *testing.T) {
		appErr := applyMethodDetails(&models.Payment{}, newReq(models.PaymentMethodCard))
		assert.NotNil(t, appErr)
		assert.Equal(t, "BAD_REQUEST_ERROR", appErr.Code)
	})

	t.Run("card incomplete", func(t *testing.T) {
		req := newReq(models.PaymentMethodCard)
		req.Card = &cardRequest{Number: "4111111111111111", ExpiryMonth: 12, ExpiryYear: 2099}
		appErr := applyMethodDetails(&models.Payment{}, req)
		assert.NotNil(t, appErr)
		assert.Equal(t, "BAD_REQUEST_ERROR", appErr.Code)
	})

	t.Run("card fails luhn", func(t *testing.T) {
		req := newReq(models.PaymentMethodCard)
		req.Card = &cardRequest{
			Number:      "4111111111111112",
			HolderName:  "Test User",
			CVV:         "123",
			ExpiryMonth: 12,
			ExpiryYear:  2099,
		}
		appErr := applyMethodDetails(&models.Payment{}, req)
		assert.NotNil(t, appErr)
		assert.Equal(t, "INVALID_CARD", appErr.Code)
	})

	t.Run("card expired", func(t *testing.T) {
		req := newReq(models.PaymentMethodCard)
		req.Card = &cardRequest{
			Number:      "4111111111111111",
			HolderName:  "Test User",
			CVV:         "123",
			ExpiryMonth: 1,
			ExpiryYear:  2020,
		}
		appErr := applyMethodDetails(&models.Payment{}, req)
		assert.NotNil(t, appErr)
		assert.Equal(t, "EXPIRED_CARD", appErr.Code)
	})

	t.Run("unsupported method", func(t *testing.T) {
		appErr := applyMethodDetails(&models.Payment{}, newReq("netbanking"))
		assert.NotNil(t, appErr)
		assert.Equal(t, "BAD_REQUEST_ERROR", appErr.Code)
	})

	t.Run("never stores raw card data", func(t *testing.T) {
		req := newReq(models.PaymentMethodCard)
		req.Card = &cardRequest{
			Number:      "5500000000000004",
			HolderName:  "Test User",
			CVV:         "999",
			ExpiryMonth: 11,
			ExpiryYear:  2099,
		}
		payment := &models.Payment{}
		assert.Nil(t, applyMethodDetails(payment, req))
		assert.Equal(t, models.CardNetworkMastercard, payment.CardNetwork)
		assert.Equal(t, "0004", payment.CardLast4)
		assert.Empty(t, payment.VPA)
	})
}
