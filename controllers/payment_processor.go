package controllers

import (
	"math/rand"
	"time"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/metrics"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/utils"
)

// settlementPlan decides how long a settlement takes and whether it succeeds.
// In test mode both come straight from configuration so flows are
// reproducible; otherwise the delay is uniform within the configured window
// and the outcome is a weighted draw against the per-method success rate.
func settlementPlan(cfg config.SimulationConfig, method string) (time.Duration, bool) {
	if cfg.TestMode {
		return cfg.TestDelay, cfg.TestSuccess
	}

	rate := cfg.CardSuccessRate
	if method == models.PaymentMethodUPI {
		rate = cfg.UPISuccessRate
	}

	delay := cfg.DelayMin
	if cfg.DelayMax > cfg.DelayMin {
		delay += time.Duration(rand.Int63n(int64(cfg.DelayMax-cfg.DelayMin) + 1))
	}

	return delay, rand.Float64() < rate
}

// processPayment runs the simulated settlement for a payment already
// persisted in the "processing" state. It blocks for the full simulated
// delay and persists the terminal state before returning. Once settlement
// starts the payment always ends terminal: if the intended update cannot be
// written, a failed record is written best-effort so no row is left stuck in
// "processing".
func processPayment(payment *models.Payment, cfg config.SimulationConfig) error {
	start := time.Now()
	delay, success := settlementPlan(cfg, payment.Method)
	time.Sleep(delay)

	if success {
		payment.Status = models.PaymentStatusSuccess
	} else {
		payment.Status = models.PaymentStatusFailed
		payment.ErrorCode = utils.PaymentFailedCode
		payment.ErrorDescription = utils.PaymentFailedDescription
	}

	err := config.DB.Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(map[string]interface{}{
		"status":            payment.Status,
		"error_code":        payment.ErrorCode,
		"error_description": payment.ErrorDescription,
	}).Error
	if err != nil {
		utils.LogError("Failed to persist settlement for payment %s: %v", payment.ID, err)
		payment.Status = models.PaymentStatusFailed
		payment.ErrorCode = utils.ErrCodeInternal
		payment.ErrorDescription = "Settlement could not be recorded"
		if err2 := config.DB.Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(map[string]interface{}{
			"status":            payment.Status,
			"error_code":        payment.ErrorCode,
			"error_description": payment.ErrorDescription,
		}).Error; err2 != nil {
			utils.LogError("Failed to mark payment %s as failed: %v", payment.ID, err2)
			return err
		}
	}

	utils.LogInfo("Payment %s settled as %s after %v", payment.ID, payment.Status, time.Since(start))
	metrics.RecordPaymentProcessed(payment.Method, payment.Status, payment.Currency, payment.Amount, time.Since(start).Seconds())
	return nil
}
