// File: handlers/payments.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careport/models"
)

// PaymentsDashboardHandler proxies the payments dashboard payload.
func (hb *HandlerBundle) PaymentsDashboardHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	payload, err := hb.Payments.Dashboard(c.Request.Context(), sess.Token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// PatientInvoicesHandler lists one patient's invoices.
func (hb *HandlerBundle) PatientInvoicesHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	patientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	invoices, err := hb.Payments.Invoices(c.Request.Context(), sess.Token, patientID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// ProcessPaymentHandler validates and submits a payment.
func (hb *HandlerBundle) ProcessPaymentHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var form models.ProcessPaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := hb.Payments.Process(c.Request.Context(), sess.Token, form)
	if err != nil {
		getLogger().Warn("payment failed", zap.Int64("patientId", form.PatientID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PaymentReceiptHandler fetches the receipt for a processed payment.
func (hb *HandlerBundle) PaymentReceiptHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	receipt, err := hb.Payments.Receipt(c.Request.Context(), sess.Token, paymentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}
