// File: handlers/handlers.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careport/apiclient"
	"careport/middleware"
	"careport/services/appointments"
	"careport/services/booking"
	"careport/services/payments"
	"careport/session"
)

// HandlerBundle carries the wired services the view handlers depend on.
type HandlerBundle struct {
	API          *apiclient.Client
	Sessions     session.Store
	Flow         booking.FlowService
	Appointments appointments.Service
	Payments     payments.Service
	SessionTTL   time.Duration
}

func NewHandlerBundle(
	api *apiclient.Client,
	sessions session.Store,
	flow booking.FlowService,
	appts appointments.Service,
	pays payments.Service,
	sessionTTL time.Duration,
) *HandlerBundle {
	return &HandlerBundle{
		API:          api,
		Sessions:     sessions,
		Flow:         flow,
		Appointments: appts,
		Payments:     pays,
		SessionTTL:   sessionTTL,
	}
}

// currentSession returns the login session placed in context by SessionAuth.
func currentSession(c *gin.Context) (*session.Session, bool) {
	val, exists := c.Get(middleware.ContextSession)
	if !exists {
		return nil, false
	}
	sess, ok := val.(*session.Session)
	return sess, ok
}

// respondServiceError maps service and backend failures onto one
// user-visible message per view. Nothing is swallowed; callers log first.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case booking.IsValidationError(err),
		appointments.IsValidationError(err),
		isPaymentValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": userMessage(err)})
	case booking.IsStateError(err):
		c.JSON(http.StatusConflict, gin.H{"error": userMessage(err)})
	case booking.IsNotFoundError(err), appointments.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": userMessage(err)})
	case apiclient.IsAuthError(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
	case apiclient.IsConflictError(err):
		c.JSON(http.StatusConflict, gin.H{"error": userMessage(err)})
	default:
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "The hospital service is unavailable. Please try again."})
	}
}

func isPaymentValidation(err error) bool {
	var pe *payments.PaymentError
	return errors.As(err, &pe) && pe.Code == "validationError"
}

// userMessage strips the internal code prefix from typed service errors.
func userMessage(err error) string {
	var fe *booking.FlowError
	if errors.As(err, &fe) {
		return fe.Message
	}
	var ae *appointments.ApptError
	if errors.As(err, &ae) {
		return ae.Message
	}
	var pe *payments.PaymentError
	if errors.As(err, &pe) {
		return pe.Message
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
