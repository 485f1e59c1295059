// File: payments/service.go
package payments

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"careport/models"
)

// BackendAPI is the slice of the hospital backend the payment views need.
type BackendAPI interface {
	PaymentsDashboard(ctx context.Context, token string) (map[string]any, error)
	PatientInvoices(ctx context.Context, token string, patientID int64) ([]models.Invoice, error)
	ProcessPayment(ctx context.Context, token string, form models.ProcessPaymentForm) (*models.PaymentResult, error)
	PaymentReceipt(ctx context.Context, token string, paymentID int64) (*models.PaymentReceipt, error)
}

// Service backs the payment views: dashboard, invoice list, payment
// submission and receipt lookup.
type Service interface {
	Dashboard(ctx context.Context, token string) (map[string]any, error)
	Invoices(ctx context.Context, token string, patientID int64) ([]models.Invoice, error)
	Process(ctx context.Context, token string, form models.ProcessPaymentForm) (*models.PaymentResult, error)
	Receipt(ctx context.Context, token string, paymentID int64) (*models.PaymentReceipt, error)
}

// DefaultService implements Service.
type DefaultService struct {
	API    BackendAPI
	Logger *zap.Logger
}

func (s *DefaultService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// PaymentError is a user-surfaceable payment failure.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &PaymentError{Code: "validationError", Message: msg}
}

// Dashboard fetches the payments dashboard payload.
func (s *DefaultService) Dashboard(ctx context.Context, token string) (map[string]any, error) {
	return s.API.PaymentsDashboard(ctx, token)
}

// Invoices fetches the invoices for one patient.
func (s *DefaultService) Invoices(ctx context.Context, token string, patientID int64) ([]models.Invoice, error) {
	if patientID <= 0 {
		return nil, NewValidationError("a patient id is required")
	}
	return s.API.PatientInvoices(ctx, token, patientID)
}

// Process validates the payment form field by field, then submits it. A
// validation failure never reaches the network.
func (s *DefaultService) Process(ctx context.Context, token string, form models.ProcessPaymentForm) (*models.PaymentResult, error) {
	if fieldErrs := models.ValidateForm(form); len(fieldErrs) > 0 {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field)
		}
		return nil, NewValidationError("invalid payment form: " + strings.Join(fields, ", "))
	}

	result, err := s.API.ProcessPayment(ctx, token, form)
	if err != nil {
		s.logger().Warn("payment processing failed",
			zap.Int64("patientId", form.PatientID),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger().Info("payment processed",
		zap.Int64("patientId", form.PatientID),
		zap.Int64("paymentId", result.PaymentID),
	)
	return result, nil
}

// Receipt fetches the receipt for a processed payment.
func (s *DefaultService) Receipt(ctx context.Context, token string, paymentID int64) (*models.PaymentReceipt, error) {
	if paymentID <= 0 {
		return nil, NewValidationError("a payment id is required")
	}
	return s.API.PaymentReceipt(ctx, token, paymentID)
}
