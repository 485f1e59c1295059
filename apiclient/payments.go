package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"careport/models"
)

// PaymentsDashboard fetches the payments dashboard payload.
func (c *Client) PaymentsDashboard(ctx context.Context, token string) (map[string]any, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	var result map[string]any
	if err := c.do(ctx, http.MethodGet, "/payments/dashboard", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PatientInvoices fetches the invoices for one patient.
func (c *Client) PatientInvoices(ctx context.Context, token string, patientID int64) ([]models.Invoice, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	path := fmt.Sprintf("/patients/%d/invoices", patientID)
	var invoices []models.Invoice
	if err := c.do(ctx, http.MethodGet, path, nil, token, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ProcessPayment submits a payment for one or more invoices.
func (c *Client) ProcessPayment(ctx context.Context, token string, form models.ProcessPaymentForm) (*models.PaymentResult, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	var result models.PaymentResult
	if err := c.do(ctx, http.MethodPost, "/payments/process", nil, token, form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PaymentReceipt fetches the receipt for a processed payment.
func (c *Client) PaymentReceipt(ctx context.Context, token string, paymentID int64) (*models.PaymentReceipt, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	path := fmt.Sprintf("/payments/%d/receipt", paymentID)
	var receipt models.PaymentReceipt
	if err := c.do(ctx, http.MethodGet, path, nil, token, nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
