package apiclient

import (
	"context"
	"net/http"

	"careport/models"
)

// Login exchanges credentials for a backend token and role.
func (c *Client) Login(ctx context.Context, form models.LoginForm) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterStaff creates a doctor, staff or admin account.
func (c *Client) RegisterStaff(ctx context.Context, form models.StaffRegistrationForm) (map[string]any, error) {
	var result map[string]any
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", form, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RegisterPatient creates a patient account.
func (c *Client) RegisterPatient(ctx context.Context, form models.PatientRegistrationForm) (map[string]any, error) {
	var result map[string]any
	if err := c.do(ctx, http.MethodPost, "/patients/register", nil, "", form, &result); err != nil {
		return nil, err
	}
	return result, nil
}
