package apiclient

import (
	"context"
	"net/http"

	"careport/models"
)

// ListDoctors fetches every bookable doctor.
func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctor/all", nil, "", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// DoctorDashboard fetches the authenticated doctor's dashboard payload.
func (c *Client) DoctorDashboard(ctx context.Context, token string) (map[string]any, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	var result map[string]any
	if err := c.do(ctx, http.MethodGet, "/doctor/dashboard", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StaffDashboard fetches the authenticated staff member's dashboard payload.
func (c *Client) StaffDashboard(ctx context.Context, token string) (map[string]any, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	var result map[string]any
	if err := c.do(ctx, http.MethodGet, "/staff/dashboard", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
