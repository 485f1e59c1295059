package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"careport/models"
)

// AvailableSlots queries bookable slots for a doctor on a date (YYYY-MM-DD).
func (c *Client) AvailableSlots(ctx context.Context, doctorID int64, date string) ([]models.TimeSlot, error) {
	query := url.Values{"date": {date}}
	path := fmt.Sprintf("/appointments/doctor/%d/available-slots", doctorID)
	var slots []models.TimeSlot
	if err := c.do(ctx, http.MethodGet, path, query, "", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// BookAppointment submits a completed booking draft.
func (c *Client) BookAppointment(ctx context.Context, token string, draft models.BookingDraft) (*models.Appointment, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	var appt models.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments/book", nil, token, draft, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// PatientAppointments fetches the authenticated patient's appointments.
func (c *Client) PatientAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	var appts []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments/patient", nil, token, nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// UpcomingAppointments fetches the authenticated patient's upcoming (still
// scheduled) appointments.
func (c *Client) UpcomingAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	var appts []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments/patient/upcoming", nil, token, nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// DoctorAppointments fetches a doctor's appointments for one day.
func (c *Client) DoctorAppointments(ctx context.Context, token string, doctorID int64, date string) ([]models.Appointment, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	query := url.Values{"date": {date}}
	path := fmt.Sprintf("/appointments/doctor/%d", doctorID)
	var appts []models.Appointment
	if err := c.do(ctx, http.MethodGet, path, query, token, nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// UpdateAppointmentStatus asks the backend to move an appointment to the
// given status. Transitions are server-authoritative.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, token string, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	query := url.Values{"status": {string(status)}}
	path := fmt.Sprintf("/appointments/%d/status", appointmentID)
	var appt models.Appointment
	if err := c.do(ctx, http.MethodPut, path, query, token, nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// CancelAppointment requests cancellation of an appointment by identifier.
func (c *Client) CancelAppointment(ctx context.Context, token string, appointmentID int64) error {
	if token == "" {
		return ErrNoCredential
	}
	path := fmt.Sprintf("/appointments/%d", appointmentID)
	return c.do(ctx, http.MethodDelete, path, nil, token, nil, nil)
}
