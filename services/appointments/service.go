// File: appointments/service.go
package appointments

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"careport/models"
)

func toViews(appts []models.Appointment) []models.AppointmentView {
	views := make([]models.AppointmentView, 0, len(appts))
	for _, a := range appts {
		views = append(views, models.NewAppointmentView(a))
	}
	return views
}

// PatientList fetches the authenticated patient's appointments for display.
func (s *DefaultService) PatientList(ctx context.Context, token string) ([]models.AppointmentView, error) {
	appts, err := s.API.PatientAppointments(ctx, token)
	if err != nil {
		return nil, err
	}
	return toViews(appts), nil
}

// UpcomingList fetches only the patient's upcoming appointments.
func (s *DefaultService) UpcomingList(ctx context.Context, token string) ([]models.AppointmentView, error) {
	appts, err := s.API.UpcomingAppointments(ctx, token)
	if err != nil {
		return nil, err
	}
	return toViews(appts), nil
}

// DoctorDay fetches a doctor's schedule for one day.
func (s *DefaultService) DoctorDay(ctx context.Context, token string, doctorID int64, date string) ([]models.AppointmentView, error) {
	appts, err := s.API.DoctorAppointments(ctx, token, doctorID, date)
	if err != nil {
		return nil, err
	}
	return toViews(appts), nil
}

// Cancel requests cancellation of one appointment. The caller must have
// confirmed the action, and the appointment must currently be SCHEDULED.
// After a successful cancel the list is re-fetched from the backend, never
// patched locally, so the displayed status always reflects server truth.
func (s *DefaultService) Cancel(ctx context.Context, token string, appointmentID int64, confirmed bool) ([]models.AppointmentView, error) {
	if !confirmed {
		return nil, NewValidationError("cancellation requires explicit confirmation")
	}

	appts, err := s.API.PatientAppointments(ctx, token)
	if err != nil {
		return nil, err
	}
	var target *models.Appointment
	for i := range appts {
		if appts[i].ID == appointmentID {
			target = &appts[i]
			break
		}
	}
	if target == nil {
		return nil, NewNotFoundError(fmt.Sprintf("appointment %d not found", appointmentID))
	}
	if !target.Cancellable() {
		return nil, NewValidationError(fmt.Sprintf("only scheduled appointments can be cancelled (current status: %s)", target.Status))
	}

	if err := s.API.CancelAppointment(ctx, token, appointmentID); err != nil {
		s.logger().Warn("cancel request failed",
			zap.Int64("appointmentId", appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger().Info("appointment cancelled", zap.Int64("appointmentId", appointmentID))

	refreshed, err := s.API.PatientAppointments(ctx, token)
	if err != nil {
		return nil, err
	}
	return toViews(refreshed), nil
}

// UpdateStatus requests a status transition; the backend owns the decision.
func (s *DefaultService) UpdateStatus(ctx context.Context, token string, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error) {
	if !status.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown appointment status %q", status))
	}
	return s.API.UpdateAppointmentStatus(ctx, token, appointmentID, status)
}
