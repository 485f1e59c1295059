package appointments

import (
	"context"

	"go.uber.org/zap"

	"careport/models"
)

// BackendAPI is the slice of the hospital backend the appointment views need.
type BackendAPI interface {
	PatientAppointments(ctx context.Context, token string) ([]models.Appointment, error)
	UpcomingAppointments(ctx context.Context, token string) ([]models.Appointment, error)
	DoctorAppointments(ctx context.Context, token string, doctorID int64, date string) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, token string, appointmentID int64) error
	UpdateAppointmentStatus(ctx context.Context, token string, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error)
}

// Service backs the appointment list views and their actions.
type Service interface {
	PatientList(ctx context.Context, token string) ([]models.AppointmentView, error)
	UpcomingList(ctx context.Context, token string) ([]models.AppointmentView, error)
	DoctorDay(ctx context.Context, token string, doctorID int64, date string) ([]models.AppointmentView, error)
	Cancel(ctx context.Context, token string, appointmentID int64, confirmed bool) ([]models.AppointmentView, error)
	UpdateStatus(ctx context.Context, token string, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error)
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
