package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"careport/models"
)

// BackendAPI is the slice of the hospital backend the booking flow needs.
type BackendAPI interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AvailableSlots(ctx context.Context, doctorID int64, date string) ([]models.TimeSlot, error)
	BookAppointment(ctx context.Context, token string, draft models.BookingDraft) (*models.Appointment, error)
}

// SubmitRequest carries the free-text draft fields provided at submission.
type SubmitRequest struct {
	ReasonForVisit string `json:"reasonForVisit"`
	Notes          string `json:"notes,omitempty"`
}

// FlowService drives the stateful appointment booking workflow: doctor
// selection, date selection, slot discovery, slot selection, submission.
type FlowService interface {
	StartFlow(ctx context.Context) (*models.BookingFlow, error)
	GetFlow(ctx context.Context, flowID string) (*models.BookingFlow, error)
	ChooseDoctor(ctx context.Context, flowID string, doctorID int64) (*models.BookingFlow, error)
	ChooseDate(ctx context.Context, flowID string, date string) (*models.BookingFlow, error)
	ChooseSlot(ctx context.Context, flowID string, slot models.TimeSlot) (*models.BookingFlow, error)
	Submit(ctx context.Context, flowID string, token string, req SubmitRequest) (*models.BookingFlow, error)
	AbandonFlow(ctx context.Context, flowID string) error
}

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	API    BackendAPI
	Store  FlowStore
	Logger *zap.Logger
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultFlowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultFlowService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
