// File: booking/flow.go
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careport/models"
)

// BookingHorizonDays is how far ahead an appointment may be booked. Both ends
// of the [today, today+horizon] window are selectable.
const BookingHorizonDays = 30

// StartFlow fetches the doctor list and creates a fresh booking flow.
func (s *DefaultFlowService) StartFlow(ctx context.Context) (*models.BookingFlow, error) {
	doctors, err := s.API.ListDoctors(ctx)
	if err != nil {
		return nil, NewUpstreamError(fmt.Sprintf("failed to fetch doctors: %v", err))
	}

	now := s.now()
	flow := &models.BookingFlow{
		FlowID:    uuid.New().String(),
		State:     models.FlowIdle,
		Doctors:   doctors,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// GetFlow returns the current flow state.
func (s *DefaultFlowService) GetFlow(ctx context.Context, flowID string) (*models.BookingFlow, error) {
	return s.Store.Get(ctx, flowID)
}

// ChooseDoctor records the doctor selection. Any previously selected date,
// slot list, and slot are cleared so a stale (doctor, date, slot) combination
// can never be submitted.
func (s *DefaultFlowService) ChooseDoctor(ctx context.Context, flowID string, doctorID int64) (*models.BookingFlow, error) {
	flow, err := s.Store.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State == models.FlowSubmitting {
		return nil, NewStateError("a submission is in progress")
	}

	found := false
	for _, d := range flow.Doctors {
		if d.ID == doctorID {
			found = true
			break
		}
	}
	if !found {
		return nil, NewValidationError(fmt.Sprintf("doctor %d is not in the fetched doctor list", doctorID))
	}

	flow.DoctorID = doctorID
	flow.ClearSelection()
	// Supersede any outstanding slot query for the previous selection.
	flow.SlotQuerySeq++
	flow.State = models.FlowDoctorChosen
	flow.LastError = ""
	flow.UpdatedAt = s.now()

	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// ChooseDate records the date selection and runs the slot query for the
// (doctor, date) pair. The date must fall within the booking horizon. While
// the query is outstanding the slot list is marked loading and any prior
// chosen slot is cleared; a response for a superseded selection is discarded.
func (s *DefaultFlowService) ChooseDate(ctx context.Context, flowID string, date string) (*models.BookingFlow, error) {
	flow, err := s.Store.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State == models.FlowSubmitting {
		return nil, NewStateError("a submission is in progress")
	}
	if flow.DoctorID == 0 {
		return nil, NewStateError("choose a doctor before choosing a date")
	}
	if err := s.validateDate(date); err != nil {
		return nil, err
	}

	flow.Date = date
	flow.Slot = nil
	flow.Slots = nil
	flow.SlotsLoading = true
	flow.SlotQuerySeq++
	seq := flow.SlotQuerySeq
	doctorID := flow.DoctorID
	flow.State = models.FlowDateChosen
	flow.LastError = ""
	flow.UpdatedAt = s.now()
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}

	slots, queryErr := s.API.AvailableSlots(ctx, doctorID, date)

	// Re-read the flow: the selection may have moved on while the query was
	// in flight, in which case this response no longer applies.
	flow, err = s.Store.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if flow.SlotQuerySeq != seq || flow.DoctorID != doctorID || flow.Date != date {
		s.logger().Debug("discarding superseded slot query response",
			zap.String("flowId", flowID),
			zap.Int64("doctorId", doctorID),
			zap.String("date", date),
		)
		return flow, nil
	}

	flow.SlotsLoading = false
	flow.UpdatedAt = s.now()
	if queryErr != nil {
		flow.State = models.FlowFailed
		flow.LastError = "Failed to fetch available slots"
		if err := s.Store.Save(ctx, flow); err != nil {
			return nil, err
		}
		s.logger().Warn("slot query failed",
			zap.String("flowId", flowID),
			zap.Int64("doctorId", doctorID),
			zap.String("date", date),
			zap.Error(queryErr),
		)
		return flow, NewUpstreamError("failed to fetch available slots")
	}

	// An empty list is a valid result; the view renders "no slots".
	flow.Slots = slots
	flow.State = models.FlowSlotsLoaded
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// ChooseSlot records the slot selection. The slot must be a member of the
// most recently fetched slot list; slots are never synthesized client-side.
func (s *DefaultFlowService) ChooseSlot(ctx context.Context, flowID string, slot models.TimeSlot) (*models.BookingFlow, error) {
	flow, err := s.Store.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State == models.FlowSubmitting {
		return nil, NewStateError("a submission is in progress")
	}
	if flow.SlotsLoading {
		return nil, NewStateError("slots are still loading")
	}
	if flow.State != models.FlowSlotsLoaded && flow.State != models.FlowSlotChosen {
		return nil, NewStateError("choose a doctor and date before choosing a slot")
	}

	var chosen *models.TimeSlot
	for i := range flow.Slots {
		if flow.Slots[i].Equal(slot) {
			chosen = &flow.Slots[i]
			break
		}
	}
	if chosen == nil {
		return nil, NewValidationError("the selected slot is not in the fetched slot list")
	}

	picked := *chosen
	flow.Slot = &picked
	flow.State = models.FlowSlotChosen
	flow.LastError = ""
	flow.UpdatedAt = s.now()

	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// Submit validates the assembled draft and issues one booking request. A
// validation failure never reaches the network. On success the draft is
// discarded; on failure it is preserved so the user can retry.
func (s *DefaultFlowService) Submit(ctx context.Context, flowID string, token string, req SubmitRequest) (*models.BookingFlow, error) {
	flow, err := s.Store.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State == models.FlowSubmitting {
		return nil, NewStateError("a submission is already in progress")
	}

	flow.ReasonForVisit = strings.TrimSpace(req.ReasonForVisit)
	flow.Notes = strings.TrimSpace(req.Notes)

	var missing []string
	if flow.DoctorID == 0 {
		missing = append(missing, "doctor")
	}
	if flow.Date == "" {
		missing = append(missing, "date")
	}
	if flow.Slot == nil {
		missing = append(missing, "time slot")
	}
	if flow.ReasonForVisit == "" {
		missing = append(missing, "reason for visit")
	}
	if len(missing) > 0 {
		return nil, NewValidationError("please fill in all required fields: " + strings.Join(missing, ", "))
	}

	// Mark the flow busy before dispatch so a second submit is rejected
	// while this one is outstanding.
	flow.State = models.FlowSubmitting
	flow.UpdatedAt = s.now()
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}

	draft := flow.Draft()
	booked, bookErr := s.API.BookAppointment(ctx, token, draft)

	flow, err = s.Store.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	flow.UpdatedAt = s.now()
	if bookErr != nil {
		// Keep every draft field so the user can retry without re-entering.
		flow.State = models.FlowFailed
		flow.LastError = "Failed to book appointment. Please try again."
		if err := s.Store.Save(ctx, flow); err != nil {
			return nil, err
		}
		s.logger().Warn("booking submission failed",
			zap.String("flowId", flowID),
			zap.Int64("doctorId", draft.DoctorID),
			zap.String("date", draft.AppointmentDate),
			zap.Error(bookErr),
		)
		return flow, NewUpstreamError("failed to book appointment")
	}

	flow.Booked = booked
	flow.ClearDraft()
	flow.State = models.FlowSuccess
	flow.LastError = ""
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	s.logger().Info("appointment booked",
		zap.String("flowId", flowID),
		zap.Int64("appointmentId", booked.ID),
	)
	return flow, nil
}

// AbandonFlow discards an in-progress flow.
func (s *DefaultFlowService) AbandonFlow(ctx context.Context, flowID string) error {
	return s.Store.Delete(ctx, flowID)
}

// validateDate checks the booking horizon: wall-clock date only, both ends
// inclusive.
func (s *DefaultFlowService) validateDate(date string) error {
	parsed, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	if err != nil {
		return NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	max := today.AddDate(0, 0, BookingHorizonDays)
	if parsed.Before(today) {
		return NewValidationError("cannot book an appointment for a past date")
	}
	if parsed.After(max) {
		return NewValidationError(fmt.Sprintf("appointments can be booked at most %d days in advance", BookingHorizonDays))
	}
	return nil
}
