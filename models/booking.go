package models

import "time"

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

// TimeSlot is a bookable (startTime, endTime) interval for a doctor on a date.
// Slots exist only as transient query results; they are never synthesized
// client-side.
type TimeSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	IsAvailable     bool   `json:"isAvailable,omitempty"`
}

// Equal compares slots by their interval.
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.StartTime == other.StartTime && s.EndTime == other.EndTime
}

// BookingDraft is the in-progress appointment request assembled by the booking
// flow and submitted atomically as one request.
type BookingDraft struct {
	DoctorID        int64  `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	ReasonForVisit  string `json:"reasonForVisit"`
	Notes           string `json:"notes,omitempty"`
}

// FlowState tracks where a booking flow stands.
type FlowState string

const (
	FlowIdle         FlowState = "IDLE"
	FlowDoctorChosen FlowState = "DOCTOR_CHOSEN"
	FlowDateChosen   FlowState = "DATE_CHOSEN"
	FlowSlotsLoaded  FlowState = "SLOTS_LOADED"
	FlowSlotChosen   FlowState = "SLOT_CHOSEN"
	FlowSubmitting   FlowState = "SUBMITTING"
	FlowSuccess      FlowState = "SUCCESS"
	FlowFailed       FlowState = "FAILED"
)

// BookingFlow holds the multi-step booking state between requests. Each field
// is gated on its predecessor: doctor, then date, then slots, then slot, then
// submission.
type BookingFlow struct {
	FlowID  string    `json:"flowId"`
	State   FlowState `json:"state"`
	Doctors []Doctor  `json:"doctors"`

	DoctorID int64  `json:"doctorId,omitempty"`
	Date     string `json:"date,omitempty"`

	Slots        []TimeSlot `json:"slots,omitempty"`
	SlotsLoading bool       `json:"slotsLoading"`
	// SlotQuerySeq increases on every change that invalidates outstanding slot
	// queries; a response is applied only if its sequence still matches.
	SlotQuerySeq uint64 `json:"slotQuerySeq"`

	Slot *TimeSlot `json:"slot,omitempty"`

	ReasonForVisit string `json:"reasonForVisit,omitempty"`
	Notes          string `json:"notes,omitempty"`

	Booked    *Appointment `json:"booked,omitempty"`
	LastError string       `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SelectedDoctor returns the chosen doctor, or nil when none is chosen.
func (f *BookingFlow) SelectedDoctor() *Doctor {
	if f.DoctorID == 0 {
		return nil
	}
	for i := range f.Doctors {
		if f.Doctors[i].ID == f.DoctorID {
			return &f.Doctors[i]
		}
	}
	return nil
}

// HasSlot reports whether the given slot is a member of the most recently
// fetched slot list.
func (f *BookingFlow) HasSlot(slot TimeSlot) bool {
	for _, s := range f.Slots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}

// Draft assembles the booking request from the flow's current selections. The
// appointment time is always the chosen slot's start time.
func (f *BookingFlow) Draft() BookingDraft {
	draft := BookingDraft{
		DoctorID:        f.DoctorID,
		AppointmentDate: f.Date,
		ReasonForVisit:  f.ReasonForVisit,
		Notes:           f.Notes,
	}
	if f.Slot != nil {
		draft.AppointmentTime = f.Slot.StartTime
	}
	return draft
}

// ClearDraft drops every draft field after a successful submission.
func (f *BookingFlow) ClearDraft() {
	f.DoctorID = 0
	f.ClearSelection()
	f.ReasonForVisit = ""
	f.Notes = ""
}

// ClearSelection drops the date, slot list, and chosen slot. Called whenever
// the doctor changes so a stale (doctor, date, slot) combination can never be
// submitted.
func (f *BookingFlow) ClearSelection() {
	f.Date = ""
	f.Slots = nil
	f.SlotsLoading = false
	f.Slot = nil
}
