package models

// AppointmentStatus is the server-authoritative appointment lifecycle state.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// Valid reports whether the status is one the backend defines.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Color returns the display color the dashboards use for this status.
func (s AppointmentStatus) Color() string {
	switch s {
	case StatusScheduled:
		return "#007bff"
	case StatusConfirmed:
		return "#28a745"
	case StatusCompleted:
		return "#6c757d"
	case StatusCancelled:
		return "#dc3545"
	case StatusNoShow:
		return "#ffc107"
	default:
		return "#6c757d"
	}
}

// AppointmentDoctor is the doctor summary nested in an appointment response.
type AppointmentDoctor struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Specialization  string  `json:"specialization"`
	Department      string  `json:"department,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`
}

// AppointmentPatient is the patient summary nested in an appointment response.
type AppointmentPatient struct {
	ID          int64  `json:"id"`
	PatientID   string `json:"patientId,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Appointment mirrors the backend's appointment response. Status transitions
// are server-authoritative; the gateway only ever requests a cancellation.
type Appointment struct {
	ID              int64               `json:"id"`
	Patient         *AppointmentPatient `json:"patient,omitempty"`
	Doctor          AppointmentDoctor   `json:"doctor"`
	AppointmentDate string              `json:"appointmentDate"`
	AppointmentTime string              `json:"appointmentTime"`
	DurationMinutes int                 `json:"durationMinutes,omitempty"`
	Status          AppointmentStatus   `json:"status"`
	ReasonForVisit  string              `json:"reasonForVisit"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       string              `json:"createdAt,omitempty"`
}

// Cancellable reports whether the cancel action may be offered for this
// appointment. Only SCHEDULED appointments can be cancelled.
func (a Appointment) Cancellable() bool {
	return a.Status == StatusScheduled
}

// AppointmentView decorates an appointment with display fields for the
// dashboard lists.
type AppointmentView struct {
	Appointment
	StatusColor string `json:"statusColor"`
	CanCancel   bool   `json:"canCancel"`
}

// NewAppointmentView builds the display form of an appointment.
func NewAppointmentView(a Appointment) AppointmentView {
	return AppointmentView{
		Appointment: a,
		StatusColor: a.Status.Color(),
		CanCancel:   a.Cancellable(),
	}
}
