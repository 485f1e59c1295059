package models

import "fmt"

// DoctorUser carries the account fields the backend nests under a doctor.
type DoctorUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

// Doctor represents a bookable doctor as served by the backend. The gateway
// never mutates doctors; they exist only as fetched query results.
type Doctor struct {
	ID              int64      `json:"id"`
	User            DoctorUser `json:"user"`
	Specialization  string     `json:"specialization"`
	Department      string     `json:"department,omitempty"`
	LicenseNumber   string     `json:"licenseNumber,omitempty"`
	ConsultationFee float64    `json:"consultationFee,omitempty"`
	AvailableHours  string     `json:"availableHours,omitempty"`
}

// DisplayName renders the doctor the way the booking views label them.
func (d Doctor) DisplayName() string {
	return fmt.Sprintf("Dr. %s %s - %s", d.User.FirstName, d.User.LastName, d.Specialization)
}
