package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidateForm validates a typed form struct field by field and returns one
// entry per failing field. A nil result means the form is valid.
func ValidateForm(form any) []FieldError {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("field %s failed on the %s rule", fe.Field(), fe.Tag()),
		})
	}
	return out
}

// LoginForm is the credential form posted to the gateway login view.
type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StaffRegistrationForm registers a doctor or staff account.
type StaffRegistrationForm struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role" validate:"required,oneof=DOCTOR STAFF ADMIN"`

	// Doctor specific fields.
	LicenseNumber     string  `json:"licenseNumber,omitempty"`
	Specialization    string  `json:"specialization,omitempty"`
	YearsOfExperience int     `json:"yearsOfExperience,omitempty"`
	Department        string  `json:"department,omitempty"`
	ConsultationFee   float64 `json:"consultationFee,omitempty"`
	AvailableHours    string  `json:"availableHours,omitempty"`

	// Staff specific fields.
	EmployeeID   string `json:"employeeId,omitempty"`
	Position     string `json:"position,omitempty"`
	ShiftTimings string `json:"shiftTimings,omitempty"`
	SupervisorID int64  `json:"supervisorId,omitempty"`
}

// PatientRegistrationForm registers a patient account.
type PatientRegistrationForm struct {
	Username          string `json:"username" validate:"required"`
	Password          string `json:"password" validate:"required,min=6"`
	Email             string `json:"email" validate:"required,email"`
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	PhoneNumber       string `json:"phoneNumber" validate:"required"`
	DateOfBirth       string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender            string `json:"gender,omitempty"`
	Address           string `json:"address,omitempty"`
	EmergencyContact  string `json:"emergencyContact,omitempty"`
	MedicalHistory    string `json:"medicalHistory,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	InsuranceProvider string `json:"insuranceProvider,omitempty"`
	InsuranceNumber   string `json:"insuranceNumber,omitempty"`
}

// LoginResult is the backend's login response.
type LoginResult struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
