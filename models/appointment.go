package models

import "time"

// Appointment.Status values
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// PaymentInfo.Status values
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// ValidStatus reports whether s is one of the four appointment states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PaymentInfo is the simulated-payment sub-record embedded in an appointment.
type PaymentInfo struct {
	PaymentID string     `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	Status    string     `json:"status" bson:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}

type Appointment struct {
	ID               string      `json:"id" bson:"_id" db:"id"`
	UserID           string      `json:"user_id" bson:"user_id" db:"user_id"`
	ServiceName      string      `json:"service_name" bson:"service_name" db:"service_name"`
	ServicePrice     float64     `json:"service_price" bson:"service_price" db:"service_price"`
	AppointmentDate  time.Time   `json:"appointment_date" bson:"appointment_date" db:"appointment_date"`
	Status           string      `json:"status" bson:"status" db:"status"`
	PaymentInfo      PaymentInfo `json:"payment_info" bson:"payment_info"`
	ClientNotes      *string     `json:"client_notes,omitempty" bson:"client_notes,omitempty" db:"client_notes"`
	PractitionerNote *string     `json:"practitioner_notes,omitempty" bson:"practitioner_notes,omitempty" db:"practitioner_notes"`
	ReportURL        *string     `json:"report_url,omitempty" bson:"report_url,omitempty" db:"report_url"`
	CreatedAt        time.Time   `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt        *time.Time  `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`

	// Denormalized owner for responses; never persisted with the appointment.
	User *User `json:"user,omitempty" bson:"-"`
}
