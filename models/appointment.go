package models

import "time"

// Appointment statuses. Appointments move from scheduled to completed or
// cancelled; there are no other transitions.
const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

// Appointment is a clinic visit booked by or on behalf of a patient.
// PatientID references the owning user account; the authorization gate
// compares it against the requesting identity for self-or-admin access.
type Appointment struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	DentistName string    `json:"dentist_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Appointment model.
func (a Appointment) TableName() string {
	return "appointments"
}
