package models

import "time"

// Appointment statuses. Cancelled and declined appointments do not occupy
// their slot; every other status does.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentDeclined  = "declined"
	AppointmentNoShow    = "no_show"
)

// Appointment represents a booked consultation slot.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time      string    `bson:"time" json:"time"` // "HH:mm" slot start label
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	BookedBy  string    `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"` // "patient" or "receptionist"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Occupies reports whether the appointment blocks its slot from rebooking.
func (a Appointment) Occupies() bool {
	return a.Status != AppointmentCancelled && a.Status != AppointmentDeclined
}

// BookAppointmentRequest defines the payload for booking a slot.
type BookAppointmentRequest struct {
	DoctorID  string `json:"doctorId" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Reason    string `json:"reason,omitempty"`
	BookedBy  string `json:"bookedBy,omitempty"`
}
