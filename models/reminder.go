package models

// ReminderPayload is the task body queued for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"` // "HH:mm"
}
