package models

import "time"

// Admission statuses.
const (
	AdmissionActive     = "admitted"
	AdmissionDischarged = "discharged"
)

// Admission represents an inpatient admission record created at the
// reception desk.
type Admission struct {
	ID           string     `bson:"id" json:"id"`
	PatientID    string     `bson:"patientId" json:"patientId"`
	DoctorID     string     `bson:"doctorId" json:"doctorId"`
	Ward         string     `bson:"ward" json:"ward"`
	Bed          string     `bson:"bed,omitempty" json:"bed,omitempty"`
	Status       string     `bson:"status" json:"status"`
	Notes        string     `bson:"notes,omitempty" json:"notes,omitempty"`
	AdmittedAt   time.Time  `bson:"admittedAt" json:"admittedAt"`
	DischargedAt *time.Time `bson:"dischargedAt,omitempty" json:"dischargedAt,omitempty"`
}

// AdmitPatientRequest defines the payload for admitting a patient.
type AdmitPatientRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	DoctorID  string `json:"doctorId" binding:"required"`
	Ward      string `json:"ward" binding:"required"`
	Bed       string `json:"bed,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
