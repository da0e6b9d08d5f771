package models

import "time"

// ScheduleConfig holds a doctor's consultation window configuration.
// Times are "HH:mm" 24-hour strings; dates are "YYYY-MM-DD".
type ScheduleConfig struct {
	WorkingDays  []string `bson:"workingDays,omitempty" json:"workingDays,omitempty"` // e.g. ["monday", "tuesday"]; empty means every day
	StartTime    string   `bson:"startTime" json:"startTime"`                         // e.g. "09:00"
	EndTime      string   `bson:"endTime" json:"endTime"`                             // e.g. "17:00"
	SlotDuration int      `bson:"slotDuration" json:"slotDuration"`                   // minutes per slot
	BreakStart   string   `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakEnd     string   `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`
	// BlockedDates is kept heterogeneous as stored: entries may be plain
	// "YYYY-MM-DD" strings, {date: "..."} documents, {seconds: N} timestamps,
	// or native datetimes from older records.
	BlockedDates []any `bson:"blockedDates,omitempty" json:"blockedDates,omitempty"`
}

// Doctor represents a consulting doctor record.
type Doctor struct {
	ID              string         `bson:"id" json:"id"`
	Name            string         `bson:"name" json:"name"`
	Specialty       string         `bson:"specialty" json:"specialty"`
	Department      string         `bson:"department,omitempty" json:"department,omitempty"`
	Phone           string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Email           string         `bson:"email,omitempty" json:"email,omitempty"`
	ConsultationFee float64        `bson:"consultationFee,omitempty" json:"consultationFee,omitempty"`
	Active          bool           `bson:"active" json:"active"`
	Schedule        ScheduleConfig `bson:"schedule" json:"schedule"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"updatedAt"`
}
