package models

// SlotView is a bookable slot as presented to booking screens.
type SlotView struct {
	Time    string `json:"time"`    // "HH:mm" 24-hour start label
	Display string `json:"display"` // e.g. "9:30 AM"
}

// DayAvailability is the availability result for one doctor on one date.
type DayAvailability struct {
	DoctorID string     `json:"doctorId"`
	Date     string     `json:"date"`
	Blocked  bool       `json:"blocked"`
	Slots    []SlotView `json:"slots"`
}
