// Package scheduling computes bookable consultation slots for a doctor on a
// given date. It is pure: callers fetch the schedule configuration and the
// already-booked appointments, and re-invoke it whenever either changes.
package scheduling

import (
	"strconv"
	"strings"
	"time"

	"medibook/models"
)

// AvailableSlots returns the ascending list of bookable "HH:mm" slot start
// labels for one doctor on one date.
//
// Candidates are generated by stepping from the schedule's start time in
// slot-duration increments; a candidate survives if its interval fits before
// the end time, does not overlap the configured break, and its label does not
// exactly match an occupying appointment's time. Appointments are matched by
// slot label, not interval overlap: bookings are keyed by the published slot
// start, so two bookings can only collide by choosing the identical label.
//
// Malformed configuration (non-positive duration, start at or after end,
// unparseable times) yields an empty list rather than an error; this sits
// under interactive booking screens that must keep rendering.
func AvailableSlots(cfg models.ScheduleConfig, doctorID, date string, booked []models.Appointment) []string {
	if IsDateBlocked(cfg, date) {
		return nil
	}
	if !isWorkingDay(cfg, date) {
		return nil
	}
	if cfg.SlotDuration <= 0 {
		return nil
	}

	start, okStart := parseClock(cfg.StartTime)
	end, okEnd := parseClock(cfg.EndTime)
	if !okStart || !okEnd || start >= end {
		return nil
	}

	breakStart, breakEnd, hasBreak := breakWindow(cfg)
	taken := occupiedSlots(doctorID, date, booked)

	var slots []string
	for t := start; t+cfg.SlotDuration <= end; t += cfg.SlotDuration {
		if hasBreak && t < breakEnd && breakStart < t+cfg.SlotDuration {
			continue
		}
		label := formatClock(t)
		if taken[label] {
			continue
		}
		slots = append(slots, label)
	}
	return slots
}

// IsSlotInPast reports whether a slot on the given date has already started
// relative to now. It is true only when date is now's calendar date and the
// slot's start is at or before the current minute; slots on any other date
// are never filtered by time of day. Callers apply this after AvailableSlots
// so the slot generation itself stays clock-independent.
func IsSlotInPast(slot, date string, now time.Time) bool {
	if date != now.Format("2006-01-02") {
		return false
	}
	m, ok := parseClock(slot)
	if !ok {
		return false
	}
	return m <= now.Hour()*60+now.Minute()
}

// occupiedSlots collects the slot labels taken by occupying appointments for
// the doctor/date context. Cancelled and declined bookings free their slot.
func occupiedSlots(doctorID, date string, booked []models.Appointment) map[string]bool {
	taken := make(map[string]bool, len(booked))
	for _, a := range booked {
		if a.DoctorID != doctorID || a.Date != date {
			continue
		}
		if !a.Occupies() {
			continue
		}
		taken[a.Time] = true
	}
	return taken
}

// isWorkingDay checks the date's weekday against the configured working days.
// An empty working-day list means no restriction; an unparseable date is
// treated as non-working.
func isWorkingDay(cfg models.ScheduleConfig, date string) bool {
	if len(cfg.WorkingDays) == 0 {
		return true
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	weekday := strings.ToLower(d.Weekday().String())
	for _, wd := range cfg.WorkingDays {
		if strings.ToLower(strings.TrimSpace(wd)) == weekday {
			return true
		}
	}
	return false
}

// breakWindow parses the optional break interval. A break is only honored
// when both bounds parse and the interval is non-empty.
func breakWindow(cfg models.ScheduleConfig) (start, end int, ok bool) {
	if cfg.BreakStart == "" || cfg.BreakEnd == "" {
		return 0, 0, false
	}
	start, okStart := parseClock(cfg.BreakStart)
	end, okEnd := parseClock(cfg.BreakEnd)
	if !okStart || !okEnd || start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// parseClock converts an "HH:mm" label to minutes from midnight.
func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// formatClock renders minutes from midnight as a zero-padded "HH:mm" label.
func formatClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return pad2(h) + ":" + pad2(m)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
