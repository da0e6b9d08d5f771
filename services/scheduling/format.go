package scheduling

import "strconv"

// FormatTimeDisplay converts an "HH:mm" 24-hour slot label into a 12-hour
// display label, e.g. "09:30" becomes "9:30 AM". Labels that do not parse
// are returned unchanged.
func FormatTimeDisplay(slot string) string {
	m, ok := parseClock(slot)
	if !ok {
		return slot
	}
	hour := m / 60
	minute := m % 60

	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return strconv.Itoa(display) + ":" + pad2(minute) + " " + suffix
}
