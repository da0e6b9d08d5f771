package scheduling

import (
	"strings"
	"testing"

	"medibook/models"
)

func TestFormatTimeDisplay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:05", "12:05 AM"},
		{"09:30", "9:30 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:45", "11:45 PM"},
		{"not-a-time", "not-a-time"}, // unparseable labels pass through
	}
	for _, tc := range cases {
		if got := FormatTimeDisplay(tc.in); got != tc.want {
			t.Fatalf("FormatTimeDisplay(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFormatTimeDisplay_AllGeneratedSlots(t *testing.T) {
	cfg := models.ScheduleConfig{StartTime: "00:00", EndTime: "23:59", SlotDuration: 25}

	for _, slot := range AvailableSlots(cfg, "doc-1", "2026-09-03", nil) {
		display := FormatTimeDisplay(slot)
		if !strings.HasSuffix(display, " AM") && !strings.HasSuffix(display, " PM") {
			t.Fatalf("slot %q formatted as %q without AM/PM", slot, display)
		}
	}
}
