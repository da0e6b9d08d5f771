package scheduling

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"medibook/models"
)

func TestNormalizeBlockedDate(t *testing.T) {
	noon := time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		entry any
		want  string
		ok    bool
	}{
		{"plain string", "2026-09-03", "2026-09-03", true},
		{"iso datetime string", "2026-09-03T12:00:00Z", "2026-09-03", true},
		{"date document", map[string]any{"date": "2026-09-03"}, "2026-09-03", true},
		{"seconds document", map[string]any{"seconds": float64(noon.Unix())}, "2026-09-03", true},
		{"seconds int document", map[string]any{"seconds": noon.Unix()}, "2026-09-03", true},
		{"native time", noon, "2026-09-03", true},
		{"mongo datetime", primitive.NewDateTimeFromTime(noon), "2026-09-03", true},
		{"epoch seconds", noon.Unix(), "2026-09-03", true},
		{"garbage string", "not-a-date", "", false},
		{"short string", "2026", "", false},
		{"nil entry", nil, "", false},
		{"empty document", map[string]any{}, "", false},
		{"bool", true, "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeBlockedDate(tc.entry)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: expected (%q, %v), got (%q, %v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

func TestIsDateBlocked_MixedRepresentations(t *testing.T) {
	noon := time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)
	cfg := models.ScheduleConfig{
		BlockedDates: []any{
			"2026-09-03",
			map[string]any{"date": "2026-09-05"},
			map[string]any{"seconds": float64(noon.Unix())},
			"corrupted-entry", // must be skipped, never block
		},
	}

	for _, date := range []string{"2026-09-03", "2026-09-04", "2026-09-05"} {
		if !IsDateBlocked(cfg, date) {
			t.Fatalf("expected %s to be blocked", date)
		}
	}
	if IsDateBlocked(cfg, "2026-09-06") {
		t.Fatal("expected 2026-09-06 to be open")
	}
}

func TestIsDateBlocked_EmptyConfig(t *testing.T) {
	if IsDateBlocked(models.ScheduleConfig{}, "2026-09-03") {
		t.Fatal("expected no blocked dates on empty config")
	}
}
