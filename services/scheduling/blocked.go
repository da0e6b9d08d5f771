package scheduling

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"medibook/models"
)

// IsDateBlocked reports whether the doctor accepts no appointments on the
// given "YYYY-MM-DD" date. Every blocked-date entry is normalized to its
// canonical form before comparison; entries that cannot be normalized never
// block.
func IsDateBlocked(cfg models.ScheduleConfig, date string) bool {
	for _, entry := range cfg.BlockedDates {
		if canonical, ok := NormalizeBlockedDate(entry); ok && canonical == date {
			return true
		}
	}
	return false
}

// NormalizeBlockedDate converts one blocked-date entry to its canonical
// "YYYY-MM-DD" form. Historical records store these in several shapes: a
// plain date string, a {date: "..."} document, a {seconds: N} timestamp
// document, or a native datetime. Unrecognized or malformed entries report
// ok=false and are skipped by the caller rather than surfacing an error.
func NormalizeBlockedDate(entry any) (string, bool) {
	switch v := entry.(type) {
	case string:
		return canonicalDateString(v)
	case map[string]any:
		if d, ok := v["date"]; ok {
			return NormalizeBlockedDate(d)
		}
		if s, ok := v["seconds"]; ok {
			if secs, ok := asInt64(s); ok {
				return time.Unix(secs, 0).UTC().Format("2006-01-02"), true
			}
		}
		return "", false
	case time.Time:
		return v.Format("2006-01-02"), true
	case primitive.DateTime:
		return v.Time().UTC().Format("2006-01-02"), true
	case int64:
		return time.Unix(v, 0).UTC().Format("2006-01-02"), true
	case float64:
		return time.Unix(int64(v), 0).UTC().Format("2006-01-02"), true
	default:
		return "", false
	}
}

// canonicalDateString accepts "YYYY-MM-DD" possibly followed by a time
// component (ISO datetime strings from older records) and returns the date
// part when it parses.
func canonicalDateString(s string) (string, bool) {
	if len(s) < 10 {
		return "", false
	}
	datePart := s[:10]
	if _, err := time.Parse("2006-01-02", datePart); err != nil {
		return "", false
	}
	return datePart, true
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
