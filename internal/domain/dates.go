package domain

import "time"

const (
	// DateLayout is the storage format of calendar dates.
	DateLayout = time.DateOnly
	// MonthLayout is the month key format.
	MonthLayout = "2006-01"
)

// DateOf returns the calendar day of t (in t's location) as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthKey returns "YYYY-MM" for the calendar date of t.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// InMonth reports whether the calendar date t falls within month key m.
func InMonth(t time.Time, m string) bool {
	return MonthKey(t) == m
}

// ShiftMonth moves month key m by n months. An unparsable key is returned
// unchanged.
func ShiftMonth(m string, n int) string {
	t, err := time.Parse(MonthLayout, m)
	if err != nil {
		return m
	}
	return t.AddDate(0, n, 0).Format(MonthLayout)
}

// Ref returns a pointer to s, or nil when s is empty.
func Ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SameRef reports whether an optional reference points at id.
func SameRef(ref *string, id string) bool {
	return ref != nil && *ref == id
}
