// utils/dates.go
package utils

import (
	"log"
	"time"
)

const (
	inputDateLayout   = "2006-01-02"
	displayDateLayout = "02/01/2006"
)

// FormatForInput renders a date the way an HTML date input expects it
// (YYYY-MM-DD). Nil or zero dates come back as an empty string.
func FormatForInput(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(inputDateLayout)
}

// FormatForDisplay renders a date for Indian locale display (DD/MM/YYYY),
// falling back to a dash placeholder for nil or zero dates.
func FormatForDisplay(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(displayDateLayout)
}

// ParseInputDate parses an ISO date-only string. A parse failure is a soft
// error: it is logged and the zero time returned, callers render ""/"-".
func ParseInputDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(inputDateLayout, s)
	if err != nil {
		log.Printf("invalid date string %q: %v", s, err)
		return time.Time{}, err
	}
	return t, nil
}

// NextVisitDate computes the default follow-up date: exactly 3 calendar
// months later, keeping the day of month where it exists and clamping to
// the last day of the target month otherwise (Jan 31 -> Apr 30).
func NextVisitDate(visitDate time.Time) time.Time {
	return AddMonthsClamped(visitDate, 3)
}

// AddMonthsClamped adds calendar months without the overflow roll-over of
// time.AddDate (which would turn Jan 31 + 3 months into May 1).
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
