// ABOUTME: Calendar date value type for streak and retention math.
// ABOUTME: Parses legacy date formats once at the storage boundary.
package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar day without time-of-day or timezone.
// The zero value means "no date" and is excluded from streak math.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	looseDateRe = regexp.MustCompile(`(\d{4})\D+(\d{1,2})\D+(\d{1,2})`)
)

// DateOf converts a time.Time to a Date in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// NormalizeDate recovers a Date from the formats older log entries used:
// ISO timestamps, "2026. 1. 6.", "2026/01/06" and similar. Returns the
// zero Date if nothing recognizable is found.
func NormalizeDate(s string) Date {
	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		if d, err := ParseDate(m[1] + "-" + m[2] + "-" + m[3]); err == nil {
			return d
		}
	}
	if m := looseDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return Date{Year: year, Month: time.Month(month), Day: day}
		}
	}
	return Date{}
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as YYYY-MM-DD. The zero date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight local time on the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the date shifted by delta calendar days.
func (d Date) AddDays(delta int) Date {
	return DateOf(d.Time().AddDate(0, 0, delta))
}

// DaysUntil returns the number of calendar days from d to other.
// Negative if other is earlier.
func (d Date) DaysUntil(other Date) int {
	hours := other.Time().Sub(d.Time()).Hours()
	return int(math.Round(hours / 24))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// MarshalJSON encodes the date as a YYYY-MM-DD string, null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts null, strict ISO dates, and the legacy formats.
// Malformed values decode to the zero Date rather than failing the whole
// record; callers quarantine dateless entries instead.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*d = NormalizeDate(s)
	return nil
}
