// file: internals/helpers/timezone.go
package helper

import (
	"fmt"
	"strings"
	"time"
)

/* =========================
   Zoned time conversion
   =========================

   Class start/end are stored as absolute UTC instants only. Locality
   exists purely at the request boundary: the caller sends a calendar
   date, a wall-clock time and an IANA zone, and gets UTC back. */

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// LoadZone resolves an IANA zone name, falling back to UTC when the
// caller omitted one.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q", name)
	}
	return loc, nil
}

// ToUTC interprets date ("2006-01-02") + clock ("15:04" or "15:04:05")
// as wall-clock time in zone and returns the absolute instant in UTC.
// Ambiguous or nonexistent local times around a DST transition resolve
// by time.Date's normalization rules, never an error.
func ToUTC(date, clock, zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}

	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}

	hh, mm, ss, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	local := time.Date(d.Year(), d.Month(), d.Day(), hh, mm, ss, 0, loc)
	return local.UTC(), nil
}

// ProjectDate projects a stored UTC instant into zone and formats the
// calendar date. Used by series edits to keep each occurrence on its
// own day; never used to recover a time-of-day for storage.
func ProjectDate(utc time.Time, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return utc.In(loc).Format(DateLayout), nil
}

func parseClock(s string) (hh, mm, ss int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, 0, fmt.Errorf("empty time")
	}
	if t, e := time.Parse(ClockLayout, s); e == nil {
		return t.Hour(), t.Minute(), 0, nil
	}
	if t, e := time.Parse("15:04:05", s); e == nil {
		return t.Hour(), t.Minute(), t.Second(), nil
	}
	return 0, 0, 0, fmt.Errorf("invalid time format %q (want HH:mm or HH:mm:ss)", s)
}
