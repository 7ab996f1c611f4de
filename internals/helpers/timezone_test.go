package helper

import (
	"testing"
	"time"
)

func TestToUTC(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		clock string
		zone  string
		want  string // RFC3339 UTC
	}{
		{"utc by default", "2025-03-10", "09:00", "", "2025-03-10T09:00:00Z"},
		{"explicit utc", "2025-03-10", "09:00", "UTC", "2025-03-10T09:00:00Z"},
		{"new york winter (EST, -05)", "2025-01-15", "09:00", "America/New_York", "2025-01-15T14:00:00Z"},
		{"new york summer (EDT, -04)", "2025-07-15", "09:00", "America/New_York", "2025-07-15T13:00:00Z"},
		{"kolkata half-hour offset", "2025-07-15", "18:30", "Asia/Kolkata", "2025-07-15T13:00:00Z"},
		{"seconds accepted", "2025-03-10", "09:15:30", "UTC", "2025-03-10T09:15:30Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToUTC(tc.date, tc.clock, tc.zone)
			if err != nil {
				t.Fatalf("ToUTC returned error: %v", err)
			}
			want, _ := time.Parse(time.RFC3339, tc.want)
			if !got.Equal(want) {
				t.Fatalf("ToUTC(%s %s %s) = %s, want %s", tc.date, tc.clock, tc.zone, got, want)
			}
			if got.Location() != time.UTC {
				t.Fatalf("result not in UTC: %v", got.Location())
			}
		})
	}

	t.Run("nonexistent local time resolves, no error", func(t *testing.T) {
		// 2025-03-09 02:30 does not exist in New York (spring forward)
		got, err := ToUTC("2025-03-09", "02:30", "America/New_York")
		if err != nil {
			t.Fatalf("expected deterministic resolution, got error: %v", err)
		}
		if got.IsZero() {
			t.Fatal("expected a concrete instant")
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := ToUTC("2025-13-40", "09:00", "UTC"); err == nil {
			t.Fatal("expected error for invalid date")
		}
		if _, err := ToUTC("2025-03-10", "9am", "UTC"); err == nil {
			t.Fatal("expected error for invalid clock")
		}
		if _, err := ToUTC("2025-03-10", "09:00", "Mars/Olympus"); err == nil {
			t.Fatal("expected error for unknown zone")
		}
	})
}

// The round-trip property the series editor depends on: projecting the
// stored UTC instant back into the zone that produced it recovers the
// original calendar date.
func TestProjectDate_RoundTrip(t *testing.T) {
	zones := []string{"UTC", "America/New_York", "Asia/Kolkata", "Australia/Sydney", "Europe/London"}
	dates := []string{"2025-01-15", "2025-03-09", "2025-07-15", "2025-11-02", "2025-12-31"}
	clocks := []string{"00:00", "02:30", "09:00", "13:45", "23:59"}

	for _, zone := range zones {
		for _, date := range dates {
			for _, clock := range clocks {
				utc, err := ToUTC(date, clock, zone)
				if err != nil {
					t.Fatalf("ToUTC(%s %s %s): %v", date, clock, zone, err)
				}
				got, err := ProjectDate(utc, zone)
				if err != nil {
					t.Fatalf("ProjectDate(%s, %s): %v", utc, zone, err)
				}
				if got != date {
					t.Fatalf("round trip lost the date: %s %s %s -> %s", date, clock, zone, got)
				}
			}
		}
	}
}

func TestLoadZone_Default(t *testing.T) {
	loc, err := LoadZone("  ")
	if err != nil {
		t.Fatalf("LoadZone blank: %v", err)
	}
	if loc != time.UTC {
		t.Fatalf("blank zone should default to UTC, got %v", loc)
	}
}
