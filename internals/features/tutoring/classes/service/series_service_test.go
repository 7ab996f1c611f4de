package service

import (
	"testing"
	"time"

	helper "upkraft_backend/internals/helpers"
)

// A series edit must keep every occurrence on its own calendar day and
// only move the time-of-day, uniformly, in the caller's zone.
func TestShiftToClock_PreservesDate(t *testing.T) {
	const zone = "America/New_York"

	// weekly members spanning the March DST transition: their UTC
	// offsets differ, but each must stay on its own local date
	storedStarts := []string{
		"2025-03-03T14:00:00Z", // 09:00 EST
		"2025-03-10T13:00:00Z", // 09:00 EDT
		"2025-03-17T13:00:00Z",
		"2025-03-24T13:00:00Z",
	}

	for _, raw := range storedStarts {
		stored, _ := time.Parse(time.RFC3339, raw)

		dateBefore, err := helper.ProjectDate(stored, zone)
		if err != nil {
			t.Fatalf("ProjectDate: %v", err)
		}

		start, end, err := ShiftToClock(stored, "16:30", "17:30", zone)
		if err != nil {
			t.Fatalf("ShiftToClock(%s): %v", raw, err)
		}

		dateAfter, err := helper.ProjectDate(start, zone)
		if err != nil {
			t.Fatalf("ProjectDate after: %v", err)
		}
		if dateAfter != dateBefore {
			t.Fatalf("member moved to a different day: %s -> %s", dateBefore, dateAfter)
		}

		loc, _ := time.LoadLocation(zone)
		if got := start.In(loc).Format("15:04"); got != "16:30" {
			t.Fatalf("start time-of-day = %s, want 16:30", got)
		}
		if got := end.In(loc).Format("15:04"); got != "17:30" {
			t.Fatalf("end time-of-day = %s, want 17:30", got)
		}
		if !end.After(start) {
			t.Fatal("end must stay after start")
		}
	}
}

func TestShiftToClock_DefaultZoneIsUTC(t *testing.T) {
	stored, _ := time.Parse(time.RFC3339, "2025-05-01T23:30:00Z")

	start, _, err := ShiftToClock(stored, "08:00", "09:00", "")
	if err != nil {
		t.Fatalf("ShiftToClock: %v", err)
	}
	want, _ := time.Parse(time.RFC3339, "2025-05-01T08:00:00Z")
	if !start.Equal(want) {
		t.Fatalf("start = %s, want %s", start, want)
	}
}

func TestShiftToClock_InvalidInputs(t *testing.T) {
	stored := time.Now().UTC()
	if _, _, err := ShiftToClock(stored, "not-a-time", "10:00", "UTC"); err == nil {
		t.Fatal("expected error for bad start clock")
	}
	if _, _, err := ShiftToClock(stored, "09:00", "10:00", "Nowhere/Zone"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}
