package controller

import (
	"testing"
	"time"
)

func TestParseRangeBound(t *testing.T) {
	t.Run("absent bound is nil", func(t *testing.T) {
		got, err := parseRangeBound("  ", false)
		if err != nil || got != nil {
			t.Fatalf("blank bound: got %v, err %v", got, err)
		}
	})

	t.Run("lower date bound starts at midnight", func(t *testing.T) {
		got, err := parseRangeBound("2025-03-10", false)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		want, _ := time.Parse(time.RFC3339, "2025-03-10T00:00:00Z")
		if !got.Equal(want) {
			t.Fatalf("lower = %s, want %s", got, want)
		}
	})

	t.Run("upper date bound covers the whole day", func(t *testing.T) {
		got, err := parseRangeBound("2025-03-10", true)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		endOfDay, _ := time.Parse(time.RFC3339, "2025-03-10T23:59:59Z")
		nextDay, _ := time.Parse(time.RFC3339, "2025-03-11T00:00:00Z")
		if got.Before(endOfDay) || !got.Before(nextDay) {
			t.Fatalf("upper = %s, want inside (%s, %s)", got, endOfDay, nextDay)
		}
	})

	t.Run("rfc3339 taken as-is", func(t *testing.T) {
		got, err := parseRangeBound("2025-03-10T15:30:00+05:30", true)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		want, _ := time.Parse(time.RFC3339, "2025-03-10T10:00:00Z")
		if !got.Equal(want) {
			t.Fatalf("bound = %s, want %s", got, want)
		}
	})

	t.Run("invalid input errors", func(t *testing.T) {
		if _, err := parseRangeBound("next tuesday", false); err == nil {
			t.Fatal("expected error")
		}
	})
}
