package controller

import (
	"testing"

	"github.com/google/uuid"

	m "upkraft_backend/internals/features/tutoring/classes/model"
)

func TestCourseIDFromReferer(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name    string
		referer string
		want    uuid.UUID
		ok      bool
	}{
		{"path segment", "https://app.upkraft.dev/courses/" + id.String(), id, true},
		{"singular segment", "https://app.upkraft.dev/course/" + id.String() + "/schedule", id, true},
		{"query param", "https://app.upkraft.dev/schedule?course_id=" + id.String(), id, true},
		{"camelCase query param", "https://app.upkraft.dev/schedule?courseId=" + id.String(), id, true},
		{"no course anywhere", "https://app.upkraft.dev/dashboard", uuid.Nil, false},
		{"segment not a uuid", "https://app.upkraft.dev/courses/piano-101", uuid.Nil, false},
		{"empty referer", "", uuid.Nil, false},
		{"garbage url", "http://%zz", uuid.Nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := courseIDFromReferer(tc.referer)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("id = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestResolveDeleteAction(t *testing.T) {
	rid := "rec-2026-01"
	series := &m.ClassModel{ClassID: uuid.New(), ClassRecurrenceID: &rid}
	standalone := &m.ClassModel{ClassID: uuid.New()}

	cases := []struct {
		name       string
		wantSeries bool
		live       *m.ClassModel
		tombstone  *m.ClassModel
		want       deleteAction
	}{
		{"plain delete of a live class", false, standalone, nil, deleteActionSingle},
		{"plain delete of a live series member", false, series, nil, deleteActionSingle},
		{"delete_type=all on a series member", true, series, nil, deleteActionSeries},

		// delete_type=all without a recurrence key downgrades, never errors
		{"delete_type=all on a standalone class downgrades", true, standalone, nil, deleteActionSingle},

		// only a soft-deleted series row left: still a series delete, so a
		// repeated call succeeds and reports zero affected
		{"repeat series delete via tombstone", true, nil, series, deleteActionSeries},

		{"tombstone without recurrence key is gone", true, nil, standalone, deleteActionNotFound},
		{"plain delete ignores tombstones", false, nil, series, deleteActionNotFound},
		{"nothing found at all", true, nil, nil, deleteActionNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveDeleteAction(tc.wantSeries, tc.live, tc.tombstone); got != tc.want {
				t.Fatalf("resolveDeleteAction = %d, want %d", got, tc.want)
			}
		})
	}
}
