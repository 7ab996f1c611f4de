package service

import (
	"reflect"
	"testing"
)

func TestIntersect(t *testing.T) {
	t.Run("caller {A,B,C} with student {B,C,D} -> {B,C}", func(t *testing.T) {
		caller := ToIDSet([]string{"a", "b", "c"})
		got := Intersect([]string{"b", "c", "d"}, caller)
		if !reflect.DeepEqual(got, []string{"b", "c"}) {
			t.Fatalf("intersection = %v, want [b c]", got)
		}
	})

	t.Run("normalization: case and whitespace", func(t *testing.T) {
		caller := ToIDSet([]string{" ABC-1 ", "def-2"})
		got := Intersect([]string{"abc-1", "DEF-2", "ghi-3"}, caller)
		if !reflect.DeepEqual(got, []string{"abc-1", "def-2"}) {
			t.Fatalf("intersection = %v", got)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		caller := ToIDSet([]string{"a"})
		got := Intersect([]string{"a", "A", " a "}, caller)
		if !reflect.DeepEqual(got, []string{"a"}) {
			t.Fatalf("intersection = %v", got)
		}
	})

	t.Run("empty sides", func(t *testing.T) {
		if got := Intersect(nil, ToIDSet([]string{"a"})); len(got) != 0 {
			t.Fatalf("nil roster should intersect empty, got %v", got)
		}
		if got := Intersect([]string{"a"}, ToIDSet(nil)); len(got) != 0 {
			t.Fatalf("empty set should intersect empty, got %v", got)
		}
	})
}

func TestUnion(t *testing.T) {
	got := Union([]string{"a", "b"}, []string{"b", "c"}, nil, []string{"a"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("union = %v, want [a b c]", got)
	}
}

func TestSplitIDList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , , B ,", []string{"a", "b"}},
		{"a,a,a", []string{"a"}},
		{"a,B,b, A ,c", []string{"a", "b", "c"}},
		{"", nil},
		{",,", nil},
	}
	for _, tc := range cases {
		got := SplitIDList(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitIDList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPartition(t *testing.T) {
	loaded := func(ids ...string) map[string]struct{} {
		m := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			m[id] = struct{}{}
		}
		return m
	}

	t.Run("student with no shared classes still gets an entry", func(t *testing.T) {
		// caller shares {A} with S1 and nothing with S2
		got := Partition(
			[]string{"s1", "s2"},
			map[string][]string{"s1": {"a"}, "s2": {}},
			loaded("a"),
		)
		want := []StudentClasses{
			{StudentID: "s1", ClassIDs: []string{"a"}},
			{StudentID: "s2", ClassIDs: []string{}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Partition = %v, want %v", got, want)
		}
		if len(got) != 2 {
			t.Fatalf("total students = %d, want 2", len(got))
		}
	})

	t.Run("date-filtered load drops IDs from every student", func(t *testing.T) {
		// the batched load returned only b; a fell outside the range
		got := Partition(
			[]string{"s1", "s2"},
			map[string][]string{"s1": {"a", "b"}, "s2": {"a"}},
			loaded("b"),
		)
		want := []StudentClasses{
			{StudentID: "s1", ClassIDs: []string{"b"}},
			{StudentID: "s2", ClassIDs: []string{}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Partition = %v, want %v", got, want)
		}
	})

	t.Run("request order is preserved", func(t *testing.T) {
		got := Partition(
			[]string{"s3", "s1", "s2"},
			map[string][]string{"s1": {"a"}, "s2": {"b"}, "s3": {"c"}},
			loaded("a", "b", "c"),
		)
		order := []string{got[0].StudentID, got[1].StudentID, got[2].StudentID}
		if !reflect.DeepEqual(order, []string{"s3", "s1", "s2"}) {
			t.Fatalf("order = %v", order)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Partition(nil, nil, nil); len(got) != 0 {
			t.Fatalf("Partition(nil) = %v, want empty", got)
		}
	})
}
