// file: internals/features/tutoring/calendar/service/intersect.go
package service

import "strings"

/* =========================
   Roster set algebra
   =========================

   Calendar queries intersect ID rosters in memory first, then load the
   matching class rows in one batched query. IDs are compared as
   trimmed, lower-cased strings regardless of how the source column
   rendered them. */

// NormalizeID canonicalizes one roster entry for comparison.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ToIDSet builds a membership set of normalized IDs.
func ToIDSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if n := NormalizeID(id); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Intersect returns the members of ids that are present in set,
// normalized, deduplicated, in ids order.
func Intersect(ids []string, set map[string]struct{}) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		n := NormalizeID(id)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		if _, ok := set[n]; ok {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// Union folds several ID lists into one deduplicated list.
func Union(lists ...[]string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, list := range lists {
		for _, id := range list {
			n := NormalizeID(id)
			if n == "" {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// SplitIDList parses a comma-separated ID list, dropping blanks and
// repeats: one requested student is one result entry, however many
// times the client named them.
func SplitIDList(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		n := NormalizeID(p)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

/* =========================
   Bulk re-partition
========================= */

// StudentClasses is one bulk-query result entry: the class IDs a
// single student shares with the caller, possibly none.
type StudentClasses struct {
	StudentID string
	ClassIDs  []string
}

// Partition rebuilds the per-student grouping after the single batched
// class load: for each student, in request order, keep only the
// intersected IDs the load actually returned. Every student gets an
// entry, even one contributing no classes.
func Partition(ordered []string, perStudent map[string][]string, loaded map[string]struct{}) []StudentClasses {
	out := make([]StudentClasses, 0, len(ordered))
	for _, sid := range ordered {
		entry := StudentClasses{StudentID: sid, ClassIDs: []string{}}
		for _, cid := range perStudent[sid] {
			if _, ok := loaded[cid]; ok {
				entry.ClassIDs = append(entry.ClassIDs, cid)
			}
		}
		out = append(out, entry)
	}
	return out
}
