package filtering

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// matchesSearch reports whether any of the textual fields contains the
// query, case-insensitively.
func matchesSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// equalFold is a case-insensitive exact match for categorical facets.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// windowStart resolves a date range facet to its lower bound. The second
// return is false when the facet contributes no constraint.
func windowStart(dateRange string, now time.Time) (time.Time, bool) {
	switch dateRange {
	case RangeToday:
		// Local midnight, not a trailing 24h window.
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case RangeWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case RangeMonth:
		return now.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

// inWindow reports whether t falls within [start, now].
func inWindow(t, start, now time.Time) bool {
	return !t.Before(start) && !t.After(now)
}

// apply returns the records satisfying every predicate, in input order.
// The input slice is left untouched.
func apply[T any](list []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(list))
next:
	for _, rec := range list {
		for _, pred := range preds {
			if !pred(rec) {
				continue next
			}
		}
		out = append(out, rec)
	}
	return out
}

// sortStable orders list by cmp (reversed when desc), breaking ties by ID
// ascending so repeated calls on identical input produce identical output.
// Tie-breaking is never reversed.
func sortStable[T any](list []T, cmp func(a, b T) int, desc bool, id func(T) int64) {
	slices.SortStableFunc(list, func(a, b T) int {
		c := cmp(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		switch ai, bi := id(a), id(b); {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	})
}

// newCollator builds a locale-aware string comparer. Collators buffer state
// between calls, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}

func compareTimes(a, b time.Time) int {
	return a.Compare(b)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
