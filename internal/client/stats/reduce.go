package stats

import (
	"slices"

	"github.com/iudanet/progressboard/internal/models"
)

// LatestPerProject keeps the newest record of every distinct path. Groups
// come out in first-seen order; on equal timestamps the earlier record wins.
func LatestPerProject[T models.Record](records []T) []T {
	index := make(map[string]int, len(records))
	out := make([]T, 0, len(records))

	for _, r := range records {
		i, seen := index[r.ProjectPath()]
		if !seen {
			index[r.ProjectPath()] = len(out)
			out = append(out, r)
			continue
		}
		if r.Timestamp().After(out[i].Timestamp()) {
			out[i] = r
		}
	}
	return out
}

// TopN returns up to n records ordered newest first. The sort is stable.
func TopN[T models.Record](records []T, n int) []T {
	sorted := SortDescending(records)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortDescending returns a copy ordered newest first.
func SortDescending[T models.Record](records []T) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return b.Timestamp().Compare(a.Timestamp())
	})
	return out
}

// SortAscending returns a copy ordered oldest first.
func SortAscending[T models.Record](records []T) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return a.Timestamp().Compare(b.Timestamp())
	})
	return out
}

// paths collects the distinct paths of records.
func paths[T models.Record](records []T) map[string]struct{} {
	set := make(map[string]struct{}, len(records))
	for _, r := range records {
		set[r.ProjectPath()] = struct{}{}
	}
	return set
}
