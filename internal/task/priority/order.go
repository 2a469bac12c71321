package priority

import (
	"cmp"
	"slices"
	"strings"

	"task-tracker/internal/model"
)

// SortKey names the numeric attribute tasks are ordered by.
type SortKey string

const (
	SortByWeight           SortKey = "weight"
	SortByImportance       SortKey = "importance"
	SortByUrgency          SortKey = "urgency"
	SortByPersonalInterest SortKey = "personalInterest"
	SortByExecutionTime    SortKey = "executionTime"
	SortByComplexity       SortKey = "complexity"
	SortByConcentration    SortKey = "concentration"

	// SortNone keeps storage order inside each completion partition.
	SortNone SortKey = ""
)

// Direction is the sort direction.
type Direction int

const (
	Desc Direction = iota
	Asc
)

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// ParseSortKey maps s to a known key. Unknown values yield SortNone.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortByWeight, SortByImportance, SortByUrgency, SortByPersonalInterest,
		SortByExecutionTime, SortByComplexity, SortByConcentration:
		return k
	}
	return SortNone
}

// ParseDirection returns Asc for a case-insensitive "asc" and Desc otherwise.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "asc") {
		return Asc
	}
	return Desc
}

func (k SortKey) value(t model.Task) float64 {
	switch k {
	case SortByWeight:
		return ComputeWeight(t.Ratings)
	case SortByImportance:
		return float64(t.Ratings.Importance)
	case SortByUrgency:
		return float64(t.Ratings.Urgency)
	case SortByPersonalInterest:
		return float64(t.Ratings.PersonalInterest)
	case SortByExecutionTime:
		return float64(t.Ratings.ExecutionTime)
	case SortByComplexity:
		return float64(t.Ratings.Complexity)
	case SortByConcentration:
		return float64(t.Ratings.Concentration)
	}
	return 0
}

// Order returns a new slice with tasks sorted for display.
//
// Incomplete tasks always precede completed ones regardless of direction. Within a
// partition tasks are ordered by key in direction dir. Equal keys are broken
// by the blocked flag, which flips with the direction: Desc puts unblocked
// tasks first, Asc puts blocked tasks first. The sort is stable and the input
// slice is left untouched.
func Order(tasks []model.Task, key SortKey, dir Direction) []model.Task {
	out := slices.Clone(tasks)
	if out == nil {
		out = []model.Task{}
	}

	slices.SortStableFunc(out, func(a, b model.Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		if key == SortNone {
			return 0
		}

		c := cmp.Compare(key.value(a), key.value(b))
		if c == 0 {
			c = compareBool(b.Blocked, a.Blocked)
		}
		if dir == Desc {
			c = -c
		}
		return c
	})

	return out
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
