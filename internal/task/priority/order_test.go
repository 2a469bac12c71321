package priority

import (
	"slices"
	"testing"

	"task-tracker/internal/model"
)

func taskWith(id int64, imp int, completed, blocked bool) model.Task {
	r := model.UniformRatings(1)
	r.Importance = imp
	return model.Task{ID: id, Ratings: r, Completed: completed, Blocked: blocked}
}

func ids(tasks []model.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"asc": Asc, "ASC": Asc, "Asc": Asc,
		"desc": Desc, "": Desc, "ascending": Desc, "up": Desc,
	}
	for in, want := range tests {
		if got := ParseDirection(in); got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range []SortKey{SortByWeight, SortByImportance, SortByUrgency, SortByPersonalInterest,
		SortByExecutionTime, SortByComplexity, SortByConcentration} {
		if got := ParseSortKey(string(k)); got != k {
			t.Errorf("ParseSortKey(%q) = %q", k, got)
		}
	}
	if got := ParseSortKey("title"); got != SortNone {
		t.Errorf("ParseSortKey(title) = %q, want none", got)
	}
}

func TestOrder(t *testing.T) {
	t.Run("completed tasks go last", func(t *testing.T) {
		a := taskWith(1, 10, false, false)
		b := taskWith(2, 1, true, false)
		c := taskWith(3, 5, false, false)

		got := ids(Order([]model.Task{a, b, c}, SortByWeight, Desc))
		if want := []int64{1, 3, 2}; !slices.Equal(got, want) {
			t.Errorf("Order() = %v, want %v", got, want)
		}
	})

	t.Run("partition holds for every key and direction", func(t *testing.T) {
		in := []model.Task{
			taskWith(1, 9, true, false),
			taskWith(2, 1, false, true),
			taskWith(3, 5, true, true),
			taskWith(4, 7, false, false),
		}
		keys := []SortKey{SortByWeight, SortByImportance, SortByUrgency, SortNone, ParseSortKey("bogus")}
		for _, k := range keys {
			for _, d := range []Direction{Asc, Desc} {
				out := Order(in, k, d)
				seenCompleted := false
				for _, task := range out {
					if task.Completed {
						seenCompleted = true
					} else if seenCompleted {
						t.Fatalf("key=%q dir=%v: incomplete after completed: %v", k, d, ids(out))
					}
				}
			}
		}
	})

	t.Run("ascending", func(t *testing.T) {
		in := []model.Task{taskWith(1, 8, false, false), taskWith(2, 2, false, false), taskWith(3, 5, false, false)}
		got := ids(Order(in, SortByImportance, Asc))
		if want := []int64{2, 3, 1}; !slices.Equal(got, want) {
			t.Errorf("Order() = %v, want %v", got, want)
		}
	})

	// Current behaviour couples the blocked tie-break to the direction.
	t.Run("tie-break follows direction", func(t *testing.T) {
		blocked := taskWith(1, 5, false, true)
		free := taskWith(2, 5, false, false)
		in := []model.Task{blocked, free}

		if got := ids(Order(in, SortByWeight, Desc)); !slices.Equal(got, []int64{2, 1}) {
			t.Errorf("desc = %v, want unblocked first", got)
		}
		if got := ids(Order(in, SortByWeight, Asc)); !slices.Equal(got, []int64{1, 2}) {
			t.Errorf("asc = %v, want blocked first", got)
		}
	})

	t.Run("weight key is recomputed from ratings", func(t *testing.T) {
		low := taskWith(1, 1, false, false)
		low.Weight = 100
		high := taskWith(2, 10, false, false)
		got := ids(Order([]model.Task{low, high}, SortByWeight, Desc))
		if !slices.Equal(got, []int64{2, 1}) {
			t.Errorf("Order() = %v, want [2 1]", got)
		}
	})

	t.Run("unknown key keeps order inside partitions", func(t *testing.T) {
		in := []model.Task{
			taskWith(1, 1, true, false),
			taskWith(2, 9, false, false),
			taskWith(3, 3, true, false),
			taskWith(4, 2, false, true),
		}
		got := ids(Order(in, ParseSortKey("nope"), Asc))
		if want := []int64{2, 4, 1, 3}; !slices.Equal(got, want) {
			t.Errorf("Order() = %v, want %v", got, want)
		}
	})

	t.Run("stable for fully equal keys", func(t *testing.T) {
		in := []model.Task{taskWith(1, 5, false, false), taskWith(2, 5, false, false), taskWith(3, 5, false, false)}
		first := ids(Order(in, SortByWeight, Desc))
		second := ids(Order(in, SortByWeight, Desc))
		if !slices.Equal(first, []int64{1, 2, 3}) || !slices.Equal(first, second) {
			t.Errorf("unstable order: %v then %v", first, second)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []model.Task{taskWith(1, 1, false, false), taskWith(2, 9, false, false)}
		_ = Order(in, SortByImportance, Desc)
		if !slices.Equal(ids(in), []int64{1, 2}) {
			t.Errorf("input mutated: %v", ids(in))
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := Order(nil, SortByWeight, Desc); got == nil || len(got) != 0 {
			t.Errorf("Order(nil) = %v, want empty slice", got)
		}
	})
}
