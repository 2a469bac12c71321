package priority

import "task-tracker/internal/model"

// Clamp pins v into [model.MinRating, model.MaxRating].
func Clamp(v int) int {
	return max(model.MinRating, min(model.MaxRating, v))
}

// ClampRatings clamps every field of r.
func ClampRatings(r model.Ratings) model.Ratings {
	return model.Ratings{
		Importance:       Clamp(r.Importance),
		Urgency:          Clamp(r.Urgency),
		PersonalInterest: Clamp(r.PersonalInterest),
		ExecutionTime:    Clamp(r.ExecutionTime),
		Complexity:       Clamp(r.Complexity),
		Concentration:    Clamp(r.Concentration),
	}
}

// Normalize clamps the task's ratings and recomputes its weight.
func Normalize(t model.Task) model.Task {
	t.Ratings = ClampRatings(t.Ratings)
	t.Weight = ComputeWeight(t.Ratings)
	return t
}
