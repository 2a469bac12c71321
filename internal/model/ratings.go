package model

const (
	MinRating     = 1
	MaxRating     = 10
	DefaultRating = 5
)

// Ratings groups the six subjective task scores. ExecutionTime is inverted:
// 10 means the task is fastest to finish.
type Ratings struct {
	Importance       int
	Urgency          int
	PersonalInterest int
	ExecutionTime    int
	Complexity       int
	Concentration    int
}

// DefaultRatings returns ratings with every field at DefaultRating.
func DefaultRatings() Ratings {
	return UniformRatings(DefaultRating)
}

// UniformRatings returns ratings with every field set to v.
func UniformRatings(v int) Ratings {
	return Ratings{
		Importance:       v,
		Urgency:          v,
		PersonalInterest: v,
		ExecutionTime:    v,
		Complexity:       v,
		Concentration:    v,
	}
}
