// Package priority holds the pure scoring and ordering rules for tasks.
package priority

import "task-tracker/internal/model"

// Rating coefficients. Importance and urgency dominate.
const (
	importanceFactor       = 2.6
	urgencyFactor          = 2.1
	personalInterestFactor = 1.6
	executionTimeFactor    = 1.6
	complexityFactor       = 1.1
	concentrationFactor    = 1.0
	weightScale            = 10.0
)

// ComputeWeight returns the weighted score of r. Ratings are expected to be
// clamped already; for clamped input the result lies in [1, 10]. No rounding.
func ComputeWeight(r model.Ratings) float64 {
	sum := float64(r.Importance)*importanceFactor +
		float64(r.Urgency)*urgencyFactor +
		float64(r.PersonalInterest)*personalInterestFactor +
		float64(r.ExecutionTime)*executionTimeFactor +
		float64(r.Complexity)*complexityFactor +
		float64(r.Concentration)*concentrationFactor
	return sum / weightScale
}
