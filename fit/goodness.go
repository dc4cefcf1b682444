package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ResidualSumSquares calculates the residual sum of squares (RSS), the
// quantity minimized by least-squares fitting.
//
// Formula: RSS = Σ(observed - predicted)²
//
// Both slices must have the same length.
func ResidualSumSquares(observed, predicted []float64) float64 {
	rss := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		rss += diff * diff
	}

	return rss
}

// RSquared calculates the coefficient of determination (R²).
//
// R² measures the proportion of variance in the observed values that is
// explained by the model. Values range from 0 to 1 for reasonable fits,
// where 1 indicates a perfect fit; a model worse than the observed mean
// yields a negative value.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// Returns 0 for empty input or when the observed values have zero variance.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - ResidualSumSquares(observed, predicted)/ssTot
}

// RMSE calculates the root mean square error.
//
// RMSE measures the standard deviation of the residuals in the same units as
// the observed values. Lower values indicate better fit.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
//
// Returns 0 for empty input.
func RMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return math.Sqrt(ResidualSumSquares(observed, predicted) / float64(len(observed)))
}
