package fit

import (
	"math"
	"testing"
)

// TestResidualSumSquares verifies RSS against hand-computed values.
func TestResidualSumSquares(t *testing.T) {
	observed := []float64{1, 2, 3, 4}
	predicted := []float64{1, 1, 3, 6}

	// Residuals: 0, 1, 0, -2 -> RSS = 5
	if rss := ResidualSumSquares(observed, predicted); rss != 5 {
		t.Errorf("RSS = %g, want 5", rss)
	}

	if rss := ResidualSumSquares(nil, nil); rss != 0 {
		t.Errorf("RSS of empty = %g, want 0", rss)
	}
}

// TestRSquared verifies R² boundary and reference values.
func TestRSquared(t *testing.T) {
	observed := []float64{2, 4, 6, 8}

	t.Run("perfect fit", func(t *testing.T) {
		if r2 := RSquared(observed, observed); r2 != 1 {
			t.Errorf("R² = %g, want 1", r2)
		}
	})

	t.Run("mean predictor scores zero", func(t *testing.T) {
		mean := []float64{5, 5, 5, 5}
		if r2 := RSquared(observed, mean); math.Abs(r2) > 1e-12 {
			t.Errorf("R² = %g, want 0", r2)
		}
	})

	t.Run("worse than mean is negative", func(t *testing.T) {
		bad := []float64{8, 6, 4, 2}
		if r2 := RSquared(observed, bad); r2 >= 0 {
			t.Errorf("R² = %g, want negative", r2)
		}
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		if r2 := RSquared(nil, nil); r2 != 0 {
			t.Errorf("R² of empty = %g, want 0", r2)
		}

		// Zero variance in the observations.
		flat := []float64{3, 3, 3}
		if r2 := RSquared(flat, flat); r2 != 0 {
			t.Errorf("R² of constant = %g, want 0", r2)
		}
	})
}

// TestRMSE verifies RMSE against hand-computed values.
func TestRMSE(t *testing.T) {
	observed := []float64{1, 2, 3, 4}
	predicted := []float64{2, 1, 4, 3}

	// Every residual is ±1 -> RMSE = 1
	if rmse := RMSE(observed, predicted); math.Abs(rmse-1) > 1e-12 {
		t.Errorf("RMSE = %g, want 1", rmse)
	}

	if rmse := RMSE(nil, nil); rmse != 0 {
		t.Errorf("RMSE of empty = %g, want 0", rmse)
	}
}
