package curvefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/curvefit/model"
)

// TestFit verifies the wrapper recovers exact linear coefficients.
func TestFit(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = -5 + 3*x
	}

	fitted, err := Fit(model.TypeLinear, xs, ys)
	require.NoError(t, err)
	require.NotNil(t, fitted)
	require.Equal(t, model.TypeLinear, fitted.Type)
	require.InDelta(t, -5, fitted.Coefficients[0], 1e-9)
	require.InDelta(t, 3, fitted.Coefficients[1], 1e-9)
	require.InDelta(t, 1, fitted.RSquared, 1e-12)
}

// TestFitBest verifies best-model selection over the full candidate set.
func TestFitBest(t *testing.T) {
	xs := make([]float64, 30)
	ys := make([]float64, 30)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 9 * math.Exp(-0.25*xs[i])
	}

	result, err := FitBest(xs, ys)
	require.NoError(t, err)
	require.NotNil(t, result.BestFit)
	require.NotEmpty(t, result.AllModels)
	require.Same(t, result.BestFit, result.AllModels[0])

	// Candidates are ranked by R², best first.
	for i := 1; i < len(result.AllModels); i++ {
		require.GreaterOrEqual(t, result.AllModels[i-1].RSquared, result.AllModels[i].RSquared)
	}
}

// TestModel verifies name-based model construction.
func TestModel(t *testing.T) {
	m, err := Model("logistic", 0.01, 500)
	require.NoError(t, err)

	y, err := m.Eval(500)
	require.NoError(t, err)
	require.InDelta(t, 0.5, y, 1e-12)

	_, err = Model("sinusoid", 1, 2)
	require.Error(t, err)
}
