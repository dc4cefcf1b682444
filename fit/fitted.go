package fit

import (
	"fmt"
	"slices"

	"github.com/arloliu/curvefit/model"
)

// Fitted represents a fitted model with its goodness-of-fit metrics.
//
// Fields:
//   - Type: The model type that was fitted
//   - Coefficients: The fitted coefficients in the model's defined order
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error (lower is better)
//   - RSS: Residual sum of squares minimized by the fit
//   - Formula: Human-readable formula with the fitted coefficients
//   - Model: Ready-to-evaluate model instance with the fitted coefficients
type Fitted struct {
	// Type is the fitted model type.
	Type model.ModelType
	// Coefficients contains the fitted coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// RSS is the residual sum of squares.
	RSS float64
	// Formula is a human-readable representation of the fitted model.
	Formula string
	// Model is the concrete model instance carrying the fitted coefficients.
	Model model.Model
}

// String returns a string representation of the fitted model.
func (f *Fitted) String() string {
	return fmt.Sprintf("Fitted{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		f.Type, f.RSquared, f.RMSE, f.Formula)
}

// Result represents the outcome of fitting multiple candidate models.
//
// A Result contains the best-fit model selected by the highest R² value and
// all successfully fitted candidates for comparison, ranked best first.
type Result struct {
	// BestFit is the best-fit model (highest R²).
	BestFit *Fitted
	// AllModels contains all fitted candidates ranked by R² (best first).
	AllModels []*Fitted
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}", r.BestFit, len(r.AllModels))
}

// makeFitted evaluates m over xs and packages it with its fit metrics.
func makeFitted(m model.Model, xs, ys []float64) (*Fitted, error) {
	predicted, err := model.EvalAll(m, xs)
	if err != nil {
		return nil, err
	}

	return &Fitted{
		Type:         m.Type(),
		Coefficients: slices.Clone(m.Coefficients()),
		RSquared:     RSquared(ys, predicted),
		RMSE:         RMSE(ys, predicted),
		RSS:          ResidualSumSquares(ys, predicted),
		Formula:      m.Formula(),
		Model:        m,
	}, nil
}
