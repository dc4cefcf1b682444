// Package curvefit provides least-squares fitting of a small library of named
// mathematical model functions to observed data.
//
// The module is split into two packages plus this convenience wrapper:
//
//   - model: pure, stateless model functions (linear, polynomial, exponential
//     growth/decay, growth-to-plateau, double exponential decay, logarithmic,
//     logistic) with fixed-arity coefficient lists
//   - fit: closed-form and iterative least-squares solvers, goodness-of-fit
//     metrics (R², RMSE, RSS) and automatic best-model selection
//
// # Basic Usage
//
// Fit a known model family to data:
//
//	import "github.com/arloliu/curvefit"
//
//	fitted, err := curvefit.Fit(model.TypeDecay, xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (R²=%.4f)\n", fitted.Formula, fitted.RSquared)
//
// Let the library pick the best-fitting family:
//
//	result, err := curvefit.FitBest(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Best model: %s\n", result.BestFit.Type)
//
// Evaluate a model directly without fitting:
//
//	m, err := curvefit.Model("logistic", 0.01, 500)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, _ := m.Eval(500) // 0.5
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fit and
// model packages with default settings. For solver options (iteration caps,
// tolerances, initial guesses, candidate restriction), use the fit package
// directly.
package curvefit

import (
	"github.com/arloliu/curvefit/fit"
	"github.com/arloliu/curvefit/model"
)

// Fit fits the given model type to the observed (xs, ys) data with default
// solver settings.
func Fit(modelType model.ModelType, xs, ys []float64) (*fit.Fitted, error) {
	return fit.Fit(modelType, xs, ys)
}

// FitBest fits every model family to the data and returns the candidates
// ranked by R², best first.
func FitBest(xs, ys []float64) (*fit.Result, error) {
	return fit.FitAll(xs, ys)
}

// Model creates a model by name and coefficients without fitting, e.g.
// Model("decay", 10, 0.1) for y = 10 * e^(-0.1*x).
func Model(name string, coeffs ...float64) (model.Model, error) {
	return model.NewFromString(name, coeffs)
}
