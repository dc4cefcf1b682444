// Package fit provides least-squares fitting of the model functions in the
// model package to observed (x, y) data.
//
// Linearizable models (linear, quadratic, cubic, logarithmic) are solved in
// closed form: polynomials through a Vandermonde/QR least-squares solve and
// the rest through simple linear regression on transformed variables. The
// remaining models (growth, decay, plateau, logistic, double-decay) are fitted
// iteratively with a damped Gauss-Newton (Levenberg-Marquardt) loop seeded by
// linearization-based initial guesses.
//
// # Basic Usage
//
// Fit a single named model:
//
//	fitted, err := fit.Fit(model.TypeDecay, xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (R²=%.4f)\n", fitted.Formula, fitted.RSquared)
//	y, _ := fitted.Model.Eval(12.5)
//
// # Model Selection
//
// Fit every candidate model and pick the best by R²:
//
//	result, err := fit.FitAll(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Best: %s\n", result.BestFit.Type)
//	for _, m := range result.AllModels {
//	    fmt.Printf("%s: R²=%.4f RMSE=%.4f\n", m.Type, m.RSquared, m.RMSE)
//	}
//
// Candidates whose domain rejects the data (for example the logarithmic model
// when some x <= 0) are skipped rather than failing the whole analysis.
//
// # Options
//
// The iterative solver is configurable through functional options:
//
//	fitted, err := fit.Fit(model.TypeLogistic, xs, ys,
//	    fit.WithMaxIterations(500),
//	    fit.WithTolerance(1e-12),
//	    fit.WithInitialGuess(0.02, 480),
//	)
//
// # Fit Quality
//
// Every fitted model reports R² (coefficient of determination), RMSE (root
// mean square error) and RSS (residual sum of squares). FitAll ranks the
// candidates by R², best first.
package fit
