package fit

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/curvefit/internal/options"
	"github.com/arloliu/curvefit/model"
)

var (
	// ErrInsufficientData is returned when the sample has fewer points than
	// the fitted model has coefficients.
	ErrInsufficientData = errors.New("insufficient data points")
	// ErrSingular is returned when the least-squares system is singular,
	// typically from degenerate data such as all x values being equal.
	ErrSingular = errors.New("singular least-squares system")
	// ErrNoConvergence is returned when the iterative solver ends with a
	// non-finite residual sum of squares.
	ErrNoConvergence = errors.New("solver failed to converge")
)

// Fit fits the given model type to the observed (xs, ys) data by least
// squares and returns the fitted model with its goodness-of-fit metrics.
//
// Linear, quadratic, cubic and logarithmic models are solved in closed form;
// the exponential family and the logistic model are refined iteratively from
// a linearization-based start point.
//
// Parameters:
//   - modelType: The model type to fit
//   - xs: Independent variable values
//   - ys: Observed dependent values, same length as xs
//   - opts: Optional solver configuration
//
// Example:
//
//	fitted, err := fit.Fit(model.TypeDecay, xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (R²=%.4f)\n", fitted.Formula, fitted.RSquared)
func Fit(modelType model.ModelType, xs, ys []float64, opts ...Option) (*Fitted, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := validateData(xs, ys); err != nil {
		return nil, err
	}

	return fitWithConfig(modelType, xs, ys, cfg)
}

// FitAll fits every candidate model type to the data and returns the
// candidates ranked by R², best first.
//
// By default all nine model types are candidates; WithCandidates restricts
// the set. Candidates that cannot be fitted, for example the logarithmic
// model when some x <= 0, are skipped rather than failing the analysis.
// FitAll fails only when no candidate can be fitted at all.
//
// Example:
//
//	result, err := fit.FitAll(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Best model: %s (R²=%.4f)\n", result.BestFit.Type, result.BestFit.RSquared)
func FitAll(xs, ys []float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := validateData(xs, ys); err != nil {
		return nil, err
	}

	candidates := cfg.Candidates
	if len(candidates) == 0 {
		candidates = model.AllTypes()
	}

	fitted := make([]*Fitted, 0, len(candidates))
	for _, modelType := range candidates {
		candidateCfg := cfg
		if len(candidateCfg.InitialGuess) != modelType.NumCoefficients() {
			candidateCfg.InitialGuess = nil
		}

		f, err := fitWithConfig(modelType, xs, ys, candidateCfg)
		if err != nil || math.IsNaN(f.RSquared) {
			continue
		}

		fitted = append(fitted, f)
	}

	if len(fitted) == 0 {
		return nil, errors.New("no candidate model could be fitted")
	}

	// Rank by R² (best first)
	slices.SortFunc(fitted, func(a, b *Fitted) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return &Result{
		BestFit:   fitted[0],
		AllModels: fitted,
	}, nil
}

// fitWithConfig dispatches to the appropriate solver for the model type.
func fitWithConfig(modelType model.ModelType, xs, ys []float64, cfg Config) (*Fitted, error) {
	if len(xs) < modelType.NumCoefficients() {
		return nil, fmt.Errorf("%s model needs at least %d points, got %d: %w",
			modelType, modelType.NumCoefficients(), len(xs), ErrInsufficientData)
	}

	switch modelType {
	case model.TypeLinear:
		return fitLinear(xs, ys)
	case model.TypeQuadratic:
		return fitPolynomial(xs, ys, 2)
	case model.TypeCubic:
		return fitPolynomial(xs, ys, 3)
	case model.TypeLogarithmic:
		return fitLogarithmic(xs, ys)
	case model.TypeGrowth, model.TypeDecay, model.TypePlateau, model.TypeDoubleDecay, model.TypeLogistic:
		return fitIterative(modelType, xs, ys, cfg)
	default:
		return nil, fmt.Errorf("unknown model type: %d", int(modelType))
	}
}

// validateData checks the shape and finiteness of the sample.
func validateData(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("mismatched data lengths: %d xs vs %d ys", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("empty data: %w", ErrInsufficientData)
	}

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			return fmt.Errorf("non-finite x value at index %d: %g", i, xs[i])
		}
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("non-finite y value at index %d: %g", i, ys[i])
		}
	}

	return nil
}

// fitLinear fits the linear model: y = a + b*x
func fitLinear(xs, ys []float64) (*Fitted, error) {
	a, b := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(a) || math.IsNaN(b) {
		return nil, fmt.Errorf("fitting linear model: %w", ErrSingular)
	}

	return makeFitted(model.NewLinear(a, b), xs, ys)
}

// fitLogarithmic fits the logarithmic model y = a + b*ln(x) by linear
// regression on (ln x, y). The whole sample must satisfy x > 0.
func fitLogarithmic(xs, ys []float64) (*Fitted, error) {
	logXs := make([]float64, len(xs))
	for i, x := range xs {
		if x <= 0 {
			return nil, fmt.Errorf("logarithmic fit requires x > 0, got x[%d] = %g: %w", i, x, model.ErrDomain)
		}
		logXs[i] = math.Log(x)
	}

	a, b := stat.LinearRegression(logXs, ys, nil, false)
	if math.IsNaN(a) || math.IsNaN(b) {
		return nil, fmt.Errorf("fitting logarithmic model: %w", ErrSingular)
	}

	return makeFitted(model.NewLogarithmic(a, b), xs, ys)
}

// fitPolynomial fits a polynomial of the given degree by a QR least-squares
// solve of the Vandermonde system.
func fitPolynomial(xs, ys []float64, degree int) (*Fitted, error) {
	a := vandermonde(xs, degree)
	b := mat.NewVecDense(len(ys), ys)
	c := mat.NewVecDense(degree+1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("fitting degree-%d polynomial: %w", degree, ErrSingular)
	}

	var m model.Model
	switch degree {
	case 2:
		m = model.NewQuadratic(c.AtVec(0), c.AtVec(1), c.AtVec(2))
	case 3:
		m = model.NewCubic(c.AtVec(0), c.AtVec(1), c.AtVec(2), c.AtVec(3))
	default:
		return nil, fmt.Errorf("unsupported polynomial degree: %d", degree)
	}

	return makeFitted(m, xs, ys)
}

// vandermonde builds the Vandermonde matrix of xs for the given degree.
func vandermonde(xs []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(xs), degree+1, nil)
	for i := range xs {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*xs[i] {
			v.Set(i, j, p)
		}
	}

	return v
}

// fitIterative fits the non-linearizable models with the damped Gauss-Newton
// solver, starting from the configured or heuristic initial guess.
func fitIterative(modelType model.ModelType, xs, ys []float64, cfg Config) (*Fitted, error) {
	start := cfg.InitialGuess
	if start == nil {
		start = initialGuess(modelType, xs, ys)
	} else if len(start) != modelType.NumCoefficients() {
		return nil, fmt.Errorf("%s model expects %d initial guess coefficients, got %d",
			modelType, modelType.NumCoefficients(), len(start))
	}

	m, err := model.New(modelType, start)
	if err != nil {
		return nil, err
	}

	if err := levenbergMarquardt(m, xs, ys, cfg); err != nil {
		return nil, fmt.Errorf("fitting %s model: %w", modelType, err)
	}

	return makeFitted(m, xs, ys)
}
