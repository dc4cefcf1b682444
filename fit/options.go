package fit

import (
	"fmt"
	"slices"

	"github.com/arloliu/curvefit/internal/options"
	"github.com/arloliu/curvefit/model"
)

// Config holds configuration for the fitting entry points.
type Config struct {
	// MaxIterations caps the iterative solver's outer iterations.
	MaxIterations int
	// Tolerance is the relative RSS improvement below which the iterative
	// solver stops.
	Tolerance float64
	// InitialGuess overrides the heuristic start point of the iterative
	// solver. Ignored by closed-form fits.
	InitialGuess []float64
	// Candidates restricts the model types FitAll considers.
	// Empty means every model type.
	Candidates []model.ModelType
}

// defaultConfig returns the default fitting configuration.
func defaultConfig() Config {
	return Config{
		MaxIterations: 200,
		Tolerance:     1e-10,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithMaxIterations sets the iteration cap of the iterative solver.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("max iterations must be positive, got %d", n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithTolerance sets the relative RSS convergence tolerance of the iterative
// solver.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *Config) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %g", tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithInitialGuess sets the start coefficients of the iterative solver,
// replacing the heuristic guess. The number of coefficients must match the
// fitted model's arity; FitAll applies the guess only to candidates whose
// arity matches.
func WithInitialGuess(coeffs ...float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.InitialGuess = slices.Clone(coeffs)
	})
}

// WithCandidates restricts the candidate model types considered by FitAll.
func WithCandidates(types ...model.ModelType) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Candidates = slices.Clone(types)
	})
}
