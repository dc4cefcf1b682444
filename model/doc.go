// Package model provides a library of named mathematical model functions used
// as curve-fitting targets.
//
// Each model is a pure function y = f(x; coefficients) with a fixed-arity,
// ordered coefficient list. Models hold their coefficients and nothing else:
// evaluation has no side effects, and the same model value may be evaluated
// concurrently from multiple goroutines.
//
// # Model Types
//
// The package defines nine model families:
//
//   - **Linear**: y = a + b*x
//   - **Quadratic**: y = a0 + a1*x + a2*x²
//   - **Cubic**: y = a0 + a1*x + a2*x² + a3*x³
//   - **Growth**: y = a * e^(b*x)
//   - **Decay**: y = a * e^(-b*x)
//   - **Plateau**: y = a * (1 - e^(-b*x)), growth to an asymptote
//   - **DoubleDecay**: y = a*p*e^(-b1*x) + a*(1-p)*e^(-b2*x)
//   - **Logarithmic**: y = a + b*ln(x), defined for x > 0 only
//   - **Logistic**: y = 1 / (1 + e^(-b*(x - m)))
//
// # Basic Usage
//
// Construct a model directly and evaluate it:
//
//	m := model.NewLinear(-5, 3)
//	y, _ := m.Eval(2) // y == 1
//
// Or construct one dynamically by type and coefficients:
//
//	m, err := model.New(model.TypeLogistic, []float64{0.01, 500})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, _ := m.Eval(500) // y == 0.5
//
// Evaluate over a whole sample:
//
//	ys, err := model.EvalAll(m, xs)
//
// # Domain Errors
//
// The logarithmic model is the only partial function in the package: it
// returns [ErrDomain] for x <= 0. Every other model is total over the reals;
// extreme coefficient or input values may produce ±Inf or NaN, which is
// ordinary floating-point behavior and not reported as an error.
package model
