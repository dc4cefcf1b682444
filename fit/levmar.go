package fit

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/curvefit/model"
)

const (
	// initialDamping is the starting Levenberg-Marquardt damping factor.
	initialDamping = 1e-3
	// maxDamping bounds the damping escalation; beyond it the current
	// coefficients are accepted as the best reachable point.
	maxDamping = 1e12
	// dampingStep scales the damping factor up on rejected steps and down
	// on accepted ones.
	dampingStep = 10.0
	// jacobianStep scales the forward-difference step, sqrt of float64 epsilon.
	jacobianStep = 1.4901161193847656e-08
)

// levenbergMarquardt refines the coefficients of m in place to minimize the
// residual sum of squares against (xs, ys).
//
// The solver is the classic damped Gauss-Newton iteration: at each step it
// solves (JᵀJ + λ·diag(JᵀJ))·δ = Jᵀr for the coefficient update δ, where J
// is the forward-difference Jacobian of the model and r the residual vector.
// Rejected steps raise the damping λ, accepted steps lower it. The loop stops
// when the relative RSS improvement drops below cfg.Tolerance, the damping is
// exhausted, or cfg.MaxIterations is reached.
//
// It returns ErrNoConvergence when the final RSS is not finite.
func levenbergMarquardt(m model.Model, xs, ys []float64, cfg Config) error {
	n := len(xs)
	p := len(m.Coefficients())

	coeffs := slices.Clone(m.Coefficients())
	resid := make([]float64, n)
	trial := make([]float64, p)
	jac := mat.NewDense(n, p, nil)

	rss, err := residuals(m, xs, ys, resid)
	if err != nil {
		return err
	}

	lambda := initialDamping

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		if err := numericJacobian(m, xs, coeffs, jac); err != nil {
			return err
		}

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)

		jtr := mat.NewVecDense(p, nil)
		jtr.MulVec(jac.T(), mat.NewVecDense(n, resid))

		accepted := false
		for lambda <= maxDamping {
			var damped mat.Dense
			damped.CloneFrom(&jtj)
			for j := 0; j < p; j++ {
				damped.Set(j, j, jtj.At(j, j)*(1+lambda))
			}

			var delta mat.VecDense
			if err := delta.SolveVec(&damped, jtr); err != nil {
				lambda *= dampingStep
				continue
			}

			for j := 0; j < p; j++ {
				trial[j] = coeffs[j] + delta.AtVec(j)
			}
			if err := m.SetCoefficients(trial); err != nil {
				return err
			}

			trialRSS, err := residuals(m, xs, ys, resid)
			if err == nil && trialRSS < rss {
				copy(coeffs, trial)
				converged := rss-trialRSS <= cfg.Tolerance*(trialRSS+cfg.Tolerance)
				rss = trialRSS
				lambda /= dampingStep
				accepted = true

				if converged {
					return finishLM(m, coeffs, rss)
				}

				break // recompute the Jacobian at the new point
			}

			// Rejected step: raise damping and retry from the same point.
			lambda *= dampingStep
		}

		if !accepted {
			break // damping exhausted; keep the best point found so far
		}
	}

	return finishLM(m, coeffs, rss)
}

// finishLM restores the best coefficients and reports non-finite outcomes.
func finishLM(m model.Model, coeffs []float64, rss float64) error {
	if err := m.SetCoefficients(coeffs); err != nil {
		return err
	}
	if math.IsNaN(rss) || math.IsInf(rss, 0) {
		return ErrNoConvergence
	}

	return nil
}

// residuals fills resid with ys - m(xs) and returns the residual sum of squares.
func residuals(m model.Model, xs, ys, resid []float64) (float64, error) {
	rss := 0.0
	for i, x := range xs {
		y, err := m.Eval(x)
		if err != nil {
			return 0, err
		}

		r := ys[i] - y
		resid[i] = r
		rss += r * r
	}

	return rss, nil
}

// numericJacobian fills jac with the forward-difference Jacobian of m at
// coeffs: jac[i][j] = ∂f(x_i)/∂coeff_j. The model's coefficients are restored
// before returning.
func numericJacobian(m model.Model, xs []float64, coeffs []float64, jac *mat.Dense) error {
	if err := m.SetCoefficients(coeffs); err != nil {
		return err
	}

	base, err := model.EvalAll(m, xs)
	if err != nil {
		return err
	}

	perturbed := slices.Clone(coeffs)
	for j := range coeffs {
		h := jacobianStep * math.Max(math.Abs(coeffs[j]), 1)
		perturbed[j] = coeffs[j] + h
		if err := m.SetCoefficients(perturbed); err != nil {
			return err
		}

		for i, x := range xs {
			y, err := m.Eval(x)
			if err != nil {
				return err
			}
			jac.Set(i, j, (y-base[i])/h)
		}

		perturbed[j] = coeffs[j]
	}

	return m.SetCoefficients(coeffs)
}
