package model

import (
	"fmt"
	"math"
)

// LinearModel implements the linear model: y = a + b*x
type LinearModel struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewLinear creates a new linear model with the given coefficients.
func NewLinear(a, b float64) *LinearModel {
	return &LinearModel{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Eval computes y = a + b*x. It never fails.
func (l *LinearModel) Eval(x float64) (float64, error) {
	return l.a + l.b*x, nil
}

// Type returns the model type.
func (l *LinearModel) Type() ModelType {
	return TypeLinear
}

// Coefficients returns the model coefficients [a, b].
func (l *LinearModel) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients updates the coefficients of the linear model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a + b*x.
func (l *LinearModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// Formula returns the formula with the current coefficients.
func (l *LinearModel) Formula() string {
	return fmt.Sprintf("y = %.4g + %.4g*x", l.a, l.b)
}

// QuadraticModel implements the degree-2 polynomial model: y = a0 + a1*x + a2*x²
type QuadraticModel struct {
	a0, a1, a2 float64
	coeffs     []float64
}

// NewQuadratic creates a new quadratic model with the given coefficients.
func NewQuadratic(a0, a1, a2 float64) *QuadraticModel {
	return &QuadraticModel{
		a0:     a0,
		a1:     a1,
		a2:     a2,
		coeffs: make([]float64, 3),
	}
}

// Eval computes y = a0 + a1*x + a2*x². It never fails.
func (q *QuadraticModel) Eval(x float64) (float64, error) {
	return q.a0 + q.a1*x + q.a2*x*x, nil
}

// Type returns the model type.
func (q *QuadraticModel) Type() ModelType {
	return TypeQuadratic
}

// Coefficients returns the model coefficients [a0, a1, a2].
func (q *QuadraticModel) Coefficients() []float64 {
	q.coeffs[0] = q.a0
	q.coeffs[1] = q.a1
	q.coeffs[2] = q.a2

	return q.coeffs
}

// SetCoefficients updates the coefficients of the quadratic model.
// Expects exactly 3 coefficients: [a0, a1, a2].
func (q *QuadraticModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("quadratic model expects exactly 3 coefficients, got %d", len(coeffs))
	}
	q.a0 = coeffs[0]
	q.a1 = coeffs[1]
	q.a2 = coeffs[2]

	return nil
}

// Formula returns the formula with the current coefficients.
func (q *QuadraticModel) Formula() string {
	return fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x²", q.a0, q.a1, q.a2)
}

// CubicModel implements the degree-3 polynomial model: y = a0 + a1*x + a2*x² + a3*x³
type CubicModel struct {
	a0, a1, a2, a3 float64
	coeffs         []float64
}

// NewCubic creates a new cubic model with the given coefficients.
func NewCubic(a0, a1, a2, a3 float64) *CubicModel {
	return &CubicModel{
		a0:     a0,
		a1:     a1,
		a2:     a2,
		a3:     a3,
		coeffs: make([]float64, 4),
	}
}

// Eval computes y = a0 + a1*x + a2*x² + a3*x³. It never fails.
func (c *CubicModel) Eval(x float64) (float64, error) {
	return c.a0 + x*(c.a1+x*(c.a2+x*c.a3)), nil
}

// Type returns the model type.
func (c *CubicModel) Type() ModelType {
	return TypeCubic
}

// Coefficients returns the model coefficients [a0, a1, a2, a3].
func (c *CubicModel) Coefficients() []float64 {
	c.coeffs[0] = c.a0
	c.coeffs[1] = c.a1
	c.coeffs[2] = c.a2
	c.coeffs[3] = c.a3

	return c.coeffs
}

// SetCoefficients updates the coefficients of the cubic model.
// Expects exactly 4 coefficients: [a0, a1, a2, a3].
func (c *CubicModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 4 {
		return fmt.Errorf("cubic model expects exactly 4 coefficients, got %d", len(coeffs))
	}
	c.a0 = coeffs[0]
	c.a1 = coeffs[1]
	c.a2 = coeffs[2]
	c.a3 = coeffs[3]

	return nil
}

// Formula returns the formula with the current coefficients.
func (c *CubicModel) Formula() string {
	return fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x² + %.4g*x³", c.a0, c.a1, c.a2, c.a3)
}

// GrowthModel implements the exponential growth model: y = a * e^(b*x)
type GrowthModel struct {
	a, b   float64
	coeffs []float64
}

// NewGrowth creates a new exponential growth model with the given coefficients.
func NewGrowth(a, b float64) *GrowthModel {
	return &GrowthModel{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Eval computes y = a * e^(b*x). It never fails; large b*x overflows to +Inf.
func (g *GrowthModel) Eval(x float64) (float64, error) {
	return g.a * math.Exp(g.b*x), nil
}

// Type returns the model type.
func (g *GrowthModel) Type() ModelType {
	return TypeGrowth
}

// Coefficients returns the model coefficients [a, b].
func (g *GrowthModel) Coefficients() []float64 {
	g.coeffs[0] = g.a
	g.coeffs[1] = g.b

	return g.coeffs
}

// SetCoefficients updates the coefficients of the growth model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a * e^(b*x).
func (g *GrowthModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("growth model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	g.a = coeffs[0]
	g.b = coeffs[1]

	return nil
}

// Formula returns the formula with the current coefficients.
func (g *GrowthModel) Formula() string {
	return fmt.Sprintf("y = %.4g * e^(%.4g*x)", g.a, g.b)
}

// DecayModel implements the exponential decay model: y = a * e^(-b*x)
//
// The decay rate b is stored as given; positive b decays toward zero as x
// grows, matching the usual convention for decay curves.
type DecayModel struct {
	a, b   float64
	coeffs []float64
}

// NewDecay creates a new exponential decay model with the given coefficients.
func NewDecay(a, b float64) *DecayModel {
	return &DecayModel{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Eval computes y = a * e^(-b*x). It never fails.
func (d *DecayModel) Eval(x float64) (float64, error) {
	return d.a * math.Exp(-d.b*x), nil
}

// Type returns the model type.
func (d *DecayModel) Type() ModelType {
	return TypeDecay
}

// Coefficients returns the model coefficients [a, b].
func (d *DecayModel) Coefficients() []float64 {
	d.coeffs[0] = d.a
	d.coeffs[1] = d.b

	return d.coeffs
}

// SetCoefficients updates the coefficients of the decay model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a * e^(-b*x).
func (d *DecayModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("decay model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	d.a = coeffs[0]
	d.b = coeffs[1]

	return nil
}

// Formula returns the formula with the current coefficients.
func (d *DecayModel) Formula() string {
	return fmt.Sprintf("y = %.4g * e^(-%.4g*x)", d.a, d.b)
}

// PlateauModel implements the growth-to-plateau model: y = a * (1 - e^(-b*x))
//
// For b > 0 the curve starts at 0 for x = 0 and approaches the asymptote a
// as x grows.
type PlateauModel struct {
	a, b   float64
	coeffs []float64
}

// NewPlateau creates a new plateau model with the given coefficients.
func NewPlateau(a, b float64) *PlateauModel {
	return &PlateauModel{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Eval computes y = a * (1 - e^(-b*x)). It never fails.
func (p *PlateauModel) Eval(x float64) (float64, error) {
	return p.a * (1 - math.Exp(-p.b*x)), nil
}

// Type returns the model type.
func (p *PlateauModel) Type() ModelType {
	return TypePlateau
}

// Coefficients returns the model coefficients [a, b].
func (p *PlateauModel) Coefficients() []float64 {
	p.coeffs[0] = p.a
	p.coeffs[1] = p.b

	return p.coeffs
}

// SetCoefficients updates the coefficients of the plateau model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a * (1 - e^(-b*x)).
func (p *PlateauModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("plateau model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	p.a = coeffs[0]
	p.b = coeffs[1]

	return nil
}

// Formula returns the formula with the current coefficients.
func (p *PlateauModel) Formula() string {
	return fmt.Sprintf("y = %.4g * (1 - e^(-%.4g*x))", p.a, p.b)
}

// DoubleDecayModel implements the double exponential decay model:
// y = a*p*e^(-b1*x) + a*(1-p)*e^(-b2*x)
//
// The curve is the sum of a fast and a slow decay component; p is the
// fraction of the initial amplitude a carried by the b1 component.
type DoubleDecayModel struct {
	a, p, b1, b2 float64
	coeffs       []float64
}

// NewDoubleDecay creates a new double-decay model with the given coefficients.
func NewDoubleDecay(a, p, b1, b2 float64) *DoubleDecayModel {
	return &DoubleDecayModel{
		a:      a,
		p:      p,
		b1:     b1,
		b2:     b2,
		coeffs: make([]float64, 4),
	}
}

// Eval computes y = a*p*e^(-b1*x) + a*(1-p)*e^(-b2*x). It never fails.
func (d *DoubleDecayModel) Eval(x float64) (float64, error) {
	return d.a*d.p*math.Exp(-d.b1*x) + d.a*(1-d.p)*math.Exp(-d.b2*x), nil
}

// Type returns the model type.
func (d *DoubleDecayModel) Type() ModelType {
	return TypeDoubleDecay
}

// Coefficients returns the model coefficients [a, p, b1, b2].
func (d *DoubleDecayModel) Coefficients() []float64 {
	d.coeffs[0] = d.a
	d.coeffs[1] = d.p
	d.coeffs[2] = d.b1
	d.coeffs[3] = d.b2

	return d.coeffs
}

// SetCoefficients updates the coefficients of the double-decay model.
// Expects exactly 4 coefficients: [a, p, b1, b2].
func (d *DoubleDecayModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 4 {
		return fmt.Errorf("double-decay model expects exactly 4 coefficients, got %d", len(coeffs))
	}
	d.a = coeffs[0]
	d.p = coeffs[1]
	d.b1 = coeffs[2]
	d.b2 = coeffs[3]

	return nil
}

// Formula returns the formula with the current coefficients.
func (d *DoubleDecayModel) Formula() string {
	return fmt.Sprintf("y = %.4g*%.4g*e^(-%.4g*x) + %.4g*%.4g*e^(-%.4g*x)",
		d.a, d.p, d.b1, d.a, 1-d.p, d.b2)
}

// LogarithmicModel implements the logarithmic model: y = a + b*ln(x)
//
// The model is defined for x > 0 only; Eval returns ErrDomain otherwise.
type LogarithmicModel struct {
	a, b   float64
	coeffs []float64
}

// NewLogarithmic creates a new logarithmic model with the given coefficients.
func NewLogarithmic(a, b float64) *LogarithmicModel {
	return &LogarithmicModel{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Eval computes y = a + b*ln(x). It returns ErrDomain for x <= 0.
func (l *LogarithmicModel) Eval(x float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("ln(%g): %w", x, ErrDomain)
	}

	return l.a + l.b*math.Log(x), nil
}

// Type returns the model type.
func (l *LogarithmicModel) Type() ModelType {
	return TypeLogarithmic
}

// Coefficients returns the model coefficients [a, b].
func (l *LogarithmicModel) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients updates the coefficients of the logarithmic model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a + b*ln(x).
func (l *LogarithmicModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("logarithmic model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// Formula returns the formula with the current coefficients.
func (l *LogarithmicModel) Formula() string {
	return fmt.Sprintf("y = %.4g + %.4g*ln(x)", l.a, l.b)
}

// LogisticModel implements the logistic model: y = 1 / (1 + e^(-b*(x-m)))
//
// The curve equals 0.5 at x = m. For b > 0 it approaches 0 as x → -Inf and
// 1 as x → +Inf.
type LogisticModel struct {
	b, m   float64
	coeffs []float64
}

// NewLogistic creates a new logistic model with the given coefficients.
func NewLogistic(b, m float64) *LogisticModel {
	return &LogisticModel{
		b:      b,
		m:      m,
		coeffs: make([]float64, 2),
	}
}

// Eval computes y = 1 / (1 + e^(-b*(x-m))). It never fails.
func (l *LogisticModel) Eval(x float64) (float64, error) {
	return 1 / (1 + math.Exp(-l.b*(x-l.m))), nil
}

// Type returns the model type.
func (l *LogisticModel) Type() ModelType {
	return TypeLogistic
}

// Coefficients returns the model coefficients [b, m].
func (l *LogisticModel) Coefficients() []float64 {
	l.coeffs[0] = l.b
	l.coeffs[1] = l.m

	return l.coeffs
}

// SetCoefficients updates the coefficients of the logistic model.
// Expects exactly 2 coefficients: [b, m] for the formula y = 1 / (1 + e^(-b*(x-m))).
func (l *LogisticModel) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("logistic model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.b = coeffs[0]
	l.m = coeffs[1]

	return nil
}

// Formula returns the formula with the current coefficients.
func (l *LogisticModel) Formula() string {
	return fmt.Sprintf("y = 1 / (1 + e^(-%.4g*(x - %.4g)))", l.b, l.m)
}
