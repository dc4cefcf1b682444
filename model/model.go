package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrDomain is returned when a model is evaluated outside its mathematical
// domain. Only the logarithmic model can return it (for x <= 0).
var ErrDomain = errors.New("input outside model domain")

// ModelType represents the type of model function.
type ModelType int

const (
	// TypeLinear represents the linear model: y = a + b*x
	TypeLinear ModelType = iota
	// TypeQuadratic represents the degree-2 polynomial model: y = a0 + a1*x + a2*x²
	TypeQuadratic
	// TypeCubic represents the degree-3 polynomial model: y = a0 + a1*x + a2*x² + a3*x³
	TypeCubic
	// TypeGrowth represents the exponential growth model: y = a * e^(b*x)
	TypeGrowth
	// TypeDecay represents the exponential decay model: y = a * e^(-b*x)
	TypeDecay
	// TypePlateau represents the growth-to-plateau model: y = a * (1 - e^(-b*x))
	TypePlateau
	// TypeDoubleDecay represents the double exponential decay model:
	// y = a*p*e^(-b1*x) + a*(1-p)*e^(-b2*x)
	TypeDoubleDecay
	// TypeLogarithmic represents the logarithmic model: y = a + b*ln(x), x > 0
	TypeLogarithmic
	// TypeLogistic represents the logistic model: y = 1 / (1 + e^(-b*(x-m)))
	TypeLogistic
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	TypeLinear:      "linear",
	TypeQuadratic:   "quadratic",
	TypeCubic:       "cubic",
	TypeGrowth:      "growth",
	TypeDecay:       "decay",
	TypePlateau:     "plateau",
	TypeDoubleDecay: "double-decay",
	TypeLogarithmic: "logarithmic",
	TypeLogistic:    "logistic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"linear":       TypeLinear,
	"quadratic":    TypeQuadratic,
	"cubic":        TypeCubic,
	"growth":       TypeGrowth,
	"decay":        TypeDecay,
	"plateau":      TypePlateau,
	"double-decay": TypeDoubleDecay,
	"logarithmic":  TypeLogarithmic,
	"logistic":     TypeLogistic,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1) // Invalid ModelType
}

// NumCoefficients returns the fixed coefficient arity of the model type.
// Returns 0 for unknown types.
func (mt ModelType) NumCoefficients() int {
	switch mt {
	case TypeLinear, TypeGrowth, TypeDecay, TypePlateau, TypeLogarithmic, TypeLogistic:
		return 2
	case TypeQuadratic:
		return 3
	case TypeCubic, TypeDoubleDecay:
		return 4
	default:
		return 0
	}
}

// AllTypes returns every defined model type in declaration order.
func AllTypes() []ModelType {
	return []ModelType{
		TypeLinear,
		TypeQuadratic,
		TypeCubic,
		TypeGrowth,
		TypeDecay,
		TypePlateau,
		TypeDoubleDecay,
		TypeLogarithmic,
		TypeLogistic,
	}
}

// Model defines the interface for named model functions.
type Model interface {
	// Eval evaluates the model at x using its current coefficients.
	// Only the logarithmic model can fail, with ErrDomain for x <= 0;
	// every other implementation always returns a nil error.
	Eval(x float64) (float64, error)
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the model coefficients in their defined order.
	Coefficients() []float64
	// SetCoefficients updates the coefficients of the model.
	// This allows runtime updates without creating a new instance.
	// The number of coefficients must match the model's fixed arity.
	SetCoefficients(coeffs []float64) error
	// Formula returns a human-readable formula with the current coefficients.
	Formula() string
}

// newEmptyModel creates a zero-coefficient model for the given ModelType.
// This is used internally by New to create models and validate coefficients.
func newEmptyModel(modelType ModelType) Model {
	switch modelType {
	case TypeLinear:
		return NewLinear(0, 0)
	case TypeQuadratic:
		return NewQuadratic(0, 0, 0)
	case TypeCubic:
		return NewCubic(0, 0, 0, 0)
	case TypeGrowth:
		return NewGrowth(0, 0)
	case TypeDecay:
		return NewDecay(0, 0)
	case TypePlateau:
		return NewPlateau(0, 0)
	case TypeDoubleDecay:
		return NewDoubleDecay(0, 0, 0, 0)
	case TypeLogarithmic:
		return NewLogarithmic(0, 0)
	case TypeLogistic:
		return NewLogistic(0, 0)
	default:
		return nil
	}
}

// New creates a new model of the given type with the given coefficients.
//
// The number of coefficients must match the type's fixed arity: 2 for most
// models, 3 for quadratic, 4 for cubic and double-decay.
//
// Returns:
//   - Model: The created model instance
//   - error: Returns an error if the type is invalid or coefficients are invalid
func New(modelType ModelType, coeffs []float64) (Model, error) {
	m := newEmptyModel(modelType)
	if m == nil {
		return nil, fmt.Errorf("unknown model type: %d", int(modelType))
	}

	if err := m.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return m, nil
}

// NewFromString creates a new model by name and coefficients.
//
// This function provides a convenient factory method for creating model
// implementations dynamically based on the model name.
//
// Parameters:
//   - name: The model name (case-insensitive), e.g. "linear", "logistic"
//   - coeffs: The model coefficients, matching the model's fixed arity
//
// Example:
//
//	m, err := model.NewFromString("decay", []float64{10, 0.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, _ := m.Eval(0) // 10
func NewFromString(name string, coeffs []float64) (Model, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		// Build list of supported types for the error message
		supported := make([]string, 0, len(modelTypeNames))
		for _, typeName := range modelTypeNames {
			supported = append(supported, typeName)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	return New(modelType, coeffs)
}

// EvalAll evaluates the model elementwise over xs and returns the results in
// a newly allocated slice.
//
// Evaluation stops at the first domain violation; the returned error wraps
// ErrDomain and names the offending index.
func EvalAll(m Model, xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := m.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s model at index %d: %w", m.Type(), i, err)
		}
		ys[i] = y
	}

	return ys, nil
}
