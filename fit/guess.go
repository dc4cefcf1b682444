package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/curvefit/model"
)

// initialGuess derives a start point for the iterative solver by linearizing
// the model where the data allows it, falling back to rough scale-based
// defaults otherwise. The guesses only need to land in the basin of the
// least-squares optimum; the solver does the rest.
func initialGuess(modelType model.ModelType, xs, ys []float64) []float64 {
	switch modelType {
	case model.TypeGrowth:
		a, b, ok := logLinearize(xs, ys)
		if !ok {
			return []float64{fallbackAmplitude(ys), 0}
		}

		return []float64{a, b}
	case model.TypeDecay:
		a, b, ok := logLinearize(xs, ys)
		if !ok {
			return []float64{fallbackAmplitude(ys), 0}
		}

		return []float64{a, -b}
	case model.TypePlateau:
		return plateauGuess(xs, ys)
	case model.TypeLogistic:
		return logisticGuess(xs, ys)
	case model.TypeDoubleDecay:
		return doubleDecayGuess(xs, ys)
	default:
		return make([]float64, modelType.NumCoefficients())
	}
}

// logLinearize fits ln(y) = ln(a) + b*x by linear regression. It reports
// ok=false when the sample contains non-positive y values, which the log
// transform cannot represent.
func logLinearize(xs, ys []float64) (a, b float64, ok bool) {
	logYs := make([]float64, len(ys))
	for i, y := range ys {
		if y <= 0 {
			return 0, 0, false
		}
		logYs[i] = math.Log(y)
	}

	logA, b := stat.LinearRegression(xs, logYs, nil, false)
	if math.IsNaN(logA) || math.IsNaN(b) {
		return 0, 0, false
	}

	return math.Exp(logA), b, true
}

// fallbackAmplitude returns a crude amplitude scale for samples the log
// transform rejects.
func fallbackAmplitude(ys []float64) float64 {
	maxAbs := 0.0
	for _, y := range ys {
		if math.Abs(y) > maxAbs {
			maxAbs = math.Abs(y)
		}
	}
	if maxAbs == 0 {
		return 1
	}

	return maxAbs
}

// plateauGuess seeds y = a*(1 - e^(-b*x)) by placing the asymptote slightly
// above the sample maximum and linearizing ln(1 - y/a) = -b*x.
func plateauGuess(xs, ys []float64) []float64 {
	maxY := slicesMax(ys)
	if maxY <= 0 {
		return []float64{1, 1}
	}

	a := 1.05 * maxY
	zs := make([]float64, len(ys))
	for i, y := range ys {
		zs[i] = math.Log(1 - y/a)
	}

	_, slope := stat.LinearRegression(xs, zs, nil, false)
	b := -slope
	if !(b > 0) || math.IsInf(b, 0) {
		b = 1 / math.Max(stat.Mean(xs, nil), 1e-9)
	}

	return []float64{a, b}
}

// logisticGuess seeds y = 1/(1 + e^(-b*(x-m))) by the logit transform:
// ln(y/(1-y)) = b*x - b*m, with y clipped away from {0, 1}.
func logisticGuess(xs, ys []float64) []float64 {
	const clip = 1e-6

	zs := make([]float64, len(ys))
	for i, y := range ys {
		y = math.Min(math.Max(y, clip), 1-clip)
		zs[i] = math.Log(y / (1 - y))
	}

	intercept, b := stat.LinearRegression(xs, zs, nil, false)
	if b == 0 || math.IsNaN(b) || math.IsNaN(intercept) {
		return []float64{1, stat.Mean(xs, nil)}
	}

	return []float64{b, -intercept / b}
}

// doubleDecayGuess seeds the double-decay model with the amplitude at the
// sample maximum, an even component split, and rates spread around the
// single-decay rate estimate.
func doubleDecayGuess(xs, ys []float64) []float64 {
	a := slicesMax(ys)
	if a <= 0 {
		a = fallbackAmplitude(ys)
	}

	rate := 1.0
	if _, b, ok := logLinearize(xs, ys); ok && b < 0 {
		rate = -b
	}

	return []float64{a, 0.5, 2 * rate, rate / 2}
}

func slicesMax(vs []float64) float64 {
	maxV := math.Inf(-1)
	for _, v := range vs {
		if v > maxV {
			maxV = v
		}
	}

	return maxV
}
