package fit

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/arloliu/curvefit/model"
)

// generateBenchmarkData produces noisy decay-shaped data of the given size.
func generateBenchmarkData(size int) (xs, ys []float64) {
	rng := rand.New(rand.NewSource(1))
	xs = make([]float64, size)
	ys = make([]float64, size)
	for i := range xs {
		xs[i] = float64(i) * 50 / float64(size)
		ys[i] = 10*math.Exp(-0.1*xs[i]) + 0.05*rng.NormFloat64()
	}

	return xs, ys
}

// BenchmarkFitLinear benchmarks the closed-form linear fit.
func BenchmarkFitLinear(b *testing.B) {
	sizes := []int{10, 100, 1000, 5000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			xs, ys := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Fit(model.TypeLinear, xs, ys)
			}
		})
	}
}

// BenchmarkFitCubic benchmarks the QR polynomial fit.
func BenchmarkFitCubic(b *testing.B) {
	sizes := []int{10, 100, 1000, 5000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			xs, ys := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Fit(model.TypeCubic, xs, ys)
			}
		})
	}
}

// BenchmarkFitDecay benchmarks the iterative solver on a 2-coefficient model.
func BenchmarkFitDecay(b *testing.B) {
	sizes := []int{10, 100, 1000, 5000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			xs, ys := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Fit(model.TypeDecay, xs, ys)
			}
		})
	}
}

// BenchmarkFitAll benchmarks full candidate selection.
func BenchmarkFitAll(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			xs, ys := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = FitAll(xs, ys)
			}
		})
	}
}
