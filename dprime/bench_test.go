package dprime_test

import (
	"testing"

	"github.com/quantpsych/sigdet/dprime"
)

// benchmarkFromConfusion runs FromConfusion on a synthetic n×n count
// matrix with the one-vs-rest default. It resets the timer after setup
// and fails on unexpected errors.
func benchmarkFromConfusion(b *testing.B, n int, opts dprime.Options) {
	// Deterministic off-diagonal-light counts: strong diagonal keeps all
	// rates away from boundaries.
	m := make([][]float64, n)
	for r := range m {
		row := make([]float64, n)
		for c := range row {
			row[c] = float64((r*31+c*17)%9 + 1)
		}
		row[r] += 100
		m[r] = row
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dprime.FromConfusion(m, nil, &opts); err != nil {
			b.Fatalf("FromConfusion failed: %v", err)
		}
	}
}

// BenchmarkFromConfusion_Small benchmarks a 8-class matrix with the
// default correction policy.
func BenchmarkFromConfusion_Small(b *testing.B) {
	benchmarkFromConfusion(b, 8, dprime.DefaultOptions())
}

// BenchmarkFromConfusion_Medium benchmarks a 64-class matrix.
func BenchmarkFromConfusion_Medium(b *testing.B) {
	benchmarkFromConfusion(b, 64, dprime.DefaultOptions())
}

// BenchmarkFromConfusion_AlwaysMedium benchmarks the unconditional
// smoothing policy on the 64-class matrix.
func BenchmarkFromConfusion_AlwaysMedium(b *testing.B) {
	opts := dprime.DefaultOptions()
	opts.FudgeMode = dprime.FudgeAlways
	benchmarkFromConfusion(b, 64, opts)
}

// BenchmarkFromSamples benchmarks the raw sample reducer on 1024-point
// collections.
func BenchmarkFromSamples(b *testing.B) {
	const n = 1024
	pos := make([]float64, n)
	neg := make([]float64, n)
	for i := 0; i < n; i++ {
		pos[i] = float64(i%13) + 1
		neg[i] = float64(i % 13)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dprime.FromSamples(pos, neg, nil); err != nil {
			b.Fatalf("FromSamples failed: %v", err)
		}
	}
}

// BenchmarkFromPredictions benchmarks the splitter on 2048 interleaved
// prediction/label pairs.
func BenchmarkFromPredictions(b *testing.B) {
	const n = 2048
	predictions := make([]float64, n)
	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		predictions[i] = float64(i % 29)
		labels[i] = float64(i % 2)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dprime.FromPredictions(predictions, labels, nil); err != nil {
			b.Fatalf("FromPredictions failed: %v", err)
		}
	}
}
