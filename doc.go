// Package sigdet is an in-memory toolkit for signal-detection-theory
// statistics — quantifying how well a classifier (machine or biological)
// separates a positive class from a negative one.
//
// 🚀 What is sigdet?
//
//	A small, deterministic, thread-safe library that brings together:
//		• Sample statistics: d′ from raw positive/negative score samples
//		• Prediction splitting: d′ from parallel prediction/label arrays
//		• Confusion matrices: per-grouping d′ with custom class collations
//		• Boundary handling: three fudge policies for degenerate rates
//		• Decision criterion: the Gaussian-SDT bias statistic c
//
// ✨ Why choose sigdet?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Value semantics – pure functions over immutable inputs, safe to
//     call concurrently
//   - Numerically explicit – IEEE NaN/Inf propagate, they are never
//     silently trapped
//
// Everything lives under a single subpackage:
//
//	dprime/ — d′ and criterion from samples, predictions and confusion
//	          matrices, with collation grouping and fudge-factor policies
//
// Quick sketch:
//
//	dp, err := dprime.FromSamples(posScores, negScores, nil)
//
//	M := [][]float64{{8, 2}, {3, 7}}
//	dps, err := dprime.FromConfusion(M, nil, nil) // one-vs-rest
//
// Dive into examples/ for full scenario programs.
//
//	go get github.com/quantpsych/sigdet
package sigdet
