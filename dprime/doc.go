// Package dprime computes the d′ (d-prime) sensitivity index of
// signal-detection theory, from raw samples, paired predictions/labels,
// or aggregate confusion matrices.
//
// 🚀 What is d′?
//
//	d′ measures how many standard deviations separate the internal
//	response distributions of a "signal" and a "noise" condition,
//	assuming equal-variance Gaussians.  It is the standard
//	discriminability summary in:
//	  • Psychophysics & human behavioral experiments
//	  • Classifier evaluation without threshold tuning
//	  • Medical / diagnostic test assessment
//	  • Any yes-no or one-vs-rest detection task
//
// ✨ Key features:
//   - FromSamples: d′ from two raw score collections (unbiased variances)
//   - FromPredictions: split parallel predictions by label polarity
//   - FromConfusion: per-grouping d′ over an N×N count matrix, with
//     custom {+1, 0, −1} collations (default: one-vs-rest)
//   - Three fudge policies (FudgeCorrection / FudgeAlways / FudgeNone)
//     keeping the probit transform finite at 0% / 100% rates
//   - FromRates & CriterionFromRates: probit-space primitives for callers
//     who already hold observed TPR/FPR
//
// ⚙️ Usage:
//
//	import "github.com/quantpsych/sigdet/dprime"
//
//	opts := dprime.DefaultOptions()
//	opts.MaxValue = 5 // clip extreme sensitivities
//
//	dp, err := dprime.FromPredictions(scores, labels, &opts)
//
//	// Human 2AFC data, counts only:
//	M := [][]float64{{8, 2}, {3, 7}}
//	dps, err := dprime.FromConfusion(M, nil, &opts)
//
// Numerics:
//
//	All computation is IEEE-754 float64.  Degenerate inputs (zero
//	variance, empty groupings) propagate ±Inf/NaN through the final
//	clip instead of raising; the library never panics on user input.
//
// See example_test.go for runnable walkthroughs.
package dprime
