package dprime

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// FromSamples — d′ from raw positive/negative sample collections.
//
// Description:
//
//	Given score samples drawn under the "signal" (pos) and "noise" (neg)
//	conditions, FromSamples estimates the equal-variance-assumption
//	sensitivity index:
//
//	  d′ = (mean(pos) − mean(neg)) / sqrt((var(pos) + var(neg)) / 2)
//
//	using unbiased (n−1) sample variances. The two variances are
//	averaged, not pooled by size.
//
// Contract:
//   - pos and neg must each contain more than one element; the sample
//     variance is undefined below two points.
//   - Inputs are read-only; relative order is irrelevant.
//   - The result is clipped to [opts.MinValue, opts.MaxValue]; a nil
//     opts selects DefaultOptions() (unbounded).
//   - Finiteness of the samples is NOT validated here — that check
//     belongs to the prediction path. Constant samples give a zero
//     divisor and the quotient propagates as ±Inf or NaN through the
//     clip rather than erroring.
//
// Errors:
//   - ErrNotEnoughPositive — len(pos) <= 1.
//   - ErrNotEnoughNegative — len(neg) <= 1.
//
// Complexity: O(len(pos) + len(neg)) time, O(1) extra space.
func FromSamples(pos, neg []float64, opts *Options) (float64, error) {
	if len(pos) <= 1 {
		return 0, ErrNotEnoughPositive
	}
	if len(neg) <= 1 {
		return 0, ErrNotEnoughNegative
	}

	o := resolveOptions(opts)

	posMean := stat.Mean(pos, nil)
	negMean := stat.Mean(neg, nil)
	posVar := stat.Variance(pos, nil) // unbiased, n−1 divisor
	negVar := stat.Variance(neg, nil)

	num := posMean - negMean
	div := math.Sqrt((posVar + negVar) / 2)

	return clip(num/div, o.MinValue, o.MaxValue), nil
}
