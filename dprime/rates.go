// Package dprime: probit-space primitives shared by every entry point.
//
// This file hosts the two kernels the whole package reduces to — the
// standard-normal quantile (probit) and the clip contract — plus the
// rate-level API for callers who already hold observed TPR/FPR.
package dprime

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// FromRates computes d′ directly from an observed true-positive rate and
// false-positive rate:
//
//	d′ = probit(tpr) − probit(fpr)
//
// clipped to [opts.MinValue, opts.MaxValue]. A nil opts selects
// DefaultOptions(); the fudge fields are not consulted here.
//
// The rate domain is deliberately lax: values outside [0, 1] (including
// NaN/±Inf from a degenerate upstream division) yield NaN, and exact 0
// or 1 yield ∓Inf before clipping. Callers wanting boundary smoothing
// should go through FromConfusion.
func FromRates(tpr, fpr float64, opts *Options) float64 {
	o := resolveOptions(opts)

	return clip(probit(tpr)-probit(fpr), o.MinValue, o.MaxValue)
}

// CriterionFromRates computes the Gaussian-SDT decision criterion
//
//	c = −(probit(tpr) + probit(fpr)) / 2
//
// clipped to [opts.MinValue, opts.MaxValue]. Positive c means a
// conservative observer (biased toward "no"), negative c a liberal one.
// Domain policy is identical to FromRates.
func CriterionFromRates(tpr, fpr float64, opts *Options) float64 {
	o := resolveOptions(opts)

	return clip(-(probit(tpr)+probit(fpr))/2, o.MinValue, o.MaxValue)
}

// unitNormal is the shared standard-normal distribution for quantiles.
var unitNormal = distuv.UnitNormal

// probit is the inverse standard-normal CDF with a lax domain:
// p outside [0, 1] (a degenerate rate) maps to NaN rather than erroring,
// p==0 maps to −Inf and p==1 to +Inf. NaN passes through.
func probit(p float64) float64 {
	// distuv panics outside [0, 1]; a degenerate rate must instead
	// surface as NaN in the result vector.
	if p < 0 || p > 1 {
		return math.NaN()
	}

	return unitNormal.Quantile(p)
}

// clip truncates v into [lo, hi]. NaN is preserved: it compares false
// against both bounds and passes through unchanged.
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
