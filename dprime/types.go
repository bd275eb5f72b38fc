// Package dprime defines options and fudge policies for d′ computation.
package dprime

import "math"

// DefaultFudgeFactor is the additive smoothing constant applied by the
// fudge policies when a hit or false-alarm rate sits on a 0%/100%
// boundary (where the probit transform diverges).
const DefaultFudgeFactor = 0.5

// FudgeMode controls how the fudge factor is applied to the per-grouping
// TP/FP counts before rates are formed.
//
//   - FudgeCorrection — adjust only the boundary cases: a grouping at
//     TP==P (perfect detection) or TP==0 (zero detection) is nudged by
//     the fudge factor, and symmetrically for FP against N.  Each of the
//     four boundary checks is independent; counts away from a boundary
//     are left untouched.
//
//   - FudgeAlways — unconditional additive smoothing of every grouping:
//     TP+=f, FP+=f, P+=2f, N+=2f.
//
//   - FudgeNone — no adjustment; equivalent to a zero fudge factor.
//     Boundary rates then probit to ±Inf.
type FudgeMode uint8

const (
	// FudgeCorrection mode: apply the fudge factor only where a rate
	// would otherwise be exactly 0 or 1. This is the default.
	FudgeCorrection FudgeMode = iota

	// FudgeAlways mode: smooth every grouping unconditionally.
	FudgeAlways

	// FudgeNone mode: never adjust; boundary rates probit to ±Inf.
	FudgeNone
)

// String returns the canonical lower-case name of the mode.
func (m FudgeMode) String() string {
	switch m {
	case FudgeCorrection:
		return "correction"
	case FudgeAlways:
		return "always"
	case FudgeNone:
		return "none"
	default:
		return "invalid"
	}
}

// Options configures d′ computation.
//
// Fields:
//   - FudgeMode   — boundary policy for confusion-matrix rates
//     (ignored by the sample paths).
//   - FudgeFactor — smoothing constant used by FudgeCorrection and
//     FudgeAlways. Default 0.5.
//   - MinValue    — lower clip bound for every returned statistic.
//     Default −Inf (unbounded).
//   - MaxValue    — upper clip bound. Default +Inf (unbounded).
//
// Clipping truncates silently: out-of-range results are replaced by the
// nearest bound, never rejected.
//
// All entry points accept *Options; passing nil selects DefaultOptions().
// Callers building their own Options should start from DefaultOptions()
// rather than a zero value (a zero value clips everything to [0, 0]).
//
// Example:
//
//	opts := dprime.DefaultOptions()
//	opts.FudgeMode = dprime.FudgeAlways
//	opts.MaxValue = 5
//
//	dps, err := dprime.FromConfusion(M, nil, &opts)
type Options struct {
	FudgeMode   FudgeMode
	FudgeFactor float64
	MinValue    float64
	MaxValue    float64
}

// DefaultOptions returns the canonical configuration: FudgeCorrection
// with factor 0.5 and unbounded clipping.
func DefaultOptions() Options {
	return Options{
		FudgeMode:   FudgeCorrection,
		FudgeFactor: DefaultFudgeFactor,
		MinValue:    math.Inf(-1),
		MaxValue:    math.Inf(1),
	}
}

// resolveOptions dereferences opts, substituting DefaultOptions for nil.
func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}
