package dprime

import "gonum.org/v1/gonum/floats"

// FromConfusion — per-grouping d′ from an aggregate confusion matrix.
//
// Description:
//
//	This is the path for when there is no access to internal
//	representations or decision scores (human behavioral data, published
//	tables): only the N×N outcome counts survive. m[r][c] is the number
//	of true-class-r samples predicted as class c (rows = true classes,
//	columns = predicted classes).
//
//	A collation groups the original classes into one binary comparison
//	per row: entries are {+1, 0, −1} marking a class as positive member,
//	ignored, or negative member of that grouping. For a 3×3 matrix,
//
//	  [[+1, −1, −1],
//	   [−1, +1, −1],
//	   [−1, −1, +1]]
//
//	is the 3-way one-vs-rest grouping — and also what a nil collation
//	synthesizes. Entries outside the tri-state set are coerced by
//	truncation, not validated.
//
// Algorithm Outline (per collation row coll):
//  1. P0[c] = Σ_c' m[c][c']             (row sums: true-class totals)
//  2. P  = Σ P0[c]   over coll[c]==+1   (positive population)
//     N  = Σ P0[c]   over coll[c]==−1   (negative population)
//     TP = Σ m[r][c] over coll[r]==+1 && coll[c]==+1
//     FP = Σ m[r][c] over coll[r]==−1 && coll[c]==+1
//  3. Apply the fudge policy (see FudgeMode) to TP/FP/P/N.
//  4. TPR = TP/P, FPR = FP/N.
//  5. d′ = probit(TPR) − probit(FPR), clipped to [MinValue, MaxValue].
//
// Contract:
//   - m must be rectangular and square; a 0×0 matrix yields an empty
//     result. Entry values are not validated (counts are trusted).
//   - collation, when non-nil, must be rectangular with exactly
//     len(m) columns; one output per collation row, in row order.
//   - Neither m nor collation is mutated; all intermediates are fresh.
//   - Degenerate groupings (P==0 or N==0) divide to ±Inf/NaN and
//     propagate NaN through the probit and clip — never a panic.
//
// Errors:
//   - ErrNonRectangular, ErrNonSquare — malformed m (or ragged collation).
//   - ErrCollationShape — collation column count != len(m).
//   - ErrInvalidFudgeMode — unrecognized opts.FudgeMode, regardless of
//     every other input.
//
// Complexity: O(g·n²) time for g groupings over n classes, O(n) space
// beyond the g-sized result.
func FromConfusion(m, collation [][]float64, opts *Options) ([]float64, error) {
	o := resolveOptions(opts)

	tpr, fpr, err := confusionRates(m, collation, o)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(tpr))
	for g := range out {
		out[g] = clip(probit(tpr[g])-probit(fpr[g]), o.MinValue, o.MaxValue)
	}

	return out, nil
}

// CriterionFromConfusion — per-grouping decision criterion c from an
// aggregate confusion matrix.
//
// Shares the grouping, counting and fudge machinery of FromConfusion but
// maps the rates through c = −(probit(TPR) + probit(FPR))/2 instead of
// their difference. The contract, error set and clip behavior are
// identical.
func CriterionFromConfusion(m, collation [][]float64, opts *Options) ([]float64, error) {
	o := resolveOptions(opts)

	tpr, fpr, err := confusionRates(m, collation, o)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(tpr))
	for g := range out {
		out[g] = clip(-(probit(tpr[g])+probit(fpr[g]))/2, o.MinValue, o.MaxValue)
	}

	return out, nil
}

// OneVsRest returns the canonical one-vs-rest collation for n classes:
// row i is −1 everywhere except a +1 at column i. It is the collation a
// nil argument to FromConfusion synthesizes, exported so callers can
// start from it when building custom groupings.
func OneVsRest(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, n)
		for c := range row {
			row[c] = -1
		}
		row[i] = +1
		out[i] = row
	}

	return out
}

// confusionRates validates inputs and reduces the confusion matrix to
// per-grouping (TPR, FPR) vectors with the fudge policy applied.
func confusionRates(m, collation [][]float64, o Options) (tpr, fpr []float64, err error) {
	if o.FudgeMode > FudgeNone {
		return nil, nil, ErrInvalidFudgeMode
	}

	n, err := validateConfusion(m)
	if err != nil {
		return nil, nil, err
	}
	coll, err := resolveCollation(collation, n)
	if err != nil {
		return nil, nil, err
	}

	// True-class totals, one pass.
	p0 := make([]float64, n)
	for c, row := range m {
		p0[c] = floats.Sum(row)
	}

	f := o.FudgeFactor
	tpr = make([]float64, len(coll))
	fpr = make([]float64, len(coll))
	for g, row := range coll {
		var p, nn, tp, fp float64

		// Populations from the row sums.
		for c := 0; c < n; c++ {
			switch row[c] {
			case +1:
				p += p0[c]
			case -1:
				nn += p0[c]
			}
		}

		// Counts predicted INTO the positive group, split by true side.
		for r := 0; r < n; r++ {
			if row[r] == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				if row[c] != +1 {
					continue
				}
				if row[r] == +1 {
					tp += m[r][c]
				} else {
					fp += m[r][c]
				}
			}
		}

		switch o.FudgeMode {
		case FudgeNone:
			// no adjustment
		case FudgeAlways:
			tp += f
			fp += f
			p += 2 * f
			nn += 2 * f
		case FudgeCorrection:
			// Four independent sequential boundary fixes; the second of
			// each pair observes the first's result (NOT an else-if).
			if tp == p {
				tp = p - f // 100% correct
			}
			if tp == 0 {
				tp = f // 0% correct
			}
			if fp == nn {
				fp = nn - f // always false alarm
			}
			if fp == 0 {
				fp = f // no false alarm
			}
		}

		tpr[g] = tp / p
		fpr[g] = fp / nn
	}

	return tpr, fpr, nil
}
