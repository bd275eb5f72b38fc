// Package dprime - validation utilities shared by the entry points.
//
// This file contains small, tight helpers that:
//  1. Validate sample/prediction slices (finiteness).
//  2. Validate confusion matrices (rectangularity, squareness).
//  3. Validate/normalize collations (shape, tri-state coercion).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go.
//   - Validation is intentionally asymmetric, mirroring the reference
//     behavior: prediction/label slices are checked for finiteness,
//     confusion and collation VALUES are not — only their shapes are.
package dprime

import "math"

// validateFinite rejects any NaN or ±Inf entry.
//
// Complexity: O(n).
func validateFinite(xs []float64) error {
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

// validateConfusion verifies that m is rectangular and square, returning
// the class count n. A 0×0 matrix is valid and yields n=0.
//
// Entry values (negative, non-finite counts) are NOT validated; shape is
// the only contract here.
//
// Complexity: O(rows).
func validateConfusion(m [][]float64) (int, error) {
	n := len(m)
	if n == 0 {
		return 0, nil
	}

	cols := len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return 0, ErrNonRectangular
		}
	}
	if cols != n {
		return 0, ErrNonSquare
	}

	return n, nil
}

// resolveCollation normalizes a caller collation into tri-state rows, or
// synthesizes the canonical one-vs-rest collation when coll is nil.
//
// Each entry is coerced to {+1, 0, −1} by truncation toward zero; values
// outside the tri-state set are a caller logic error and are left
// unvalidated (they simply fail both the ==+1 and ==−1 membership tests
// downstream and act as "ignored").
//
// Complexity: O(groupings·n).
func resolveCollation(coll [][]float64, n int) ([][]int8, error) {
	if coll == nil {
		out := make([][]int8, n)
		for i := range out {
			row := make([]int8, n)
			for c := range row {
				row[c] = -1
			}
			row[i] = +1
			out[i] = row
		}

		return out, nil
	}

	if len(coll) > 0 {
		for _, row := range coll[1:] {
			if len(row) != len(coll[0]) {
				return nil, ErrNonRectangular
			}
		}
		if len(coll[0]) != n {
			return nil, ErrCollationShape
		}
	}

	out := make([][]int8, len(coll))
	for g, row := range coll {
		tri := make([]int8, n)
		for c, v := range row {
			tri[c] = triState(v)
		}
		out[g] = tri
	}

	return out, nil
}

// triState truncates v toward zero and maps it onto {+1, 0, −1}.
// Anything that does not truncate to exactly ±1 (including NaN) is
// treated as 0 / ignored.
func triState(v float64) int8 {
	switch math.Trunc(v) {
	case 1:
		return +1
	case -1:
		return -1
	default:
		return 0
	}
}
