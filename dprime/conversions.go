// Package dprime: gonum interop.
//
// Callers living in the gonum ecosystem hold confusion matrices as
// mat.Matrix values; these adapters densify them into the slice-of-rows
// form the core works on and delegate. No gonum types leak into the core
// computation.
package dprime

import "gonum.org/v1/gonum/mat"

// FromConfusionMatrix is FromConfusion for gonum matrices. A nil
// collation selects the one-vs-rest default; shape and error semantics
// are those of FromConfusion (a non-square m surfaces ErrNonSquare, a
// collation with the wrong column count ErrCollationShape).
func FromConfusionMatrix(m, collation mat.Matrix, opts *Options) ([]float64, error) {
	var coll [][]float64
	if collation != nil {
		coll = denseRows(collation)
	}

	return FromConfusion(denseRows(m), coll, opts)
}

// CriterionFromConfusionMatrix is CriterionFromConfusion for gonum
// matrices, with the same adaptation rules as FromConfusionMatrix.
func CriterionFromConfusionMatrix(m, collation mat.Matrix, opts *Options) ([]float64, error) {
	var coll [][]float64
	if collation != nil {
		coll = denseRows(collation)
	}

	return CriterionFromConfusion(denseRows(m), coll, opts)
}

// denseRows copies m into freshly allocated row slices.
func denseRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = m.At(i, j)
		}
		out[i] = row
	}

	return out
}
