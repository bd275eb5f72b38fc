// Package dprime: sentinel error set.
// All entry points return ONLY these sentinels for user-triggered error
// conditions and tests match them via errors.Is. No function in this
// package panics on user input; degenerate arithmetic (zero variance,
// empty groupings) propagates IEEE NaN/Inf through results instead of
// erroring.
package dprime

import "errors"

var (
	// ErrLengthMismatch indicates predictions and labels differ in length.
	ErrLengthMismatch = errors.New("dprime: predictions and labels must have equal length")

	// ErrNonFinite indicates a NaN or ±Inf entry in predictions or labels.
	ErrNonFinite = errors.New("dprime: predictions and labels must be finite")

	// ErrNotEnoughPositive indicates fewer than two positive samples;
	// the sample variance is undefined below two points.
	ErrNotEnoughPositive = errors.New("dprime: not enough positive samples to estimate the variance")

	// ErrNotEnoughNegative indicates fewer than two negative samples.
	ErrNotEnoughNegative = errors.New("dprime: not enough negative samples to estimate the variance")

	// ErrNonRectangular indicates rows of differing lengths in a
	// confusion or collation matrix.
	ErrNonRectangular = errors.New("dprime: all matrix rows must have the same length")

	// ErrNonSquare indicates a confusion matrix whose column count does
	// not equal its row count.
	ErrNonSquare = errors.New("dprime: confusion matrix must be square")

	// ErrCollationShape indicates a collation whose column count does not
	// equal the confusion matrix class count.
	ErrCollationShape = errors.New("dprime: collation columns must equal confusion classes")

	// ErrInvalidFudgeMode indicates an unrecognized FudgeMode value.
	ErrInvalidFudgeMode = errors.New("dprime: invalid fudge mode")
)
