package dprime

// FromPredictions — d′ from parallel prediction/label arrays.
//
// Description:
//
//	predictions[i] is a real-valued classifier score and labels[i] its
//	ground truth, interpreted as polarity: labels[i] > 0 marks the
//	sample positive, anything else (0, negatives) marks it negative.
//	{−1, +1}, {0, 1} and {false→0, true→1} labelings all work.
//
//	Predictions are partitioned by that predicate, preserving relative
//	order within each side, and handed to FromSamples with the same
//	options.
//
// Contract:
//   - len(predictions) == len(labels).
//   - Every entry of both slices must be finite; this path validates
//     eagerly, before any partitioning.
//   - Inputs are read-only.
//
// Errors:
//   - ErrLengthMismatch — slice lengths differ.
//   - ErrNonFinite — NaN or ±Inf in either slice.
//   - ErrNotEnoughPositive / ErrNotEnoughNegative — a side ends up with
//     fewer than two samples after partitioning.
//
// Complexity: O(n) time, O(n) space for the two partitions.
func FromPredictions(predictions, labels []float64, opts *Options) (float64, error) {
	if len(predictions) != len(labels) {
		return 0, ErrLengthMismatch
	}
	if err := validateFinite(predictions); err != nil {
		return 0, err
	}
	if err := validateFinite(labels); err != nil {
		return 0, err
	}

	// Partition by explicit polarity predicate, keeping original order.
	pos := make([]float64, 0, len(predictions))
	neg := make([]float64, 0, len(predictions))
	for i, v := range predictions {
		if labels[i] > 0 {
			pos = append(pos, v)
		} else {
			neg = append(neg, v)
		}
	}

	return FromSamples(pos, neg, opts)
}
