package dprime_test

import (
	"fmt"

	"github.com/quantpsych/sigdet/dprime"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromSamples
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Raw classifier scores from the two conditions.
//	  pos = [1, 2, 3, 4]  (signal trials)
//	  neg = [0, 1, 2, 3]  (noise trials)
//
// Means differ by 1 and both sample variances are 5/3, so
// d' = 1/sqrt(5/3) ≈ 0.7746.
func ExampleFromSamples() {
	pos := []float64{1, 2, 3, 4}
	neg := []float64{0, 1, 2, 3}

	dp, err := dprime.FromSamples(pos, neg, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("d'=%.4f\n", dp)
	// Output:
	// d'=0.7746
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromPredictions
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same scores arrive interleaved with {0,1} ground-truth labels;
//	the splitter partitions by label polarity and reduces.
func ExampleFromPredictions() {
	predictions := []float64{1, 0, 2, 1, 3, 2, 4, 3}
	labels := []float64{1, 0, 1, 0, 1, 0, 1, 0}

	dp, err := dprime.FromPredictions(predictions, labels, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("d'=%.4f\n", dp)
	// Output:
	// d'=0.7746
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromConfusion
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Human two-alternative data where only outcome counts survive:
//	  M = [[8, 2],
//	       [3, 7]]
//	With the one-vs-rest default, grouping 0 sees TPR=0.8 and FPR=0.3,
//	so d' = probit(0.8) − probit(0.3) ≈ 1.366.
//
// Options:
//   - FudgeMode = FudgeNone (no rate sits on a boundary here)
func ExampleFromConfusion() {
	m := [][]float64{
		{8, 2},
		{3, 7},
	}
	opts := dprime.DefaultOptions()
	opts.FudgeMode = dprime.FudgeNone

	dps, err := dprime.FromConfusion(m, nil, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("grouping0=%.3f\ngrouping1=%.3f\n", dps[0], dps[1])
	// Output:
	// grouping0=1.366
	// grouping1=1.366
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleOneVsRest
// //////////////////////////////////////////////////////////////////////////////
//
// OneVsRest materializes the collation a nil argument synthesizes;
// start from it when hand-building custom groupings.
func ExampleOneVsRest() {
	fmt.Println(dprime.OneVsRest(3))
	// Output:
	// [[1 -1 -1] [-1 1 -1] [-1 -1 1]]
}
