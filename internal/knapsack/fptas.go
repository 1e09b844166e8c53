package knapsack

// FptasSolver is a fully-polynomial approximation scheme: it rescales
// profits down to the granularity parameter and invokes a witness-producing
// profit DP on the rescaled input, then reports the *true* (unscaled)
// profit of whatever subset that DP selected. The reported profit is a
// (1 - 1/granularity)-approximation of the true optimum.
type FptasSolver struct{}

func (FptasSolver) Solve(in *Input) Solution {
	items := in.Items()
	if len(items) == 0 {
		return Solution{TotalValue: 0}
	}

	scaled := scaleItems(items, in.Granularity())
	scaledSolution := solveProfitDPWitness(scaled, in.Capacity())

	return rescoreOnOriginalProfits(scaledSolution, items)
}

func (FptasSolver) Method() MethodTag { return Fptas }

// scaleItems rescales profits per spec.md §4.E: p'_i = max(1, floor(p_i *
// (granularity*n)/p*)), where p* is the max item profit. Weights are
// unchanged. All scaling arithmetic happens in float64; floor truncates
// toward zero and the minimum scaled profit is clamped to 1 so every item
// stays admissible.
func scaleItems(items []Item, granularity uint32) []Item {
	maxProfit := maxProfitOf(items)
	k := float64(granularity) * float64(len(items)) / float64(maxProfit)

	scaled := make([]Item, len(items))
	for i, item := range items {
		p := uint64(float64(item.Profit) * k)
		if p < 1 {
			p = 1
		}
		scaled[i] = NewItem(item.Weight, p)
	}
	return scaled
}

// rescoreOnOriginalProfits reports the unscaled profit of the scaled
// solution's item subset, which is what preserves the FPTAS guarantee:
// the choice of scale factor K only affects which subset the DP finds, not
// the value reported for it.
func rescoreOnOriginalProfits(scaledSolution Solution, originalItems []Item) Solution {
	var total uint64
	for _, idx := range scaledSolution.Items {
		total += originalItems[idx].Profit
	}
	return Solution{Items: scaledSolution.Items, TotalValue: total}
}

func maxProfitOf(items []Item) uint64 {
	var max uint64
	for _, item := range items {
		if item.Profit > max {
			max = item.Profit
		}
	}
	return max
}
