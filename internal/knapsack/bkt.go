package knapsack

// BktSolver is an exhaustive, non-recursive backtracking search over the
// include/exclude decision tree, adapted from original_source's
// bkt_non_recursive. It explores items in input order (no efficiency
// ordering needed — the search isn't bound-pruned the way MinKnap is) and
// is exponential, but it is a structurally independent oracle useful for
// cross-checking DP/MinKnap on small instances.
type BktSolver struct{}

type bktFrame struct {
	item   int
	weight uint64
	profit uint64
}

func (BktSolver) Solve(in *Input) Solution {
	items := in.Items()
	n := len(items)

	best := Solution{}
	current := make([]int, 0, n)
	bestItems := make([]int, 0, n)

	var stack []bktFrame
	var weight, profit uint64
	item := 0

	for {
		if item < n {
			w := items[item].Weight
			if weight+w <= in.Capacity() {
				stack = append(stack, bktFrame{item: item, weight: weight, profit: profit})
				current = append(current, item)
				weight += w
				profit += items[item].Profit
				item++
				continue
			}
			// item doesn't fit at this weight: forced exclusion, not a dead
			// end. Keep exploring later, possibly lighter, items instead of
			// abandoning the current prefix.
			item++
			continue
		}

		if profit > best.TotalValue {
			best.TotalValue = profit
			bestItems = bestItems[:0]
			bestItems = append(bestItems, current...)
		}

		if len(stack) == 0 {
			break
		}
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		item = frame.item + 1
		weight = frame.weight
		profit = frame.profit
		current = current[:len(current)-1]
	}

	if len(bestItems) > 0 {
		best.Items = append([]int(nil), bestItems...)
		sortIntsAsc(best.Items)
	}

	return best
}

func (BktSolver) Method() MethodTag { return Bkt }
