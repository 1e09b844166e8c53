package knapsack

// DpSolver solves the 0/1 knapsack problem exactly with a pseudopolynomial
// dynamic program indexed by profit: f[i][p] is the minimum weight needed
// to reach exact profit p using a subset of the first i+1 items.
//
//	f[0][0] = 0, f[0][p_0] = w_0, f[0][p] = unreachable otherwise
//	f[i][p] = min(f[i-1][p], f[i-1][p-p_i] + w_i)   for p >= p_i
//
// The table is space-optimized to a single row of length P+1 (P = sum of
// all profits), so no witness subset is reconstructed — only the optimum
// value. Time O(n*P), space O(P).
type DpSolver struct{}

// unreachable is chosen so that adding any single item's weight (at most
// maxWeight) can never wrap a finite, reachable entry into the sentinel
// range.
func unreachable(maxWeight uint64) uint64 {
	return ^uint64(0) - maxWeight
}

func (DpSolver) Solve(in *Input) Solution {
	items := in.Items()
	if len(items) == 0 {
		return Solution{TotalValue: 0}
	}

	maxProfit := in.MaxItemProfit()
	maxWeight := in.MaxCost()
	sentinel := unreachable(maxWeight)

	table := make([]uint64, maxProfit+1)
	for p := range table {
		table[p] = sentinel
	}
	table[0] = 0
	if items[0].Profit <= maxProfit {
		table[items[0].Profit] = min64(table[items[0].Profit], items[0].Weight)
	}

	for i := 1; i < len(items); i++ {
		profit, weight := items[i].Profit, items[i].Weight
		if profit == 0 {
			// A zero-profit item can never move a profit-indexed entry:
			// f[i][p] = min(f[i-1][p], f[i-1][p]+w_i) = f[i-1][p].
			continue
		}
		for p := maxProfit; p >= profit; p-- {
			if table[p-profit] != sentinel {
				candidate := table[p-profit] + weight
				if candidate < table[p] {
					table[p] = candidate
				}
			}
		}
	}

	var best uint64
	for p := uint64(0); p <= maxProfit; p++ {
		if table[p] <= in.Capacity() && p > best {
			best = p
		}
	}

	return Solution{TotalValue: best}
}

func (DpSolver) Method() MethodTag { return Dp }

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// solveProfitDPWitness runs the same recurrence as DpSolver but keeps the
// full 2-D table so the optimal subset can be walked back. It is used only
// by FptasSolver (§4.E), which needs a witness that DpSolver's
// space-optimized table cannot provide.
func solveProfitDPWitness(items []Item, capacity uint64) Solution {
	if len(items) == 0 {
		return Solution{TotalValue: 0}
	}

	maxProfit := sumProfitsRecursive(items)
	sentinel := unreachable(maxWeightOf(items))

	n := len(items)
	table := make([][]uint64, n)
	for i := range table {
		table[i] = make([]uint64, maxProfit+1)
	}

	for p := range table[0] {
		table[0][p] = sentinel
	}
	table[0][0] = 0
	if items[0].Profit <= maxProfit {
		table[0][items[0].Profit] = min64(table[0][items[0].Profit], items[0].Weight)
	}

	for i := 1; i < n; i++ {
		profit, weight := items[i].Profit, items[i].Weight
		copy(table[i], table[i-1])
		for p := profit; p <= maxProfit; p++ {
			if table[i-1][p-profit] == sentinel {
				continue
			}
			candidate := table[i-1][p-profit] + weight
			if candidate < table[i][p] {
				table[i][p] = candidate
			}
		}
	}

	var best uint64
	for p := uint64(0); p <= maxProfit; p++ {
		if table[n-1][p] <= capacity && p > best {
			best = p
		}
	}

	selected := reconstructProfitPath(table, items, best)

	return Solution{Items: selected, TotalValue: best}
}

// reconstructProfitPath walks the full 2-D witness table backward from
// (n-1, targetProfit) to recover the selected item indices.
func reconstructProfitPath(table [][]uint64, items []Item, targetProfit uint64) []int {
	var selected []int
	profit := targetProfit

	for i := len(items) - 1; i > 0 && profit > 0; i-- {
		if table[i][profit] != table[i-1][profit] {
			selected = append(selected, i)
			profit -= items[i].Profit
		}
	}
	if profit > 0 {
		selected = append(selected, 0)
	}

	sortIntsAsc(selected)
	return selected
}

func maxWeightOf(items []Item) uint64 {
	var max uint64
	for _, item := range items {
		if item.Weight > max {
			max = item.Weight
		}
	}
	return max
}

func sortIntsAsc(xs []int) {
	for i := 1; i < len(xs); i++ {
		key := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > key {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = key
	}
}
