package knapsack

// MinKnapSolver is Pisinger's primal-dual expanding-core algorithm: the
// centerpiece solver. It sorts items by efficiency, takes the greedy
// "break" prefix as a starting lower bound, then expands a core window
// around the break item — alternately trying to add the next item on the
// right and remove the next item on the left — pruning dominated states
// and states whose linear-relaxation upper bound can no longer beat the
// best feasible profit found so far. The winning state's decision history
// is recovered from a chain of 64-bit packed fragments rather than by
// cloning a full decision vector per state.
type MinKnapSolver struct{}

func (MinKnapSolver) Solve(in *Input) Solution {
	instance := newMinknapInstance(in)
	decisions, total := instance.solve()

	var items []int
	for i, taken := range decisions {
		if taken {
			items = append(items, i)
		}
	}

	return Solution{Items: items, TotalValue: total}
}

func (MinKnapSolver) Method() MethodTag { return MinKnapMethod }

// mkState is a frontier entry: the (weight, profit) reached relative to the
// break solution, and the in-progress fragment recording its recent
// add/remove decisions.
type mkState struct {
	weight uint64
	profit uint64
	frag   fragment
}

type minknapInstance struct {
	input *Input

	// ordering is the working item list (zero-weight and over-capacity
	// items removed), sorted by descending efficiency.
	ordering []orderedItem
	// decisionVec is the final answer's bit vector, seeded with zero-weight
	// items and the break solution, then corrected during reconstruction.
	decisionVec []bool
	baseProfit  uint64

	breakIndex int

	s, t int

	profitLowerBound uint64
	bestSolWeight    uint64
	maxAllowedWeight uint64

	store        *fragmentStore
	traversalLog []int
	bestFrag     fragment
	bestPosition int
}

func prepareItems(in *Input) ([]orderedItem, []bool, uint64) {
	items := in.Items()
	decisionVec := make([]bool, len(items))
	var baseProfit uint64

	ordering := make([]orderedItem, 0, len(items))
	for i, item := range items {
		switch {
		case item.Weight == 0:
			decisionVec[i] = true
			baseProfit += item.Profit
		case item.Weight <= in.Capacity():
			ordering = append(ordering, orderedItem{index: i, weight: item.Weight, profit: item.Profit})
		default:
			// infeasible singleton: weight alone exceeds capacity, dropped
		}
	}

	efficiencySorter{}.sortByEfficiencyDesc(ordering)
	return ordering, decisionVec, baseProfit
}

// computeBreakSolution greedily fills the knapsack along ordering, marking
// taken items in decisionVec, and returns the break index and the break
// solution's total weight/profit.
func computeBreakSolution(in *Input, ordering []orderedItem, decisionVec []bool) (breakIndex int, totalWeight, totalProfit uint64) {
	i := 0
	for ; i < len(ordering); i++ {
		item := ordering[i]
		if totalWeight+item.weight > in.Capacity() {
			break
		}
		totalWeight += item.weight
		totalProfit += item.profit
		decisionVec[item.index] = true
	}
	return i, totalWeight, totalProfit
}

func newMinknapInstance(in *Input) *minknapInstance {
	ordering, decisionVec, baseProfit := prepareItems(in)
	breakIndex, breakWeight, breakProfit := computeBreakSolution(in, ordering, decisionVec)

	return &minknapInstance{
		input:            in,
		ordering:         ordering,
		decisionVec:      decisionVec,
		baseProfit:       baseProfit,
		breakIndex:       breakIndex,
		s:                breakIndex,
		t:                breakIndex - 1,
		profitLowerBound: breakProfit,
		bestSolWeight:    breakWeight,
		maxAllowedWeight: in.Capacity() + breakWeight,
		store:            newFragmentStore(),
		bestPosition:     -1,
	}
}

// profitUpperBound estimates the best profit reachable from state
// (weight, profit) given the current core bounds [s, t], by linearly
// extending at the efficiency of the next item outside the core. All
// arithmetic is integer (cross-product/floor-division), per spec — no
// floating point, so no rounding drift can flip a pruning decision.
func (m *minknapInstance) profitUpperBound(weight, profit uint64, s, t int) uint64 {
	nPrime := len(m.ordering)
	capacity := m.input.Capacity()

	if weight <= capacity {
		if t+1 >= nPrime {
			return profit
		}
		weightDiff := capacity - weight
		next := m.ordering[t+1]
		return profit + (weightDiff*next.profit)/next.weight
	}

	if s == 0 {
		return profit
	}
	weightDiff := weight - capacity
	prev := m.ordering[s-1]
	deduction := (weightDiff * prev.profit) / prev.weight
	if deduction >= profit {
		return 0
	}
	return profit - deduction
}

func (m *minknapInstance) tryUpdateLowerBound(state mkState, position int) {
	if state.weight <= m.input.Capacity() && state.profit > m.profitLowerBound {
		m.profitLowerBound = state.profit
		m.bestSolWeight = state.weight
		m.bestFrag = state.frag
		m.bestPosition = position
	}
}

// appendNextState appends candidate to next, or overwrites next's last
// entry if it shares the same weight (maintaining strictly-increasing
// weight across the frontier).
func appendNextState(next *[]mkState, candidate mkState) {
	if n := len(*next); n > 0 && (*next)[n-1].weight == candidate.weight {
		(*next)[n-1] = candidate
		return
	}
	*next = append(*next, candidate)
}

// dominated reports whether a candidate with the given profit is no longer
// worth keeping relative to the last-appended next-frontier entry.
func dominated(next []mkState, profit uint64) bool {
	return len(next) > 0 && next[len(next)-1].profit >= profit
}

// exploreItemT expands the core's right wall: for each state in current,
// try including item t (the newly-admitted item), keeping the merged
// result ordered by strictly increasing weight and profit.
func (m *minknapInstance) exploreItemT(current []mkState, next *[]mkState) {
	m.traversalLog = append(m.traversalLog, m.t)
	position := len(m.traversalLog) - 1

	item := m.ordering[m.t]
	n := len(current)
	insertIdx, noInsertIdx := 0, 0

	for insertIdx < n || noInsertIdx < n {
		if noInsertIdx >= n || current[noInsertIdx].weight > current[insertIdx].weight+item.weight {
			candidate := mkState{
				weight: current[insertIdx].weight + item.weight,
				profit: current[insertIdx].profit + item.profit,
			}
			if candidate.weight > m.maxAllowedWeight || dominated(*next, candidate.profit) ||
				m.profitUpperBound(candidate.weight, candidate.profit, m.s, m.t) <= m.profitLowerBound {
				insertIdx++
				continue
			}

			candidate.frag = current[insertIdx].frag
			candidate.frag.addDecision(true)
			m.tryUpdateLowerBound(candidate, position)
			appendNextState(next, candidate)
			insertIdx++
		} else {
			candidate := current[noInsertIdx]
			if dominated(*next, candidate.profit) ||
				m.profitUpperBound(candidate.weight, candidate.profit, m.s, m.t) <= m.profitLowerBound {
				noInsertIdx++
				continue
			}

			candidate.frag.addDecision(false)
			appendNextState(next, candidate)
			noInsertIdx++
		}
	}
}

// exploreItemS expands the core's left wall: for each state in current,
// try excluding item s (the newly-variable item), symmetric to
// exploreItemT.
func (m *minknapInstance) exploreItemS(current []mkState, next *[]mkState) {
	m.traversalLog = append(m.traversalLog, m.s)
	position := len(m.traversalLog) - 1

	item := m.ordering[m.s]
	n := len(current)
	removeIdx, noRemoveIdx := 0, 0

	for removeIdx < n || noRemoveIdx < n {
		if removeIdx >= n || current[noRemoveIdx].weight <= current[removeIdx].weight-item.weight {
			candidate := current[noRemoveIdx]
			if dominated(*next, candidate.profit) ||
				m.profitUpperBound(candidate.weight, candidate.profit, m.s, m.t) <= m.profitLowerBound {
				noRemoveIdx++
				continue
			}

			candidate.frag.addDecision(false)
			appendNextState(next, candidate)
			noRemoveIdx++
		} else {
			candidate := mkState{
				weight: current[removeIdx].weight - item.weight,
				profit: current[removeIdx].profit - item.profit,
			}
			if candidate.weight > m.maxAllowedWeight || dominated(*next, candidate.profit) ||
				m.profitUpperBound(candidate.weight, candidate.profit, m.s, m.t) <= m.profitLowerBound {
				removeIdx++
				continue
			}

			candidate.frag = current[removeIdx].frag
			candidate.frag.addDecision(true)
			m.tryUpdateLowerBound(candidate, position)
			appendNextState(next, candidate)
			removeIdx++
		}
	}
}

// maybeFlush pushes every frontier state's fragment into the store once
// the traversal log has grown by another 64 decisions, giving each state a
// linked fragment history at O(1) amortized cost per decision.
func (m *minknapInstance) maybeFlush(next []mkState) {
	if len(m.traversalLog)%64 != 0 {
		return
	}
	for i := range next {
		idx := m.store.push(next[i].frag)
		next[i].frag = newFragment(idx)
	}
}

// solve runs the core expansion to termination and returns the final
// decision vector and the total value, including the base profit from
// pre-selected zero-weight items.
func (m *minknapInstance) solve() ([]bool, uint64) {
	nPrime := len(m.ordering)
	if m.breakIndex == nPrime {
		// Every item fits: the break solution is already optimal.
		return m.decisionVec, m.baseProfit + m.profitLowerBound
	}

	current := []mkState{{
		weight: m.bestSolWeight,
		profit: m.profitLowerBound,
		frag:   newFragment(noPrev),
	}}
	var next []mkState

	visited := 0
	for len(current) > 0 && visited < nPrime {
		if m.t+1 < nPrime {
			m.t++
			next = next[:0]
			m.exploreItemT(current, &next)
			m.maybeFlush(next)
			current, next = next, current
			visited++
		}

		if m.s > 0 {
			m.s--
			next = next[:0]
			m.exploreItemS(current, &next)
			m.maybeFlush(next)
			current, next = next, current
			visited++
		}
	}

	m.reconstruct()
	return m.decisionVec, m.baseProfit + m.profitLowerBound
}

// reconstruct walks the winning state's fragment chain backward, flipping
// decisionVec bits where the winning path diverges from the break
// solution it started from.
func (m *minknapInstance) reconstruct() {
	if m.bestPosition < 0 {
		return
	}

	pos := m.bestPosition
	frag := m.bestFrag

	for {
		count := (pos % 64) + 1
		for k := 0; k < count; k++ {
			if !frag.getDecision(k) {
				continue
			}
			j := m.traversalLog[pos-k]
			origIndex := m.ordering[j].index
			m.decisionVec[origIndex] = j >= m.breakIndex
		}

		pos -= count
		if frag.prev == noPrev {
			return
		}
		frag = m.store.get(frag.prev)
	}
}
