package knapsack

import "sort"

// orderedItem is an item positioned by efficiency (profit per unit weight),
// retaining its index into the original Input's item sequence.
type orderedItem struct {
	index  int
	weight uint64
	profit uint64
}

// moreEfficient reports whether a has strictly greater profit-per-weight
// than b, compared via the integer cross product p_a*w_b vs p_b*w_a to
// avoid floating-point rounding drift in the ordering MinKnap's bounds
// depend on.
func moreEfficient(a, b orderedItem) bool {
	return a.profit*b.weight > b.profit*a.weight
}

// insertionSortThreshold is the item count below which insertion sort beats
// the standard library's sort for this comparator; above it we defer to
// sort.SliceStable, a stable block-insertion-plus-merge sort that makes
// O(n log n) comparisons and wins asymptotically.
const insertionSortThreshold = 32

// efficiencySorter offers several interchangeable sorting strategies over
// the same comparator, picked by caller or by size. MinKnap's
// preprocessing always wants a stable descending-efficiency order; which
// strategy gets there is an implementation choice, not a correctness one.
type efficiencySorter struct{}

// sortByEfficiencyDesc sorts items by descending efficiency in place,
// choosing insertion sort for small inputs and the standard library's
// sort otherwise.
func (efficiencySorter) sortByEfficiencyDesc(items []orderedItem) {
	if len(items) <= insertionSortThreshold {
		insertionSortByEfficiency(items)
		return
	}
	quickSortByEfficiency(items)
}

// quickSortByEfficiency delegates to the standard library's stable slice
// sort (insertion-sorted blocks merged in place) rather than hand-rolling
// partitioning; items of equal efficiency keep their relative order.
func quickSortByEfficiency(items []orderedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return moreEfficient(items[i], items[j])
	})
}

// insertionSortByEfficiency sorts items descending by efficiency using
// insertion sort, efficient for the small cores MinKnap typically
// considers once zero-weight and oversized items are filtered out.
func insertionSortByEfficiency(items []orderedItem) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && moreEfficient(key, items[j]) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}

// selectionSortByEfficiency sorts items descending by efficiency using
// selection sort. Kept alongside insertion/quick sort to preserve the
// teacher's three-strategy shape; exercised directly by tests rather than
// by MinKnap's hot path.
func selectionSortByEfficiency(items []orderedItem) {
	for i := 0; i < len(items)-1; i++ {
		best := i
		for j := i + 1; j < len(items); j++ {
			if moreEfficient(items[j], items[best]) {
				best = j
			}
		}
		items[i], items[best] = items[best], items[i]
	}
}
