package knapsack

import "testing"

func mustInput(t *testing.T, items []Item, capacity uint64) *Input {
	t.Helper()
	in, err := New(items, capacity, 1)
	if err != nil {
		t.Fatalf("unexpected error building input: %v", err)
	}
	return in
}

func TestDpTextbookTiny(t *testing.T) {
	in := mustInput(t, []Item{NewItem(10, 60), NewItem(20, 100), NewItem(30, 120)}, 50)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 220 {
		t.Fatalf("expected total_value 220, got %d", sol.TotalValue)
	}
}

func TestDpForcedExclusion(t *testing.T) {
	in := mustInput(t, []Item{NewItem(5, 10), NewItem(4, 40), NewItem(6, 30), NewItem(3, 50)}, 10)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 90 {
		t.Fatalf("expected total_value 90, got %d", sol.TotalValue)
	}
}

func TestDpZeroWeightBooster(t *testing.T) {
	in := mustInput(t, []Item{NewItem(0, 5), NewItem(1, 1), NewItem(10, 10)}, 1)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 6 {
		t.Fatalf("expected total_value 6, got %d", sol.TotalValue)
	}
}

func TestDpInfeasibleSingletonDropped(t *testing.T) {
	in := mustInput(t, []Item{NewItem(999, 100), NewItem(1, 1)}, 1)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 1 {
		t.Fatalf("expected total_value 1, got %d", sol.TotalValue)
	}
}

func TestDpEmptyItems(t *testing.T) {
	in := mustInput(t, nil, 10)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 0 {
		t.Fatalf("expected total_value 0, got %d", sol.TotalValue)
	}
}

func TestDpSingleItemFits(t *testing.T) {
	in := mustInput(t, []Item{NewItem(5, 42)}, 10)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 42 {
		t.Fatalf("expected total_value 42, got %d", sol.TotalValue)
	}
}

func TestDpSingleItemDoesNotFit(t *testing.T) {
	in := mustInput(t, []Item{NewItem(50, 42)}, 10)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 0 {
		t.Fatalf("expected total_value 0, got %d", sol.TotalValue)
	}
}

func TestDpAllItemsFit(t *testing.T) {
	items := []Item{NewItem(1, 1), NewItem(2, 2), NewItem(3, 3)}
	in := mustInput(t, items, 100)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 6 {
		t.Fatalf("expected total_value 6, got %d", sol.TotalValue)
	}
}

func TestDpIgnoresZeroProfitItems(t *testing.T) {
	in := mustInput(t, []Item{NewItem(5, 0), NewItem(5, 10)}, 10)
	sol := DpSolver{}.Solve(in)
	if sol.TotalValue != 10 {
		t.Fatalf("expected total_value 10, got %d", sol.TotalValue)
	}
}

func TestSolveProfitDPWitnessMatchesDpValue(t *testing.T) {
	items := []Item{NewItem(10, 60), NewItem(20, 100), NewItem(30, 120)}
	in := mustInput(t, items, 50)
	witness := solveProfitDPWitness(items, in.Capacity())
	dp := DpSolver{}.Solve(in)
	if witness.TotalValue != dp.TotalValue {
		t.Fatalf("witness total %d disagrees with DP total %d", witness.TotalValue, dp.TotalValue)
	}

	var weight, profit uint64
	seen := map[int]bool{}
	for _, idx := range witness.Items {
		if seen[idx] {
			t.Fatalf("duplicate item index %d in witness", idx)
		}
		seen[idx] = true
		weight += items[idx].Weight
		profit += items[idx].Profit
	}
	if weight > in.Capacity() {
		t.Fatalf("witness weight %d exceeds capacity %d", weight, in.Capacity())
	}
	if profit != witness.TotalValue {
		t.Fatalf("witness items sum to profit %d, reported %d", profit, witness.TotalValue)
	}
}
