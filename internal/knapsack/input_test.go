package knapsack

import (
	"errors"
	"testing"
)

func TestNewRejectsZeroCapacity(t *testing.T) {
	_, err := New([]Item{NewItem(1, 1)}, 0, 1)
	var ie *InputError
	if !errors.As(err, &ie) || ie.Kind != ErrInvalidCapacity {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestNewRejectsZeroGranularity(t *testing.T) {
	_, err := New([]Item{NewItem(1, 1)}, 10, 0)
	var ie *InputError
	if !errors.As(err, &ie) || ie.Kind != ErrInvalidGranularity {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
}

func TestNewAllowsEmptyItems(t *testing.T) {
	in, err := New(nil, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.Items()) != 0 {
		t.Fatalf("expected no items, got %d", len(in.Items()))
	}
}

func TestNewCopiesItemsDefensively(t *testing.T) {
	items := []Item{NewItem(1, 1)}
	in, err := New(items, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items[0] = NewItem(99, 99)
	if in.Items()[0].Weight == 99 {
		t.Fatal("Input must not alias caller's item slice")
	}
}

func TestSetGranularityValidates(t *testing.T) {
	in, _ := New(nil, 10, 1)
	if err := in.SetGranularity(0); err == nil {
		t.Fatal("expected error for zero granularity")
	}
	if err := in.SetGranularity(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Granularity() != 5 {
		t.Fatalf("expected granularity 5, got %d", in.Granularity())
	}
}

func TestMaxCostAndMaxItemProfit(t *testing.T) {
	in, _ := New([]Item{NewItem(3, 10), NewItem(7, 2), NewItem(1, 5)}, 20, 1)
	if got := in.MaxCost(); got != 7 {
		t.Fatalf("MaxCost: expected 7, got %d", got)
	}
	if got := in.MaxItemProfit(); got != 17 {
		t.Fatalf("MaxItemProfit: expected 17, got %d", got)
	}
}

func TestInputErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newReadErr(cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected InputError to unwrap to its cause")
	}
}
