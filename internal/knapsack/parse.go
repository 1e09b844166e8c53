package knapsack

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads the textual knapsack encoding from r:
//
//	line 1:        n, the item count
//	line 2:        C, the capacity
//	lines 3..n+2:  "profit weight" pairs, whitespace separated
//
// Empty lines (after trimming) are skipped entirely; trailing content past
// item n is ignored. Granularity defaults to 1 (the text format carries no
// granularity field — callers needing FPTAS call SetGranularity after).
func Parse(r io.Reader) (*Input, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, newReadErr(err)
	}

	next := func() (string, bool) {
		if len(lines) == 0 {
			return "", false
		}
		line := lines[0]
		lines = lines[1:]
		return line, true
	}

	countLine, ok := next()
	if !ok {
		return nil, newErr(ErrMissingItemCount)
	}
	n, err := strconv.Atoi(countLine)
	if err != nil || n < 0 {
		return nil, newErr(ErrInvalidItemCount)
	}

	capLine, ok := next()
	if !ok {
		return nil, newErr(ErrMissingCapacity)
	}
	capacity, err := strconv.ParseUint(capLine, 10, 64)
	if err != nil {
		return nil, newErr(ErrInvalidCapacity)
	}

	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		line, ok := next()
		if !ok {
			return nil, newErr(ErrInsufficientItems)
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, newErr(ErrInvalidItemSpecification)
		}

		profit, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, newErr(ErrInvalidItemValue)
		}
		weight, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, newErr(ErrInvalidItemWeight)
		}

		items = append(items, NewItem(weight, profit))
	}

	return New(items, capacity, 1)
}

// nonEmptyLines tokenizes r into trimmed, non-empty lines, in order.
func nonEmptyLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
