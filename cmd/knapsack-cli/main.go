// Command knapsack-cli reads a knapsack instance from stdin in the text
// format Parse understands (item count, capacity, then "profit weight"
// pairs) and prints the solution: total value on the first line, selected
// item indices space-joined on the second.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ms-knapsack-go/internal/knapsack"
)

func main() {
	method := flag.String("method", "MinKnap", "solver to use: Dp, Bkt, Fptas, MinKnap")
	granularity := flag.Uint("granularity", 20, "FPTAS granularity (only used when -method=Fptas)")
	flag.Parse()

	in, err := knapsack.Parse(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	tag, err := parseMethodTag(*method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if tag == knapsack.Fptas {
		if err := in.SetGranularity(uint32(*granularity)); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	registry := knapsack.NewRegistry()
	solver, _ := registry.Get(tag)
	solution := solver.Solve(in)

	fmt.Println(solution.TotalValue)
	fmt.Println(joinInts(solution.Items))
}

func parseMethodTag(name string) (knapsack.MethodTag, error) {
	switch name {
	case "Dp":
		return knapsack.Dp, nil
	case "Bkt":
		return knapsack.Bkt, nil
	case "Fptas":
		return knapsack.Fptas, nil
	case "MinKnap":
		return knapsack.MinKnapMethod, nil
	default:
		return 0, fmt.Errorf("unknown method %q", name)
	}
}

func joinInts(items []int) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
