// Package service holds the HTTP-facing business logic that sits between
// the knapsack package's pure solvers and the gin handlers: request
// validation, method lookup, and response shaping.
package service

import (
	"errors"
	"fmt"

	"ms-knapsack-go/internal/knapsack"
)

// KnapsackService wraps the solver Registry behind a request/response
// contract suited to JSON transport.
type KnapsackService struct {
	registry knapsack.Registry
}

// NewKnapsackService builds a service backed by the standard solver
// registry. The registry is built once and never mutated, so it is safe
// to share across concurrent requests.
func NewKnapsackService() *KnapsackService {
	return &KnapsackService{registry: knapsack.NewRegistry()}
}

// SolveRequest is the JSON body of a solve request.
type SolveRequest struct {
	Items       []knapsack.Item `json:"items"`
	Capacity    uint64          `json:"capacity"`
	Granularity uint32          `json:"granularity,omitempty"`
	Method      string          `json:"method"`
}

// SolveResponse is the JSON body of a solve response.
type SolveResponse struct {
	Success  bool              `json:"success"`
	Method   string            `json:"method,omitempty"`
	Solution *knapsack.Solution `json:"solution,omitempty"`
	Error    string            `json:"error,omitempty"`
}

var errUnknownMethod = errors.New("unknown method")

func parseMethod(name string) (knapsack.MethodTag, error) {
	switch name {
	case "", "MinKnap":
		return knapsack.MinKnapMethod, nil
	case "Dp":
		return knapsack.Dp, nil
	case "Bkt":
		return knapsack.Bkt, nil
	case "Fptas":
		return knapsack.Fptas, nil
	default:
		return 0, errUnknownMethod
	}
}

// Solve validates req, builds an Input, and dispatches to the requested
// solver (MinKnap by default). Validation and parsing failures surface as
// a non-success response rather than an error return, matching the
// teacher's CalculateOptimalChange/OptimizeInventory convention of
// reporting failure through the response body.
func (s *KnapsackService) Solve(req SolveRequest) SolveResponse {
	method, err := parseMethod(req.Method)
	if err != nil {
		return SolveResponse{Success: false, Error: fmt.Sprintf("unknown method %q", req.Method)}
	}

	granularity := req.Granularity
	if granularity == 0 {
		granularity = 1
	}

	in, err := knapsack.New(req.Items, req.Capacity, granularity)
	if err != nil {
		return SolveResponse{Success: false, Error: err.Error()}
	}

	solver, ok := s.registry.Get(method)
	if !ok {
		return SolveResponse{Success: false, Error: fmt.Sprintf("unknown method %q", req.Method)}
	}

	solution := solver.Solve(in)
	return SolveResponse{Success: true, Method: method.String(), Solution: &solution}
}

// SupportedAlgorithms describes the registry's solvers for the
// /api/knapsack/algorithms endpoint.
func (s *KnapsackService) SupportedAlgorithms() map[string]any {
	return map[string]any{
		"Dp": map[string]any{
			"description": "Profit-indexed dynamic program, space-optimized to O(P). Exact, value-only.",
			"complexity":  "O(n*P) time, O(P) space",
		},
		"Bkt": map[string]any{
			"description": "Exhaustive non-recursive backtracking over include/exclude decisions. Exact, exponential.",
			"complexity":  "O(2^n) worst case",
		},
		"Fptas": map[string]any{
			"description": "Profit-rescaling approximation scheme parameterized by granularity.",
			"complexity":  "O(granularity*n^3) time, approximate",
		},
		"MinKnap": map[string]any{
			"description": "Pisinger's expanding-core primal-dual algorithm with dominance pruning. Exact, typically sub-exponential in practice.",
			"complexity":  "pseudopolynomial worst case, fast in practice",
		},
	}
}
