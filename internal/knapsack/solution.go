package knapsack

// Solution is the result of a solver run: the selected item indices (into
// the Input's item sequence, ascending, distinct) and their total profit.
// For DpSolver, Items is always empty — see DpSolver.Solve.
type Solution struct {
	Items      []int  `json:"items"`
	TotalValue uint64 `json:"total_value"`
}

// MethodTag identifies which solver produced a Solution.
type MethodTag int

const (
	Dp MethodTag = iota
	Bkt
	Fptas
	MinKnapMethod
)

func (m MethodTag) String() string {
	switch m {
	case Dp:
		return "Dp"
	case Bkt:
		return "Bkt"
	case Fptas:
		return "Fptas"
	case MinKnapMethod:
		return "MinKnap"
	default:
		return "Unknown"
	}
}

// Solver is the uniform contract every knapsack algorithm implements:
// Solve is pure and deterministic for a given Input, and Method identifies
// the implementation for output labeling and registry lookup.
type Solver interface {
	Solve(in *Input) Solution
	Method() MethodTag
}

// Registry maps a MethodTag to the Solver instance that implements it.
type Registry map[MethodTag]Solver

// NewRegistry builds the standard registry covering all four solvers.
func NewRegistry() Registry {
	return Registry{
		Dp:            DpSolver{},
		Bkt:           BktSolver{},
		Fptas:         FptasSolver{},
		MinKnapMethod: MinKnapSolver{},
	}
}

// Get looks up a solver by tag.
func (r Registry) Get(method MethodTag) (Solver, bool) {
	s, ok := r[method]
	return s, ok
}
