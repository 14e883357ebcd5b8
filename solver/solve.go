package solver

import (
	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

// Method selects what the search optimizes and, indirectly, which
// expansion model it uses. Grounded on original_source/src/solver/mod.rs's
// `Method` enum.
type Method int

const (
	// MovesPushes minimizes moves first, pushes second, via move-expansion.
	MovesPushes Method = iota
	// Moves minimizes moves only, via move-expansion.
	Moves
	// PushesMoves minimizes pushes first, moves second, via push-expansion.
	PushesMoves
	// Pushes minimizes pushes only, via push-expansion.
	Pushes
	// Any accepts whatever solution is cheapest to find; it behaves like
	// Pushes, the coarsest-grained and therefore fastest-to-search
	// expansion, since the caller has declared no preference over the
	// resulting move sequence.
	Any
)

func (m Method) String() string {
	switch m {
	case MovesPushes:
		return "moves-pushes"
	case Moves:
		return "moves"
	case PushesMoves:
		return "pushes-moves"
	case Pushes:
		return "pushes"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

// Solution is the result of a successful Solve: the moves to replay and the
// search statistics collected along the way.
type Solution struct {
	Moves sokoban.Moves
	Stats Stats
}

// Solve preprocesses (m, s), then searches for a solution optimizing the
// given Method. trackStats enables the per-depth bookkeeping in Stats;
// disable it for speed when only the solution itself matters. Grounded on
// original_source/src/solver/mod.rs::solve, the top-level orchestration of
// processed_map/find_dead_ends, the A* search and backtracking.
func Solve(m level.Map, s level.State, method Method, trackStats bool) (Solution, error) {
	lvl, err := Preprocess(m, s)
	if err != nil {
		return Solution{}, err
	}

	expand, heuristic, zero, one := methodConfig(method)

	result := Search(lvl, expand, heuristic, zero, one, trackStats)
	if !result.Solved {
		return Solution{Stats: result.Stats}, ErrNoSolution
	}

	moves := Backtrack(lvl, result)
	return Solution{Moves: moves, Stats: result.Stats}, nil
}

func methodConfig(method Method) (Expand, Heuristic, Cost, Cost) {
	switch method {
	case MovesPushes:
		return ExpandMove, HeuristicPush, ComplexZero(), ComplexOne()
	case Moves:
		return ExpandMove, HeuristicPush, SimpleZero(), SimpleOne()
	case PushesMoves:
		return ExpandPush, HeuristicPush, ComplexZero(), ComplexOne()
	case Pushes, Any:
		return ExpandPush, HeuristicPush, SimpleZero(), SimpleOne()
	default:
		panic("solver: unknown Method")
	}
}
