package solver

import (
	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

// SolverLevel is the preprocessed, solver-ready bundle produced by
// Preprocess: the map and initial state with all unreachable cells turned
// to wall, the single-cell dead-end grid, and the two lookup tables the
// heuristic and dead-end detection need.
type SolverLevel struct {
	Map              level.Map
	InitialState     level.State
	DeadEnds         sokoban.Grid[bool]
	PushDists        sokoban.Grid[[4]sokoban.Grid[sokoban.OptionalU16]]
	ClosestPushDists sokoban.Grid[sokoban.OptionalU16]
}
