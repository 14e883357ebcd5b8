package solver

import (
	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

// Heuristic estimates the remaining cost from s to a solved state, in the
// same units zero's dynamic type represents. It must return a lower bound
// on the *pushes* remaining: since every push is also a move, that bound is
// admissible whether the search is counting pushes or moves. Grounded on
// original_source/src/solver/a_star.rs's heuristic hook.
type Heuristic func(lvl SolverLevel, s level.State, zero Cost) Cost

// HeuristicPush sums, over every box not already on a goal/remover, the
// precomputed closest push distance from its current cell. Grounded on
// original_source/src/solver/preprocessing.rs::closest_push_dists and its
// use as the A* heuristic in original_source/src/solver/a_star.rs.
func HeuristicPush(lvl SolverLevel, s level.State, zero Cost) Cost {
	total := 0
	for _, b := range s.Boxes {
		if lvl.Map.Grid.At(b) == sokoban.CellGoal {
			continue
		}
		d := lvl.ClosestPushDists.At(b)
		if !d.Valid {
			// No push path to any goal at all: this box can never be
			// delivered, so no solved state is reachable from s and the
			// sub-state can be pruned hard.
			return costFromInt(zero, 1<<16-1)
		}
		total += int(d.Value)
	}
	return costFromInt(zero, total)
}

// HeuristicManhattan sums Manhattan distances from each box to its nearest
// goal cell. It's a much weaker bound than HeuristicPush but doesn't need
// ClosestPushDists, so it's the heuristic used while that very table is
// still being computed (single-box dead-end probing in preprocess.go).
func HeuristicManhattan(lvl SolverLevel, s level.State, zero Cost) Cost {
	total := 0
	for _, b := range s.Boxes {
		best := -1
		for _, g := range lvl.Map.Goals {
			d := b.Dist(g)
			if best == -1 || d < best {
				best = d
			}
		}
		if best == -1 {
			best = 0
		}
		total += best
	}
	return costFromInt(zero, total)
}

// costFromInt builds a Cost of the same dynamic type as zero, carrying the
// scalar value h in its primary (or only) component.
func costFromInt(zero Cost, h int) Cost {
	switch zero.(type) {
	case SimpleCost:
		return SimpleCost(h)
	case ComplexCost:
		return ComplexCost{Primary: uint16(h)}
	default:
		panic("solver: unsupported cost type in costFromInt")
	}
}
