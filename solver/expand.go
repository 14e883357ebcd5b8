package solver

import (
	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

// Successor is one edge out of a search node: the state it leads to and the
// incremental Cost of taking it. HasMove/Move are only populated by
// move-expansion, where a transition already corresponds to exactly one
// sokoban.Move; push-expansion leaves HasMove false and backtrack.go
// synthesizes the move sequence afterwards from the box-position diff.
type Successor struct {
	State   level.State
	Cost    Cost
	Move    sokoban.Move
	HasMove bool
}

// Expand lists every successor of s in a SolverLevel. one is the Cost of a
// single unit of whatever this expansion counts (a push, for push-expansion);
// its concrete type (SimpleCost vs ComplexCost) selects which bookkeeping
// Expand performs. Grounded on original_source/src/solver/graph.rs's
// `Expand` trait with two implementors.
type Expand func(lvl SolverLevel, s level.State, one Cost) []Successor

// ExpandPush is the push-normalized expansion: an edge is a single push,
// collapsing the walk from the player's current position to the push start
// cell into the edge. The successor's player position is the pre-push box
// cell, which is where the player stands right after the push (spec.md §9's
// partial normalization); the walk to the push-start cell behind the box is
// not stored and is rebuilt during move synthesis. Grounded on
// original_source/src/solver/graph.rs's push expansion and
// original_source/src/solver/preprocessing.rs's reachability flood.
func ExpandPush(lvl SolverLevel, s level.State, one Cost) []Successor {
	grid := lvl.Map.Grid
	occupied := grid.ScratchpadWithDefault(false)
	for _, b := range s.Boxes {
		occupied.Set(b, true)
	}

	dist := grid.ScratchpadWithDefault(sokoban.None)
	dist.Set(s.PlayerPos, sokoban.Some(0))
	toVisit := []sokoban.Pos{s.PlayerPos}

	var successors []Successor

	for len(toVisit) > 0 {
		cur := toVisit[0]
		toVisit = toVisit[1:]
		curDist := dist.At(cur).Value

		for _, d := range sokoban.Directions {
			next := cur.Add(d)
			if !grid.InBounds(next) || grid.At(next) == sokoban.CellWall {
				continue
			}
			if occupied.At(next) {
				behind := next.Add(d)
				if !grid.InBounds(behind) || grid.At(behind) == sokoban.CellWall ||
					occupied.At(behind) || lvl.DeadEnds.At(behind) {
					continue
				}
				walkSteps := curDist
				successors = append(successors, Successor{
					State: pushResult(s, grid, next, behind),
					Cost:  pushEdgeCost(one, walkSteps),
				})
				continue
			}
			if !dist.At(next).Valid {
				dist.Set(next, sokoban.Some(curDist+1))
				toVisit = append(toVisit, next)
			}
		}
	}
	return successors
}

// pushEdgeCost builds the Cost of a push-expansion edge whose player walked
// walkSteps cells before pushing. For SimpleCost it's always one push; for
// ComplexCost (PushesMoves: primary pushes, secondary moves) the secondary
// component accounts for the walk plus the push itself.
func pushEdgeCost(one Cost, walkSteps uint16) Cost {
	switch one.(type) {
	case SimpleCost:
		return SimpleOne()
	case ComplexCost:
		return ComplexCost{Primary: 1, Secondary: walkSteps + 1}
	default:
		panic("solver: unsupported cost type in pushEdgeCost")
	}
}

// ExpandMove is the single-step expansion: every edge is one player move,
// either a step into an empty cell or a push of an adjacent box. Grounded on
// original_source/src/solver/graph.rs's move expansion.
func ExpandMove(lvl SolverLevel, s level.State, one Cost) []Successor {
	grid := lvl.Map.Grid
	var successors []Successor

	for _, d := range sokoban.Directions {
		next := s.PlayerPos.Add(d)
		if !grid.InBounds(next) || grid.At(next) == sokoban.CellWall {
			continue
		}
		if boxIdx := s.BoxIndex(next); boxIdx >= 0 {
			behind := next.Add(d)
			if !grid.InBounds(behind) || grid.At(behind) == sokoban.CellWall ||
				s.HasBox(behind) || lvl.DeadEnds.At(behind) {
				continue
			}
			successors = append(successors, Successor{
				State:   pushResult(s, grid, next, behind),
				Cost:    moveEdgeCost(one, true),
				Move:    sokoban.Move{Dir: d, IsPush: true},
				HasMove: true,
			})
			continue
		}
		successors = append(successors, Successor{
			State:   s.WithStep(next),
			Cost:    moveEdgeCost(one, false),
			Move:    sokoban.Move{Dir: d, IsPush: false},
			HasMove: true,
		})
	}
	return successors
}

// pushResult applies a push of the box at boxPos to destPos, disposing of
// the box entirely if destPos is a Remover cell instead of placing it there.
func pushResult(s level.State, grid sokoban.Grid[sokoban.MapCell], boxPos, destPos sokoban.Pos) level.State {
	if grid.At(destPos) == sokoban.CellRemover {
		return s.WithoutBox(boxPos)
	}
	return s.WithPush(boxPos, destPos)
}

// moveEdgeCost builds the Cost of a single move. For SimpleCost every move
// (step or push) costs one. For ComplexCost (MovesPushes: primary moves,
// secondary pushes) a push additionally increments the secondary component.
func moveEdgeCost(one Cost, isPush bool) Cost {
	switch one.(type) {
	case SimpleCost:
		return SimpleOne()
	case ComplexCost:
		c := ComplexOne()
		if isPush {
			c = c.Add(ComplexPush()).(ComplexCost)
		}
		return c
	default:
		panic("solver: unsupported cost type in moveEdgeCost")
	}
}
