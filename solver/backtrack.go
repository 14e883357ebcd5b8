package solver

import (
	"fmt"

	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
	"github.com/bertbaron/sokoban-solver/stateindex"
)

// Backtrack walks r.Parents from r.Final back to the initial state and
// synthesizes the full sokoban.Moves sequence. Move-expansion edges already
// carry their Move; push-expansion edges only record the before/after
// State, so each one is expanded back into player-walk steps plus a single
// push, as original_source/src/solver/backtracking.rs does.
func Backtrack(lvl SolverLevel, r Result) sokoban.Moves {
	if !r.Solved {
		panic("solver: Backtrack called on an unsolved Result")
	}

	var edges []Edge
	h := r.Final
	for {
		edge, ok := r.Parents[h]
		if !ok {
			break
		}
		edges = append(edges, edge)
		h = edge.From
	}
	// edges is final-to-start; reverse to start-to-final.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	var moves sokoban.Moves
	prevHandle := firstFrom(r, edges)
	prevState := r.Index.Lookup(prevHandle)

	for _, e := range edges {
		if e.Succ.HasMove {
			moves = append(moves, e.Succ.Move)
			prevState = e.Succ.State
			continue
		}
		moves = moves.Append(synthesizePush(lvl, prevState, e.Succ.State))
		prevState = e.Succ.State
	}
	return moves
}

func firstFrom(r Result, edges []Edge) stateindex.Handle {
	if len(edges) == 0 {
		return r.Final
	}
	return edges[0].From
}

// synthesizePush finds the single box that moved between from and to,
// derives the push direction, walks the player from its current cell to the
// push-start cell (the box's old position minus that direction) and emits
// the walk as steps followed by the push itself.
func synthesizePush(lvl SolverLevel, from, to level.State) sokoban.Moves {
	oldBox, newBox, disposed, ok := diffOneBox(from, to)
	if !ok {
		panic("solver: push-expansion edge did not move exactly one box")
	}
	if disposed {
		newBox, ok = removerNeighbor(lvl, oldBox)
		if !ok {
			panic(fmt.Sprintf("solver: box at %v vanished without an adjacent remover", oldBox))
		}
	}
	dir, ok := oldBox.DirTo(newBox)
	if !ok || oldBox.Dist(newBox) != 1 {
		panic(fmt.Sprintf("solver: push edge %v -> %v is not a unit step", oldBox, newBox))
	}
	pushStartPos := oldBox.Add(dir.Inverse())

	walk := walkPlayer(lvl, from, pushStartPos)
	return append(walk, sokoban.Move{Dir: dir, IsPush: true})
}

// removerNeighbor finds the single Remover cell adjacent to pos, used to
// recover the push direction of a box that a push disposed of entirely.
func removerNeighbor(lvl SolverLevel, pos sokoban.Pos) (sokoban.Pos, bool) {
	grid := lvl.Map.Grid
	found := sokoban.Pos{}
	ok := false
	for _, d := range sokoban.Directions {
		n := pos.Add(d)
		if grid.InBounds(n) && grid.At(n) == sokoban.CellRemover {
			if ok {
				return sokoban.Pos{}, false
			}
			found, ok = n, true
		}
	}
	return found, ok
}

// diffOneBox returns the single box position present in from but not in to,
// and the single position present in to but not in from. disposed is true
// when a remover consumed the box entirely, leaving no newPos.
func diffOneBox(from, to level.State) (oldPos, newPos sokoban.Pos, disposed, ok bool) {
	var oldOnly, newOnly []sokoban.Pos
	for _, b := range from.Boxes {
		if !to.HasBox(b) {
			oldOnly = append(oldOnly, b)
		}
	}
	for _, b := range to.Boxes {
		if !from.HasBox(b) {
			newOnly = append(newOnly, b)
		}
	}
	if len(oldOnly) != 1 {
		return sokoban.Pos{}, sokoban.Pos{}, false, false
	}
	if len(newOnly) == 0 && len(to.Boxes) == len(from.Boxes)-1 {
		return oldOnly[0], sokoban.Pos{}, true, true
	}
	if len(newOnly) != 1 {
		return sokoban.Pos{}, sokoban.Pos{}, false, false
	}
	return oldOnly[0], newOnly[0], false, true
}

// walkPlayer finds the shortest step-only path for the player in state from
// its current position to target, treating every box as an obstacle. The
// level is already known passable between these two points because the
// push-expansion BFS that produced `to` proved it.
func walkPlayer(lvl SolverLevel, from level.State, target sokoban.Pos) sokoban.Moves {
	if from.PlayerPos == target {
		return nil
	}
	grid := lvl.Map.Grid
	type node struct {
		pos  sokoban.Pos
		path sokoban.Moves
	}
	visited := grid.ScratchpadWithDefault(false)
	visited.Set(from.PlayerPos, true)
	queue := []node{{pos: from.PlayerPos}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range sokoban.Directions {
			next := cur.pos.Add(d)
			if !grid.InBounds(next) || grid.At(next) == sokoban.CellWall || from.HasBox(next) || visited.At(next) {
				continue
			}
			path := append(append(sokoban.Moves{}, cur.path...), sokoban.Move{Dir: d, IsPush: false})
			if next == target {
				return path
			}
			visited.Set(next, true)
			queue = append(queue, node{pos: next, path: path})
		}
	}
	panic(fmt.Sprintf("solver: no walk path from %v to %v", from.PlayerPos, target))
}
