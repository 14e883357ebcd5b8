package solver

import (
	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

// Preprocess converts a parsed (Map, State) into a SolverLevel, or returns
// one of the sentinel errors in errors.go. Grounded on
// original_source/src/solver/mod.rs::processed_map (reachability, box/goal
// validation, wall-canonicalization) and
// original_source/src/solver/preprocessing.rs (push_dists,
// one_box_push_dirs, closest_push_dists); dead-end detection follows
// original_source/src/solver/mod.rs::find_dead_ends.
func Preprocess(m level.Map, s level.State) (SolverLevel, error) {
	if int(m.Grid.Rows()) > 255 || int(m.Grid.Cols()) > 255 {
		return SolverLevel{}, ErrTooLarge
	}

	processedGrid, err := checkReachability(m.Grid, s.PlayerPos)
	if err != nil {
		return SolverLevel{}, err
	}

	reachable := reachabilityMask(m.Grid, s.PlayerPos)

	var reachableBoxes, reachableGoals []sokoban.Pos
	for _, b := range s.Boxes {
		if reachable.At(b) {
			reachableBoxes = append(reachableBoxes, b)
		} else if m.Grid.At(b) != sokoban.CellGoal {
			return SolverLevel{}, ErrUnreachableBoxes
		}
	}
	for _, g := range m.Goals {
		if reachable.At(g) {
			reachableGoals = append(reachableGoals, g)
		} else if !containsPos(s.Boxes, g) {
			return SolverLevel{}, ErrUnreachableGoals
		}
	}

	if len(reachableBoxes) != len(reachableGoals) {
		return SolverLevel{}, ErrBoxesGoals
	}
	if len(reachableBoxes) > 255 {
		return SolverLevel{}, ErrTooMany
	}

	processedMap := level.Map{Grid: processedGrid, Goals: reachableGoals}
	cleanState := level.NewState(s.PlayerPos, reachableBoxes)

	deadEnds := findDeadEnds(processedMap)
	pushDists := computePushDists(processedMap)
	closestPushDists := computeClosestPushDists(processedMap, pushDists)

	return SolverLevel{
		Map:              processedMap,
		InitialState:     cleanState,
		DeadEnds:         deadEnds,
		PushDists:        pushDists,
		ClosestPushDists: closestPushDists,
	}, nil
}

func containsPos(ps []sokoban.Pos, p sokoban.Pos) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// checkReachability floods from playerPos across non-wall cells and returns
// a copy of grid with every unreached cell rewritten to Wall. It is the only
// place in the solver that needs to bounds-check: everything downstream is
// guaranteed to be surrounded by wall.
func checkReachability(grid sokoban.Grid[sokoban.MapCell], playerPos sokoban.Pos) (sokoban.Grid[sokoban.MapCell], error) {
	visited, err := floodFill(grid, playerPos)
	if err != nil {
		return sokoban.Grid[sokoban.MapCell]{}, err
	}

	processed := grid.Clone()
	grid.Each(func(p sokoban.Pos) {
		if !visited.At(p) {
			processed.Set(p, sokoban.CellWall)
		}
	})
	return processed, nil
}

func reachabilityMask(grid sokoban.Grid[sokoban.MapCell], playerPos sokoban.Pos) sokoban.Grid[bool] {
	visited, err := floodFill(grid, playerPos)
	if err != nil {
		// checkReachability already validated the border; a second call
		// can't fail.
		panic("solver: reachability changed between checks: " + err.Error())
	}
	return visited
}

// floodFill walks every non-wall cell reachable from start, returning the
// visited grid. It fails with ErrIncompleteBorder if the flood would step
// out of bounds before hitting a wall.
func floodFill(grid sokoban.Grid[sokoban.MapCell], start sokoban.Pos) (sokoban.Grid[bool], error) {
	visited := grid.Scratchpad()
	toVisit := []sokoban.Pos{start}

	for len(toVisit) > 0 {
		n := len(toVisit) - 1
		cur := toVisit[n]
		toVisit = toVisit[:n]
		if visited.At(cur) {
			continue
		}
		visited.Set(cur, true)

		r, c := int(cur.R), int(cur.C)
		neighbors := [4][2]int{{r + 1, c}, {r - 1, c}, {r, c + 1}, {r, c - 1}}
		for _, nb := range neighbors {
			nr, nc := nb[0], nb[1]
			if nr < 0 || nc < 0 || nr >= int(grid.Rows()) || nc >= int(grid.Cols()) {
				return sokoban.Grid[bool]{}, ErrIncompleteBorder
			}
			np := sokoban.Pos{R: uint8(nr), C: uint8(nc)}
			if !visited.At(np) && grid.At(np) != sokoban.CellWall {
				toVisit = append(toVisit, np)
			}
		}
	}
	return visited, nil
}

// findDeadEnds marks every non-wall cell from which a single box, placed
// there, can't be delivered to any goal under any initial push direction.
// It runs the search engine (with an all-false dead-end grid, since the
// table being computed doesn't exist yet) on one-box sub-problems — safe
// because the engine has no hidden mutable state (spec.md §9).
func findDeadEnds(m level.Map) sokoban.Grid[bool] {
	deadEnds := m.Grid.Scratchpad()
	empty := m.Grid.ScratchpadWithDefault(false)

cells:
	for _, boxPos := range m.Grid.Positions() {
		if m.Grid.At(boxPos) == sokoban.CellWall {
			continue
		}

		for _, dir := range sokoban.Directions {
			playerPos := boxPos.Add(dir)
			if !m.Grid.InBounds(playerPos) || m.Grid.At(playerPos) == sokoban.CellWall {
				continue
			}

			fakeState := level.NewState(playerPos, []sokoban.Pos{boxPos})
			fakeLevel := SolverLevel{Map: m, InitialState: fakeState, DeadEnds: empty}
			result := Search(fakeLevel, ExpandPush, HeuristicManhattan, SimpleZero(), SimpleOne(), false)
			if result.Solved {
				continue cells // only need one solution to prove this isn't a dead end
			}
		}
		deadEnds.Set(boxPos, true)
	}
	return deadEnds
}

// oneBoxPushDirs finds every direction in which a lone box at boxPos can be
// pushed, given the player starts at playerStartPos: a BFS on the empty
// board (ignoring any other box) that stops as soon as all four directions
// are confirmed. Grounded on
// original_source/src/solver/preprocessing.rs::one_box_push_dirs.
func oneBoxPushDirs(m level.Map, boxPos, playerStartPos sokoban.Pos) []sokoban.Dir {
	var ret []sokoban.Dir

	touched := m.Grid.Scratchpad()
	touched.Set(playerStartPos, true)

	toVisit := []sokoban.Pos{playerStartPos}
	for len(toVisit) > 0 {
		cur := toVisit[0]
		toVisit = toVisit[1:]

		for _, dir := range sokoban.Directions {
			next := cur.Add(dir)
			if next == boxPos {
				behind := next.Add(dir)
				if m.Grid.InBounds(behind) && m.Grid.At(behind) != sokoban.CellWall {
					ret = append(ret, dir)
					if len(ret) == 4 {
						return ret
					}
				}
			} else if m.Grid.InBounds(next) && m.Grid.At(next) != sokoban.CellWall && !touched.At(next) {
				touched.Set(next, true)
				toVisit = append(toVisit, next)
			}
		}
	}
	return ret
}

type pushBFSNode struct {
	boxPos, playerPos sokoban.Pos
	dist              uint16
}

// computePushDists computes, for every (box start position, initial push
// direction) pair, the minimum number of pushes needed to reach every other
// cell on the empty board. Grounded on
// original_source/src/solver/preprocessing.rs::push_dists.
func computePushDists(m level.Map) sokoban.Grid[[4]sokoban.Grid[sokoban.OptionalU16]] {
	var empty [4]sokoban.Grid[sokoban.OptionalU16]
	pushDists := m.Grid.ScratchpadWithDefault(empty)

	pushDirCache := make(map[sokoban.Pos][4][]sokoban.Dir)
	pushDirsFor := func(boxPos, playerPos sokoban.Pos) []sokoban.Dir {
		playerToBox, ok := playerPos.DirTo(boxPos)
		if !ok {
			return nil
		}
		idx := sokoban.DirIndex(playerToBox)
		cached, ok := pushDirCache[boxPos]
		if !ok {
			var zero [4][]sokoban.Dir
			cached = zero
		}
		if cached[idx] == nil {
			cached[idx] = oneBoxPushDirs(m, boxPos, playerPos)
			if cached[idx] == nil {
				cached[idx] = []sokoban.Dir{}
			}
			pushDirCache[boxPos] = cached
		}
		return cached[idx]
	}

	for _, boxStartPos := range m.Grid.Positions() {
		if m.Grid.At(boxStartPos) == sokoban.CellWall {
			continue
		}

		var dists [4]sokoban.Grid[sokoban.OptionalU16]
		for i := range dists {
			dists[i] = m.Grid.Scratchpad()
		}

		for _, initialDir := range sokoban.Directions {
			playerStartPos := boxStartPos.Add(initialDir.Inverse())
			if !m.Grid.InBounds(playerStartPos) || m.Grid.At(playerStartPos) == sokoban.CellWall {
				continue
			}

			visited := m.Grid.ScratchpadWithDefault([4]bool{})
			toVisit := []pushBFSNode{{boxPos: boxStartPos, playerPos: playerStartPos, dist: 0}}

			dirIdx := sokoban.DirIndex(initialDir)
			entry := dists

			for len(toVisit) > 0 {
				cur := toVisit[0]
				toVisit = toVisit[1:]

				playerToBox, ok := cur.playerPos.DirTo(cur.boxPos)
				if !ok {
					continue
				}
				pToBoxIdx := sokoban.DirIndex(playerToBox)

				vis := visited.At(cur.boxPos)
				if vis[pToBoxIdx] {
					continue
				}

				dest := entry[dirIdx]
				old := dest.At(cur.boxPos)
				if !old.Valid {
					dest.Set(cur.boxPos, sokoban.Some(cur.dist))
				}

				for _, pushDir := range pushDirsFor(cur.boxPos, cur.playerPos) {
					vis[pToBoxIdx] = true
					visited.Set(cur.boxPos, vis)
					toVisit = append(toVisit, pushBFSNode{
						boxPos:    cur.boxPos.Add(pushDir),
						playerPos: cur.boxPos,
						dist:      cur.dist + 1,
					})
				}
			}
		}

		pushDists.Set(boxStartPos, dists)
	}

	return pushDists
}

// computeClosestPushDists collapses the per-direction push-distance table
// into, for each source cell, the minimum pushes needed to reach any
// goal/remover over all initial directions. Grounded on
// original_source/src/solver/preprocessing.rs::closest_push_dists.
func computeClosestPushDists(m level.Map, pushDists sokoban.Grid[[4]sokoban.Grid[sokoban.OptionalU16]]) sokoban.Grid[sokoban.OptionalU16] {
	closest := m.Grid.Scratchpad()

	for _, srcPos := range m.Grid.Positions() {
		var best sokoban.OptionalU16
		for _, dests := range pushDists.At(srcPos) {
			for _, destPos := range m.Grid.Positions() {
				cell := m.Grid.At(destPos)
				if cell != sokoban.CellGoal && cell != sokoban.CellRemover {
					continue
				}
				cur := dests.At(destPos)
				if cur.Valid && (!best.Valid || cur.Value < best.Value) {
					best = cur
				}
			}
		}
		closest.Set(srcPos, best)
	}
	return closest
}
