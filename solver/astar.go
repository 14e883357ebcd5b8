package solver

import (
	"container/heap"

	"github.com/bertbaron/sokoban-solver/level"
	"github.com/bertbaron/sokoban-solver/stateindex"
)

// Result is the outcome of a single Search call. Solved is false if the
// priority queue ran dry before reaching a solved state. Index and Parents
// together let backtrack.go walk from Final back to the initial state.
type Result struct {
	Solved  bool
	Final   stateindex.Handle
	Cost    Cost
	Index   *stateindex.Index
	Parents map[stateindex.Handle]Edge
	Stats   Stats
}

// Edge records how a state was first reached during search: the handle it
// came from and the Successor (cost and, for move-expansion, the concrete
// Move) describing the step.
type Edge struct {
	From stateindex.Handle
	Succ Successor
}

type pqItem struct {
	handle stateindex.Handle
	g      Cost
	f      Cost
	index  int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f.Equal(pq[j].f) {
		return pq[j].g.Less(pq[i].g)
	}
	return pq[i].f.Less(pq[j].f)
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// Search runs A* over lvl's state graph using expand to generate successors
// and heuristic to guide the search, with zero/one determining whether the
// search optimizes a SimpleCost or a ComplexCost. Grounded on
// original_source/src/solver/a_star.rs's main loop, generalized from Rust's
// monomorphized Cost type parameter to a Go interface plus runtime type
// switches in expand.go/heuristic.go.
func Search(lvl SolverLevel, expand Expand, heuristic Heuristic, zero, one Cost, trackStats bool) Result {
	idx := stateindex.New()
	startHandle, _ := idx.Intern(lvl.InitialState)

	best := map[stateindex.Handle]Cost{startHandle: zero}
	parents := map[stateindex.Handle]Edge{}
	closed := map[stateindex.Handle]bool{}
	stats := newStats()

	pq := &priorityQueue{}
	heap.Init(pq)
	startH := heuristic(lvl, lvl.InitialState, zero)
	heap.Push(pq, &pqItem{handle: startHandle, g: zero, f: zero.Add(startH)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		handle := item.handle
		if closed[handle] {
			continue
		}
		state := idx.Lookup(handle)

		if level.Solved(lvl.Map, state) {
			return Result{
				Solved:  true,
				Final:   handle,
				Cost:    item.g,
				Index:   idx,
				Parents: parents,
				Stats:   stats,
			}
		}
		closed[handle] = true

		successors := expand(lvl, state, one)
		if trackStats {
			stats.recordCreated(int(item.g.Depth()), len(successors))
		}
		for _, succ := range successors {
			childHandle, isNew := idx.Intern(succ.State)
			if closed[childHandle] {
				if trackStats {
					stats.recordDuplicate(int(item.g.Depth()))
				}
				continue
			}
			g := item.g.Add(succ.Cost)
			if prev, ok := best[childHandle]; ok && !g.Less(prev) {
				if trackStats {
					stats.recordDuplicate(int(item.g.Depth()))
				}
				continue
			}
			best[childHandle] = g
			parents[childHandle] = Edge{From: handle, Succ: succ}
			if trackStats && isNew {
				stats.recordUnique(int(item.g.Depth()))
			}
			h := heuristic(lvl, succ.State, zero)
			heap.Push(pq, &pqItem{handle: childHandle, g: g, f: g.Add(h)})
		}
	}

	return Result{Solved: false, Index: idx, Parents: parents, Stats: stats}
}
