package level

import (
	"testing"

	"github.com/bertbaron/sokoban-solver"
)

func TestNewStateSortsBoxes(t *testing.T) {
	s := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{
		sokoban.NewPos(2, 1),
		sokoban.NewPos(1, 3),
		sokoban.NewPos(1, 1),
	})
	want := []sokoban.Pos{sokoban.NewPos(1, 1), sokoban.NewPos(1, 3), sokoban.NewPos(2, 1)}
	for i, p := range want {
		if s.Boxes[i] != p {
			t.Errorf("Boxes[%d] = %v, want %v", i, s.Boxes[i], p)
		}
	}
}

func TestStateKeyStableUnderBoxOrder(t *testing.T) {
	a := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(1, 1), sokoban.NewPos(2, 2)})
	b := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(2, 2), sokoban.NewPos(1, 1)})
	if string(a.Key()) != string(b.Key()) {
		t.Error("Key() must not depend on the order boxes were supplied in")
	}
}

func TestStateKeyDiffersOnPlayerPos(t *testing.T) {
	a := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(1, 1)})
	b := NewState(sokoban.NewPos(0, 1), []sokoban.Pos{sokoban.NewPos(1, 1)})
	if string(a.Key()) == string(b.Key()) {
		t.Error("Key() must depend on player position")
	}
}

func TestWithPushMovesPlayerToOldBoxCell(t *testing.T) {
	s := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(0, 1)})
	next := s.WithPush(sokoban.NewPos(0, 1), sokoban.NewPos(0, 2))
	if next.PlayerPos != sokoban.NewPos(0, 1) {
		t.Errorf("player should end up at the vacated box cell, got %v", next.PlayerPos)
	}
	if !next.HasBox(sokoban.NewPos(0, 2)) {
		t.Error("box should have moved to (0,2)")
	}
	if next.HasBox(sokoban.NewPos(0, 1)) {
		t.Error("box should no longer be at (0,1)")
	}
}

func TestWithPushPanicsWithoutBox(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when pushing from a cell with no box")
		}
	}()
	s := NewState(sokoban.NewPos(0, 0), nil)
	s.WithPush(sokoban.NewPos(0, 1), sokoban.NewPos(0, 2))
}

func TestWithoutBoxRemovesAndMovesPlayer(t *testing.T) {
	s := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(0, 1), sokoban.NewPos(3, 3)})
	next := s.WithoutBox(sokoban.NewPos(0, 1))
	if len(next.Boxes) != 1 || next.Boxes[0] != sokoban.NewPos(3, 3) {
		t.Errorf("Boxes = %v, want only (3,3) remaining", next.Boxes)
	}
	if next.PlayerPos != sokoban.NewPos(0, 1) {
		t.Errorf("player should move to the removed box's cell, got %v", next.PlayerPos)
	}
}

func TestSolved(t *testing.T) {
	grid := sokoban.NewGrid(1, 3, sokoban.CellEmpty)
	grid.Set(sokoban.NewPos(0, 2), sokoban.CellGoal)
	m := Map{Grid: grid, Goals: []sokoban.Pos{sokoban.NewPos(0, 2)}}

	unsolved := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(0, 1)})
	if Solved(m, unsolved) {
		t.Error("state with a box off its goal should not be solved")
	}

	solved := NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(0, 2)})
	if !Solved(m, solved) {
		t.Error("state with every box on a goal should be solved")
	}
}

func TestMapRemover(t *testing.T) {
	grid := sokoban.NewGrid(1, 2, sokoban.CellEmpty)
	grid.Set(sokoban.NewPos(0, 1), sokoban.CellRemover)
	m := Map{Grid: grid}

	pos, ok := m.Remover()
	if !ok || pos != sokoban.NewPos(0, 1) {
		t.Errorf("Remover() = (%v, %v), want ((0,1), true)", pos, ok)
	}
}
