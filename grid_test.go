package sokoban

import "testing"

func TestGridSetAt(t *testing.T) {
	g := NewGrid[int](3, 4, 0)
	g.Set(Pos{R: 1, C: 2}, 7)
	if got := g.At(Pos{R: 1, C: 2}); got != 7 {
		t.Errorf("At = %d, want 7", got)
	}
	if got := g.At(Pos{R: 0, C: 0}); got != 0 {
		t.Errorf("At(0,0) = %d, want 0 (untouched default)", got)
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid[bool](2, 2, false)
	if !g.InBounds(Pos{R: 1, C: 1}) {
		t.Error("(1,1) should be in bounds for a 2x2 grid")
	}
	if g.InBounds(Pos{R: 2, C: 0}) {
		t.Error("(2,0) should be out of bounds for a 2x2 grid")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid[int](2, 2, 0)
	clone := g.Clone()
	clone.Set(Pos{R: 0, C: 0}, 9)
	if g.At(Pos{R: 0, C: 0}) != 0 {
		t.Error("mutating a clone must not affect the original")
	}
}

func TestGridScratchpadIsIndependent(t *testing.T) {
	g := NewGrid[int](2, 2, 5)
	scratch := g.Scratchpad()
	if got := scratch.At(Pos{R: 0, C: 0}); got != 0 {
		t.Errorf("Scratchpad() should be zero-valued, got %d", got)
	}
	scratch.Set(Pos{R: 0, C: 0}, 42)
	if g.At(Pos{R: 0, C: 0}) != 5 {
		t.Error("mutating a scratchpad must not affect the source grid")
	}
}

func TestGridEachVisitsRowMajor(t *testing.T) {
	g := NewGrid[int](2, 2, 0)
	var visited []Pos
	g.Each(func(p Pos) { visited = append(visited, p) })
	want := []Pos{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if len(visited) != len(want) {
		t.Fatalf("Each visited %d cells, want %d", len(visited), len(want))
	}
	for i, p := range want {
		if visited[i] != p {
			t.Errorf("visited[%d] = %v, want %v", i, visited[i], p)
		}
	}
}
