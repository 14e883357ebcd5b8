package sokoban

import "testing"

func TestPosAdd(t *testing.T) {
	p := NewPos(3, 4)
	if got := p.Add(Up); got != (Pos{R: 2, C: 4}) {
		t.Errorf("Add(Up) = %v, want (2,4)", got)
	}
	if got := p.Add(Right); got != (Pos{R: 3, C: 5}) {
		t.Errorf("Add(Right) = %v, want (3,5)", got)
	}
}

func TestPosDist(t *testing.T) {
	a := NewPos(0, 0)
	b := NewPos(3, 4)
	if d := a.Dist(b); d != 7 {
		t.Errorf("Dist = %d, want 7", d)
	}
}

func TestPosDirTo(t *testing.T) {
	a := NewPos(5, 5)
	b := NewPos(5, 6)
	dir, ok := a.DirTo(b)
	if !ok || dir != Right {
		t.Errorf("DirTo = (%v, %v), want (Right, true)", dir, ok)
	}

	c := NewPos(7, 7)
	if _, ok := a.DirTo(c); ok {
		t.Errorf("DirTo(%v, %v) should not resolve to a single direction", a, c)
	}
}

func TestNewPosPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range position")
		}
	}()
	NewPos(-1, 0)
}
