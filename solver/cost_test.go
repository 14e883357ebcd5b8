package solver

import "testing"

func TestSimpleCostOrdering(t *testing.T) {
	a, b := SimpleCost(3), SimpleCost(5)
	if !a.Less(b) {
		t.Error("3 should be less than 5")
	}
	if b.Less(a) {
		t.Error("5 should not be less than 3")
	}
	if !a.Equal(SimpleCost(3)) {
		t.Error("3 should equal 3")
	}
}

func TestSimpleCostArithmetic(t *testing.T) {
	sum := SimpleOne().Add(SimpleCost(4))
	if !sum.Equal(SimpleCost(5)) {
		t.Errorf("1 + 4 = %v, want 5", sum)
	}
	diff := SimpleCost(5).Sub(SimpleOne())
	if !diff.Equal(SimpleCost(4)) {
		t.Errorf("5 - 1 = %v, want 4", diff)
	}
}

func TestComplexCostLexicographicOrdering(t *testing.T) {
	cheaper := ComplexCost{Primary: 2, Secondary: 9}
	pricier := ComplexCost{Primary: 3, Secondary: 0}
	if !cheaper.Less(pricier) {
		t.Error("lower primary should sort first regardless of secondary")
	}

	a := ComplexCost{Primary: 2, Secondary: 1}
	b := ComplexCost{Primary: 2, Secondary: 2}
	if !a.Less(b) {
		t.Error("equal primary should fall back to secondary")
	}
}

func TestComplexCostAdd(t *testing.T) {
	sum := ComplexOne().Add(ComplexPush())
	want := ComplexCost{Primary: 1, Secondary: 1}
	if !sum.Equal(want) {
		t.Errorf("ComplexOne + ComplexPush = %v, want %v", sum, want)
	}
}

func TestCostDepth(t *testing.T) {
	if SimpleCost(7).Depth() != 7 {
		t.Error("SimpleCost.Depth should equal its raw value")
	}
	c := ComplexCost{Primary: 7, Secondary: 99}
	if c.Depth() != 7 {
		t.Error("ComplexCost.Depth should project the primary component")
	}
}
