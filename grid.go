package sokoban

// Grid is a dense R×C array of T indexed by Pos. Both dimensions are capped
// at 255 by the Pos representation itself. Cells are stored row-major in a
// single slice, following the teacher's preference for one flat backing
// array over a slice-of-slices (cheaper to allocate, cheaper to scratch).
type Grid[T any] struct {
	data       []T
	rows, cols uint8
}

// NewGrid builds an R x C grid filled with the given default value.
func NewGrid[T any](rows, cols uint8, def T) Grid[T] {
	data := make([]T, int(rows)*int(cols))
	for i := range data {
		data[i] = def
	}
	return Grid[T]{data: data, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (g Grid[T]) Rows() uint8 { return g.rows }

// Cols returns the number of columns.
func (g Grid[T]) Cols() uint8 { return g.cols }

func (g Grid[T]) index(p Pos) int {
	return int(p.R)*int(g.cols) + int(p.C)
}

// At returns the value stored at p.
func (g Grid[T]) At(p Pos) T {
	return g.data[g.index(p)]
}

// Set stores v at p.
func (g Grid[T]) Set(p Pos, v T) {
	g.data[g.index(p)] = v
}

// InBounds reports whether p is a valid coordinate for this grid.
func (g Grid[T]) InBounds(p Pos) bool {
	return int(p.R) < int(g.rows) && int(p.C) < int(g.cols)
}

// Scratchpad returns a same-shape grid filled with T's zero value, the Go
// equivalent of the teacher's/original's create_scratch(pad) helpers.
func (g Grid[T]) Scratchpad() Grid[T] {
	var zero T
	return g.ScratchpadWithDefault(zero)
}

// ScratchpadWithDefault returns a same-shape grid filled with def.
func (g Grid[T]) ScratchpadWithDefault(def T) Grid[T] {
	return NewGrid[T](g.rows, g.cols, def)
}

// Clone returns an independent copy of g.
func (g Grid[T]) Clone() Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return Grid[T]{data: data, rows: g.rows, cols: g.cols}
}

// Positions returns every coordinate in the grid in row-major order. Callers
// that only need to iterate (not collect) should prefer Each to avoid the
// allocation.
func (g Grid[T]) Positions() []Pos {
	positions := make([]Pos, 0, len(g.data))
	g.Each(func(p Pos) {
		positions = append(positions, p)
	})
	return positions
}

// Each calls fn once per coordinate in row-major order.
func (g Grid[T]) Each(fn func(Pos)) {
	for r := 0; r < int(g.rows); r++ {
		for c := 0; c < int(g.cols); c++ {
			fn(Pos{R: uint8(r), C: uint8(c)})
		}
	}
}
