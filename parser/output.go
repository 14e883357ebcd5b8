package parser

import (
	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

// renderGrid walks grid row by row, trimming each row's trailing empty
// (terrain-empty, contents-empty) cells to match the source text, and
// writes each remaining cell via cellFn. Grounded on
// original_source/src/map_formatter.rs::write_to_formatter, whose
// last-non-empty-column trim is shared between both formats there too.
func renderGrid(grid sokoban.Grid[sokoban.MapCell], contents sokoban.Grid[sokoban.Contents], cellFn func(sokoban.MapCell, sokoban.Contents) byte) string {
	var b []byte
	for r := uint8(0); r < grid.Rows(); r++ {
		lastNonEmpty := -1
		for c := uint8(0); c < grid.Cols(); c++ {
			p := sokoban.Pos{R: r, C: c}
			if grid.At(p) != sokoban.CellEmpty || contents.At(p) != sokoban.ContentsEmpty {
				lastNonEmpty = int(c)
			}
		}
		for c := 0; c <= lastNonEmpty; c++ {
			p := sokoban.Pos{R: r, C: uint8(c)}
			b = append(b, cellFn(grid.At(p), contents.At(p)))
		}
		b = append(b, '\n')
	}
	return string(b)
}

// contentsGrid overlays a State's boxes and player onto a same-shape grid of
// Contents, the input renderGrid/formatCustom need.
func contentsGrid(grid sokoban.Grid[sokoban.MapCell], s *level.State) sokoban.Grid[sokoban.Contents] {
	overlay := sokoban.NewGrid(grid.Rows(), grid.Cols(), sokoban.ContentsEmpty)
	if s == nil {
		return overlay
	}
	for _, b := range s.Boxes {
		overlay.Set(b, sokoban.ContentsBox)
	}
	overlay.Set(s.PlayerPos, sokoban.ContentsPlayer)
	return overlay
}

// FormatMap renders m alone (no player/boxes overlay) in the given Format.
func FormatMap(m level.Map, format Format) string {
	return FormatLevel(m, nil, format)
}

// FormatLevel renders m with s overlaid in the given Format. s may be nil to
// render the bare map.
func FormatLevel(m level.Map, s *level.State, format Format) string {
	contents := contentsGrid(m.Grid, s)
	switch format {
	case Custom:
		return formatCustom(m.Grid, contents)
	default:
		return formatXsb(m.Grid, contents)
	}
}
