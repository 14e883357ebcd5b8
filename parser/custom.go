package parser

import (
	"fmt"

	"github.com/bertbaron/sokoban-solver"
)

// parseCustom recognizes the two-character-per-cell format: contents then
// terrain, with a wall written as the literal two characters "<>". Grounded
// on original_source/src/parser.rs::parse_custom.
func parseCustom(lines []string) (rawLevel, error) {
	var raw rawLevel

	for r, line := range lines {
		var row []sokoban.MapCell
		runes := []rune(line)
		c := 0
		for i := 0; i+1 < len(runes); i += 2 {
			c1, c2 := runes[i], runes[i+1]

			if c1 == '<' {
				if c2 != '>' {
					return rawLevel{}, &PosError{Row: r, Col: c, Char: c2}
				}
				row = append(row, sokoban.CellWall)
				c++
				continue
			}

			hasBox := false
			switch c1 {
			case ' ':
			case 'B':
				raw.boxes = append(raw.boxes, sokoban.NewPos(r, c))
				hasBox = true
			case 'P':
				if err := raw.setPlayer(r, c); err != nil {
					return rawLevel{}, err
				}
			default:
				return rawLevel{}, &PosError{Row: r, Col: c, Char: c1}
			}

			var cell sokoban.MapCell
			switch c2 {
			case ' ':
				cell = sokoban.CellEmpty
			case '_':
				raw.goals = append(raw.goals, sokoban.NewPos(r, c))
				cell = sokoban.CellGoal
			case 'R':
				if hasBox {
					return rawLevel{}, ErrBoxOnRemover
				}
				if err := raw.setRemover(r, c); err != nil {
					return rawLevel{}, err
				}
				cell = sokoban.CellRemover
			default:
				return rawLevel{}, &PosError{Row: r, Col: c, Char: c2}
			}
			row = append(row, cell)
			c++
		}
		raw.rows = append(raw.rows, row)
	}
	return raw, nil
}

// formatCustom renders grid/state using the custom format, grounded on
// original_source/src/map_formatter.rs::write_cell_custom.
func formatCustom(grid sokoban.Grid[sokoban.MapCell], contents sokoban.Grid[sokoban.Contents]) string {
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
			cell := grid.At(p)
			content := contents.At(p)
			if cell == sokoban.CellWall {
				b = append(b, '<', '>')
				continue
			}
			switch content {
			case sokoban.ContentsEmpty:
				b = append(b, ' ')
			case sokoban.ContentsBox:
				b = append(b, 'B')
			case sokoban.ContentsPlayer:
				b = append(b, 'P')
			}
			switch cell {
			case sokoban.CellEmpty:
				b = append(b, ' ')
			case sokoban.CellGoal:
				b = append(b, '_')
			case sokoban.CellRemover:
				b = append(b, 'R')
			default:
				panic(fmt.Sprintf("parser: unexpected cell %v in custom formatter", cell))
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
