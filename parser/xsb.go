package parser

import (
	"github.com/bertbaron/sokoban-solver"
)

// parseXsb recognizes the XSB character set. Grounded on
// original_source/src/parser.rs::parse_xsb.
func parseXsb(lines []string) (rawLevel, error) {
	var raw rawLevel

	for r, line := range lines {
		var row []sokoban.MapCell
		for c, ch := range line {
			var cell sokoban.MapCell
			switch ch {
			case '#':
				cell = sokoban.CellWall
			case 'p', '@':
				if err := raw.setPlayer(r, c); err != nil {
					return rawLevel{}, err
				}
				cell = sokoban.CellEmpty
			case 'P', '+':
				if err := raw.setPlayer(r, c); err != nil {
					return rawLevel{}, err
				}
				raw.goals = append(raw.goals, sokoban.NewPos(r, c))
				cell = sokoban.CellGoal
			case 'b', '$':
				raw.boxes = append(raw.boxes, sokoban.NewPos(r, c))
				cell = sokoban.CellEmpty
			case 'B', '*':
				raw.boxes = append(raw.boxes, sokoban.NewPos(r, c))
				raw.goals = append(raw.goals, sokoban.NewPos(r, c))
				cell = sokoban.CellGoal
			case 'r':
				if err := raw.setRemover(r, c); err != nil {
					return rawLevel{}, err
				}
				cell = sokoban.CellRemover
			case 'R':
				if err := raw.setPlayer(r, c); err != nil {
					return rawLevel{}, err
				}
				if err := raw.setRemover(r, c); err != nil {
					return rawLevel{}, err
				}
				cell = sokoban.CellRemover
			case '.':
				raw.goals = append(raw.goals, sokoban.NewPos(r, c))
				cell = sokoban.CellGoal
			case ' ', '-', '_':
				cell = sokoban.CellEmpty
			default:
				return rawLevel{}, &PosError{Row: r, Col: c, Char: ch}
			}
			row = append(row, cell)
		}
		raw.rows = append(raw.rows, row)
	}
	return raw, nil
}

// formatXsb renders grid/state using the XSB character set, grounded on
// original_source/src/map_formatter.rs::write_cell_xsb.
func formatXsb(grid sokoban.Grid[sokoban.MapCell], contents sokoban.Grid[sokoban.Contents]) string {
	return renderGrid(grid, contents, func(cell sokoban.MapCell, content sokoban.Contents) byte {
		switch {
		case cell == sokoban.CellWall:
			return '#'
		case cell == sokoban.CellEmpty && content == sokoban.ContentsEmpty:
			return ' '
		case cell == sokoban.CellEmpty && content == sokoban.ContentsBox:
			return '$'
		case cell == sokoban.CellEmpty && content == sokoban.ContentsPlayer:
			return '@'
		case cell == sokoban.CellGoal && content == sokoban.ContentsEmpty:
			return '.'
		case cell == sokoban.CellGoal && content == sokoban.ContentsBox:
			return '*'
		case cell == sokoban.CellGoal && content == sokoban.ContentsPlayer:
			return '+'
		case cell == sokoban.CellRemover && content == sokoban.ContentsEmpty:
			return 'r'
		case cell == sokoban.CellRemover && content == sokoban.ContentsPlayer:
			return 'R'
		default:
			panic("parser: impossible cell/contents combination")
		}
	})
}
