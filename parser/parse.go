package parser

import (
	"strings"

	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

// rawLevel is the intermediate representation both format parsers build:
// a (possibly ragged) grid of cells plus the entities found while scanning
// it. Grounded on original_source/src/parser.rs's parse_custom/parse_xsb
// tuple return.
type rawLevel struct {
	rows       [][]sokoban.MapCell
	goals      []sokoban.Pos
	boxes      []sokoban.Pos
	hasPlayer  bool
	playerPos  sokoban.Pos
	hasRemover bool
	removerPos sokoban.Pos
}

func (r *rawLevel) setPlayer(row, col int) error {
	if r.hasPlayer {
		return ErrMultiplePlayers
	}
	r.hasPlayer = true
	r.playerPos = sokoban.NewPos(row, col)
	return nil
}

func (r *rawLevel) setRemover(row, col int) error {
	if r.hasRemover {
		return ErrMultipleRemovers
	}
	r.hasRemover = true
	r.removerPos = sokoban.NewPos(row, col)
	return nil
}

// toLevel pads ragged rows to a rectangular grid (padding with CellWall)
// and assembles the
// level.Map/level.State pair, validating the remover/goal and
// player-presence invariants.
func (r rawLevel) toLevel() (level.Map, level.State, error) {
	if !r.hasPlayer {
		return level.Map{}, level.State{}, ErrNoPlayer
	}
	if r.hasRemover && len(r.goals) > 0 {
		return level.Map{}, level.State{}, ErrRemoverAndGoals
	}

	maxCols := 0
	for _, row := range r.rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	grid := sokoban.NewGrid(uint8(len(r.rows)), uint8(maxCols), sokoban.CellWall)
	for ri, row := range r.rows {
		for ci, cell := range row {
			grid.Set(sokoban.Pos{R: uint8(ri), C: uint8(ci)}, cell)
		}
	}

	m := level.Map{Grid: grid, Goals: r.goals}
	s := level.NewState(r.playerPos, r.boxes)
	return m, s, nil
}

// ParseLevel auto-detects the format: a level whose first non-whitespace
// character is '<' is parsed as Custom, everything else as Xsb. Grounded on
// original_source/src/parser.rs::parse.
func ParseLevel(text string) (level.Map, level.State, error) {
	trimmed := strings.TrimLeft(text, "\n\r\t ")
	format := Xsb
	if strings.HasPrefix(trimmed, "<") {
		format = Custom
	}
	return ParseFormat(text, format)
}

// ParseFormat parses text in the given Format. Grounded on
// original_source/src/parser.rs::parse_format.
func ParseFormat(text string, format Format) (level.Map, level.State, error) {
	text = strings.Trim(text, "\n")
	text = strings.TrimRight(text, " \t\r")
	lines := strings.Split(text, "\n")

	var raw rawLevel
	var err error
	switch format {
	case Custom:
		raw, err = parseCustom(lines)
	default:
		raw, err = parseXsb(lines)
	}
	if err != nil {
		return level.Map{}, level.State{}, err
	}
	return raw.toLevel()
}
