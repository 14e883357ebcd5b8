package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors a caller can match with errors.Is. PosError additionally
// carries the offending row/column and is never compared by value.
var (
	// ErrMultiplePlayers indicates more than one player cell was found.
	ErrMultiplePlayers = errors.New("parser: multiple player cells")

	// ErrMultipleRemovers indicates more than one remover cell was found.
	ErrMultipleRemovers = errors.New("parser: multiple remover cells")

	// ErrBoxOnRemover indicates a box was placed directly on a remover
	// cell, which the custom format has no way to express meaningfully.
	ErrBoxOnRemover = errors.New("parser: box on remover cell")

	// ErrNoPlayer indicates the level has no player cell at all.
	ErrNoPlayer = errors.New("parser: no player cell")

	// ErrRemoverAndGoals indicates a level mixes a remover with goal
	// cells, which this solver does not support.
	ErrRemoverAndGoals = errors.New("parser: level has both a remover and goal cells")
)

// PosError reports an unrecognized character at a specific row/column.
type PosError struct {
	Row, Col int
	Char     rune
}

func (e *PosError) Error() string {
	return fmt.Sprintf("parser: invalid cell %q at row %d, col %d", e.Char, e.Row, e.Col)
}
