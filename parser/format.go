// Package parser parses and formats Sokoban levels in the two text formats
// this solver understands: XSB (the de facto community standard) and a
// custom two-characters-per-cell format that separates terrain from
// contents explicitly. Grounded on original_source/src/parser.rs,
// original_source/src/map_formatter.rs and original_source/src/data.rs's
// `Format` enum.
package parser

// Format selects which textual notation ParseLevel/FormatLevel use.
type Format int

const (
	// Xsb is the format described at sokobano.de/wiki: '#' wall, '@'/'p'
	// player, '$'/'b' box, '.'/ goal, '*'/'B' box-on-goal, '+'/'P'
	// player-on-goal, 'r' remover, 'R' player-on-remover.
	Xsb Format = iota
	// Custom is a two-character-per-cell format: the first character is
	// contents (' ', 'B' box, 'P' player), the second is terrain (' '
	// empty, '_' goal, 'R' remover), and a wall cell is written "<>".
	Custom
)

func (f Format) String() string {
	switch f {
	case Xsb:
		return "xsb"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}
