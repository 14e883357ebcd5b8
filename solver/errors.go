package solver

import "errors"

// Sentinel errors returned by Preprocess, plus ErrNoSolution, which Solve
// returns when the search finds no solution. Each is fatal to the solve; the
// caller surfaces it verbatim, no partial recovery is attempted.
var (
	// ErrTooLarge indicates the map has more than 255 rows or columns.
	ErrTooLarge = errors.New("solver: map too large (max 255x255)")

	// ErrIncompleteBorder indicates the player can step out of bounds
	// without hitting a wall first.
	ErrIncompleteBorder = errors.New("solver: player can exit the level because of a missing border")

	// ErrUnreachableBoxes indicates a box is neither reachable from the
	// player nor already on a goal.
	ErrUnreachableBoxes = errors.New("solver: boxes that are not on a goal but can't be reached")

	// ErrUnreachableGoals indicates a goal is neither reachable from the
	// player nor already holding a box.
	ErrUnreachableGoals = errors.New("solver: goals that don't have a box but can't be reached")

	// ErrTooMany indicates more than 255 reachable boxes or goals.
	ErrTooMany = errors.New("solver: more than 255 reachable boxes or goals")

	// ErrBoxesGoals indicates the reachable box count and reachable goal
	// count differ.
	ErrBoxesGoals = errors.New("solver: different number of reachable boxes and goals")

	// ErrNoSolution indicates the search exhausted its state space without
	// reaching a solved state.
	ErrNoSolution = errors.New("solver: no solution exists for this level")
)
