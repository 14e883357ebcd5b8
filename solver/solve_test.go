package solver_test

import (
	"errors"
	"testing"

	"github.com/bertbaron/sokoban-solver/parser"
	"github.com/bertbaron/sokoban-solver/solver"
)

func TestSolveSimplestPush(t *testing.T) {
	m, s, err := parser.ParseFormat(`
#####
#@$.#
#####
`, parser.Xsb)
	if err != nil {
		t.Fatalf("ParseFormat: %v", err)
	}

	solution, err := solver.Solve(m, s, solver.Pushes, false)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := solution.Moves.PushCount(); got != 1 {
		t.Errorf("PushCount = %d, want 1", got)
	}
}

func TestSolveMovesCountsWalkingSteps(t *testing.T) {
	m, s, err := parser.ParseFormat(`
#######
#@    #
#  $ .#
#######
`, parser.Xsb)
	if err != nil {
		t.Fatalf("ParseFormat: %v", err)
	}

	solution, err := solver.Solve(m, s, solver.Moves, false)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if solution.Moves.MoveCount() == 0 {
		t.Error("expected a non-empty move sequence")
	}
	if solution.Moves.PushCount() < 1 {
		t.Error("expected at least one push to deliver the box")
	}
}

func TestSolveNoSolutionReturnsErrNoSolution(t *testing.T) {
	m, s, err := parser.ParseFormat(`
#####
#@$##
#. ##
#####
`, parser.Xsb)
	if err != nil {
		t.Fatalf("ParseFormat: %v", err)
	}

	_, err = solver.Solve(m, s, solver.Pushes, false)
	if !errors.Is(err, solver.ErrNoSolution) {
		t.Error("expected a box boxed into a dead corner to be unsolvable")
	}
}

func TestMethodString(t *testing.T) {
	cases := map[solver.Method]string{
		solver.MovesPushes: "moves-pushes",
		solver.Moves:        "moves",
		solver.PushesMoves:  "pushes-moves",
		solver.Pushes:       "pushes",
		solver.Any:          "any",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", m, got, want)
		}
	}
}
