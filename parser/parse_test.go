package parser

import (
	"fmt"
	"testing"

	"github.com/bertbaron/sokoban-solver"
)

func TestParseXsbSimplest(t *testing.T) {
	m, s, err := ParseFormat("#####\n#@$.#\n#####", Xsb)
	if err != nil {
		t.Fatalf("ParseFormat: %v", err)
	}
	if s.PlayerPos != sokoban.NewPos(1, 1) {
		t.Errorf("player at %v, want (1,1)", s.PlayerPos)
	}
	if len(s.Boxes) != 1 || s.Boxes[0] != sokoban.NewPos(1, 2) {
		t.Errorf("boxes = %v, want [(1,2)]", s.Boxes)
	}
	if len(m.Goals) != 1 || m.Goals[0] != sokoban.NewPos(1, 3) {
		t.Errorf("goals = %v, want [(1,3)]", m.Goals)
	}
}

func TestParseXsbRoundTrip(t *testing.T) {
	input := "#####\n#@$.#\n#####\n"
	m, s, err := ParseFormat(input, Xsb)
	if err != nil {
		t.Fatalf("ParseFormat: %v", err)
	}
	got := FormatLevel(m, &s, Xsb)
	want := "#####\n#@$.#\n#####\n"
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestParseCustomRoundTrip(t *testing.T) {
	input := "<><><><><>\n<> _B_<><>\n<>B B <><>\n<>  P_<><>\n<><><><><>\n"
	m, s, err := ParseFormat(input, Custom)
	if err != nil {
		t.Fatalf("ParseFormat: %v", err)
	}
	got := FormatLevel(m, &s, Custom)
	if got != input {
		t.Errorf("round trip = %q, want %q", got, input)
	}
}

func TestParseNoPlayer(t *testing.T) {
	_, _, err := ParseFormat("", Xsb)
	if err != ErrNoPlayer {
		t.Errorf("err = %v, want ErrNoPlayer", err)
	}
}

func TestParseCustomBoxOnRemover(t *testing.T) {
	_, _, err := ParseFormat("<><><><>\n<>P BR<>\n<><><><>\n", Custom)
	if err != ErrBoxOnRemover {
		t.Errorf("err = %v, want ErrBoxOnRemover", err)
	}
}

func TestParseCustomRemoverAndGoals(t *testing.T) {
	_, _, err := ParseFormat("<><><><>\n<>P  R<>\n<> _  <>\n<><><><>\n", Custom)
	if err != ErrRemoverAndGoals {
		t.Errorf("err = %v, want ErrRemoverAndGoals", err)
	}
}

func TestParseXsbInvalidChar(t *testing.T) {
	_, _, err := ParseFormat("#####\n#@X.#\n#####", Xsb)
	posErr, ok := err.(*PosError)
	if !ok {
		t.Fatalf("err = %v (%T), want *PosError", err, err)
	}
	if posErr.Row != 1 || posErr.Col != 2 {
		t.Errorf("PosError at (%d,%d), want (1,2)", posErr.Row, posErr.Col)
	}
}

func TestParseLevelAutoDetectsCustom(t *testing.T) {
	input := "<><><>\n<>P <>\n<><><>\n"
	_, _, err := ParseLevel(input)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
}

func TestParseLevelAutoDetectsXsb(t *testing.T) {
	input := "#####\n#@$.#\n#####"
	_, _, err := ParseLevel(input)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
}

func ExampleParseFormat() {
	m, s, err := ParseFormat("#####\n#@$.#\n#####", Xsb)
	if err != nil {
		panic(err)
	}
	fmt.Print(FormatLevel(m, &s, Xsb))
	// Output:
	// #####
	// #@$.#
	// #####
}
