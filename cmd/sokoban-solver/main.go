// Command sokoban-solver reads a Sokoban level from a file and prints a
// solution, grounded on the profiling/timing/CLI style of
// bertbaron-pathfinding's examples/sokoban/main.go.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
	"github.com/bertbaron/sokoban-solver/parser"
	"github.com/bertbaron/sokoban-solver/solver"
)

func main() {
	var (
		xsb       = flag.Bool("xsb", false, "force XSB format (default: auto-detect)")
		custom    = flag.Bool("custom", false, "force custom format (default: auto-detect)")
		method    = flag.String("method", "pushes", "optimization method: moves, pushes, moves-pushes, pushes-moves, any")
		moveOpt   = flag.Bool("move-optimal", false, "optimize moves (same as -method moves)")
		stats     = flag.Bool("stats", false, "print per-depth search statistics")
		profile   = flag.String("profile", "", "write a CPU profile to this path")
		outFormat = flag.String("out", "xsb", "format for the solved level printout: xsb or custom")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <level-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *xsb && *custom {
		log.Fatal("sokoban-solver: --xsb and --custom are mutually exclusive")
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatalf("sokoban-solver: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("sokoban-solver: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("sokoban-solver: %v", err)
	}

	m, s, err := parseInput(string(data), *xsb, *custom)
	if err != nil {
		log.Fatalf("sokoban-solver: %v", err)
	}

	meth, err := parseMethod(*method)
	if err != nil {
		log.Fatalf("sokoban-solver: %v", err)
	}
	if *moveOpt {
		meth = solver.Moves
	}

	outFmt := parser.Xsb
	if *outFormat == "custom" {
		outFmt = parser.Custom
	}

	start := time.Now()
	solution, err := solver.Solve(m, s, meth, *stats)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("sokoban-solver: %v", err)
	}

	fmt.Printf("solved in %.2fs: %d moves, %d pushes\n",
		elapsed.Seconds(), solution.Moves.MoveCount(), solution.Moves.PushCount())
	fmt.Println(solution.Moves.String())
	if *stats {
		fmt.Print(solution.Stats.String())
	}

	final, err := replay(m, s, solution.Moves)
	if err != nil {
		log.Fatalf("sokoban-solver: %v", err)
	}
	fmt.Print(parser.FormatLevel(m, &final, outFmt))
}

// replay applies moves to (m, s) one at a time to recover the solved state,
// so the CLI can print the level in its requested output format without
// the solver itself needing to retain every intermediate State.
func replay(m level.Map, s level.State, moves sokoban.Moves) (level.State, error) {
	for _, mv := range moves {
		target := s.PlayerPos.Add(mv.Dir)
		if !mv.IsPush {
			s = s.WithStep(target)
			continue
		}
		behind := target.Add(mv.Dir)
		if m.Grid.At(behind) == sokoban.CellRemover {
			s = s.WithoutBox(target)
			continue
		}
		s = s.WithPush(target, behind)
	}
	return s, nil
}

func parseInput(text string, xsb, custom bool) (level.Map, level.State, error) {
	switch {
	case xsb:
		return parser.ParseFormat(text, parser.Xsb)
	case custom:
		return parser.ParseFormat(text, parser.Custom)
	default:
		return parser.ParseLevel(text)
	}
}

func parseMethod(s string) (solver.Method, error) {
	switch s {
	case "moves":
		return solver.Moves, nil
	case "pushes":
		return solver.Pushes, nil
	case "moves-pushes":
		return solver.MovesPushes, nil
	case "pushes-moves":
		return solver.PushesMoves, nil
	case "any":
		return solver.Any, nil
	default:
		return 0, fmt.Errorf("sokoban-solver: unknown method %q", s)
	}
}
