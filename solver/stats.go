package solver

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// DepthStats counts the nodes the search touched at one particular search
// depth (Cost.Depth()): how many expansions were created, how many turned
// out to be states visited for the first time, and how many were already
// known (duplicates, pruned without further work). Grounded on
// original_source/src/solver/a_star.rs's per-depth counters and
// original_source/src/solver/mod.rs's Stats::print, with go-humanize's
// Comma replacing the Rust `separator` crate for thousands grouping.
type DepthStats struct {
	Created       uint64
	UniqueVisited uint64
	DuplicateHits uint64
}

// Stats accumulates DepthStats across the whole search, indexed by depth.
type Stats struct {
	ByDepth []DepthStats
}

func newStats() Stats {
	return Stats{}
}

func (s *Stats) ensureDepth(depth int) {
	for len(s.ByDepth) <= depth {
		s.ByDepth = append(s.ByDepth, DepthStats{})
	}
}

func (s *Stats) recordCreated(depth int, n int) {
	s.ensureDepth(depth)
	s.ByDepth[depth].Created += uint64(n)
}

func (s *Stats) recordUnique(depth int) {
	s.ensureDepth(depth)
	s.ByDepth[depth].UniqueVisited++
}

func (s *Stats) recordDuplicate(depth int) {
	s.ensureDepth(depth)
	s.ByDepth[depth].DuplicateHits++
}

// TotalCreated sums Created over every depth.
func (s Stats) TotalCreated() uint64 {
	var t uint64
	for _, d := range s.ByDepth {
		t += d.Created
	}
	return t
}

// TotalUnique sums UniqueVisited over every depth.
func (s Stats) TotalUnique() uint64 {
	var t uint64
	for _, d := range s.ByDepth {
		t += d.UniqueVisited
	}
	return t
}

// TotalDuplicates sums DuplicateHits over every depth.
func (s Stats) TotalDuplicates() uint64 {
	var t uint64
	for _, d := range s.ByDepth {
		t += d.DuplicateHits
	}
	return t
}

// String renders a fixed-width, byte-for-byte stable report: one row per
// depth followed by a totals row, columns aligned on humanize.Comma output.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6s %14s %14s %14s\n", "depth", "created", "unique", "duplicate")
	for depth, d := range s.ByDepth {
		fmt.Fprintf(&b, "%6d %14s %14s %14s\n",
			depth, humanize.Comma(int64(d.Created)), humanize.Comma(int64(d.UniqueVisited)), humanize.Comma(int64(d.DuplicateHits)))
	}
	fmt.Fprintf(&b, "%6s %14s %14s %14s\n", "total",
		humanize.Comma(int64(s.TotalCreated())), humanize.Comma(int64(s.TotalUnique())), humanize.Comma(int64(s.TotalDuplicates())))
	return b.String()
}
