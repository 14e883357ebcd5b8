package stateindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bertbaron/sokoban-solver"
	"github.com/bertbaron/sokoban-solver/level"
)

func TestInternReturnsSameHandleForEqualStates(t *testing.T) {
	idx := New()
	a := level.NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(1, 1), sokoban.NewPos(2, 2)})
	b := level.NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(2, 2), sokoban.NewPos(1, 1)})

	h1, created1 := idx.Intern(a)
	require.True(t, created1)

	h2, created2 := idx.Intern(b)
	require.False(t, created2, "an equal state (box order notwithstanding) must not be re-created")
	require.Equal(t, h1, h2)
}

func TestInternDistinguishesDifferentStates(t *testing.T) {
	idx := New()
	a := level.NewState(sokoban.NewPos(0, 0), []sokoban.Pos{sokoban.NewPos(1, 1)})
	b := level.NewState(sokoban.NewPos(0, 1), []sokoban.Pos{sokoban.NewPos(1, 1)})

	h1, _ := idx.Intern(a)
	h2, _ := idx.Intern(b)
	require.NotEqual(t, h1, h2)
}

func TestLookupRoundTrips(t *testing.T) {
	idx := New()
	s := level.NewState(sokoban.NewPos(3, 4), []sokoban.Pos{sokoban.NewPos(5, 5)})
	h, _ := idx.Intern(s)

	got := idx.Lookup(h)
	require.Equal(t, s.PlayerPos, got.PlayerPos)
	require.Equal(t, s.Boxes, got.Boxes)
}

func TestInternManyStatesStayDistinct(t *testing.T) {
	idx := New()
	seen := map[Handle]bool{}
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			s := level.NewState(sokoban.NewPos(r, c), nil)
			h, created := idx.Intern(s)
			require.True(t, created)
			require.False(t, seen[h], "handle %v reused across distinct states", h)
			seen[h] = true
		}
	}
	require.Len(t, seen, 100)
}
