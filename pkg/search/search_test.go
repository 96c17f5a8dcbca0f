package search_test

import (
	"testing"

	"github.com/halvard/boombots/pkg/board"
	"github.com/halvard/boombots/pkg/eval"
	"github.com/halvard/boombots/pkg/search"
	"github.com/stretchr/testify/assert"
)

// TestMoveLeavesBoardUnchanged checks that apply + recurse + undo leaves the board and
// hash identical to pre-call.
func TestMoveLeavesBoardUnchanged(t *testing.T) {
	bb := board.New()
	before := bb.Frames()
	beforeHash := bb.Hash
	beforeTurn := bb.Turn

	tt := search.NewTranspositionTable(16)
	search.Move(bb, tt, 2, eval.Loss, eval.Win)

	assert.Equal(t, before, bb.Frames())
	assert.Equal(t, beforeHash, bb.Hash)
	assert.Equal(t, beforeTurn, bb.Turn)
}

// TestMoveDeterministic checks that identical inputs yield identical node counts and
// chosen action across repeated runs.
func TestMoveDeterministic(t *testing.T) {
	run := func() search.NegamaxResult {
		bb := board.New()
		tt := search.NewTranspositionTable(16)
		return search.Move(bb, tt, 2, eval.Loss, eval.Win)
	}

	a := run()
	b := run()
	assert.Equal(t, a.Nodes, b.Nodes)
	assert.Equal(t, a.Action, b.Action)
	assert.Equal(t, a.Score, b.Score)
}

// TestMoveFindsImmediateWin covers a forced-win scenario: White has a second bot safely
// out of the blast radius, so exploding its square-0 bot (adjacent to Black's only bot)
// wipes out Black while White survives at square 63.
func TestMoveFindsImmediateWin(t *testing.T) {
	bb := board.With(board.White,
		board.Placement{Square: 0, Team: board.White, Height: 1},
		board.Placement{Square: 63, Team: board.White, Height: 1},
		board.Placement{Square: 1, Team: board.Black, Height: 1},
	)
	tt := search.NewTranspositionTable(16)
	result := search.Move(bb, tt, 1, eval.Loss, eval.Win)

	assert.True(t, result.Action.IsExplosion())
	assert.Equal(t, board.Square(0), result.Action.Source)
	assert.Equal(t, eval.Win, result.Score)
}

// TestMoveDepthZeroAtInterior ensures a search reaching depth zero at an interior node
// returns the static evaluation of the position rather than searching deeper.
func TestMoveDepthZeroAtInterior(t *testing.T) {
	bb := board.New()
	tt := search.NewTranspositionTable(16)
	result := search.Move(bb, tt, 1, eval.Loss, eval.Win)
	assert.NotZero(t, result.Nodes)
	// Every root child is a depth-zero leaf counted exactly once.
	assert.Equal(t, uint64(len(board.Generate(bb, nil))), result.Nodes)
}

// TestStalemateIsLoss checks that a position with an empty move list scores as a Loss.
func TestStalemateIsLoss(t *testing.T) {
	// A lone White bot fully boxed in by Black bots on every orthogonal reachable
	// square still has the explosion option available whenever adjacent to an
	// opponent, so force a position where the side to move (Black) has no robots at
	// all: Generate returns no actions and the empty-move-list path returns Loss.
	bb := board.With(board.Black, board.Placement{Square: 10, Team: board.White, Height: 1})
	tt := search.NewTranspositionTable(16)
	result := search.Move(bb, tt, 2, eval.Loss, eval.Win)
	assert.Equal(t, eval.Loss, result.Score)
}
