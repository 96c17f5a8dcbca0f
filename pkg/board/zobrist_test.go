package board_test

import (
	"testing"

	"github.com/halvard/boombots/pkg/board"
	"github.com/stretchr/testify/assert"
)

// TestHashConsistency checks that a Bitboard's Hash always equals the from-scratch
// XOR formula over its frames and turn, both initially and after apply/undo.
func TestHashConsistency(t *testing.T) {
	keys := board.NewZobristKeys(board.DefaultSeed)

	bb := board.New()
	assert.Equal(t, keys.Hash(bb.Frames(), bb.Turn), bb.Hash)

	d := bb.Delta(board.Action{Source: 0, Target: 1, Robots: 1})
	prevHash := bb.Hash
	bb.Apply(d)
	assert.Equal(t, keys.Hash(bb.Frames(), bb.Turn), bb.Hash)

	bb.Undo(d, prevHash)
	assert.Equal(t, keys.Hash(bb.Frames(), bb.Turn), bb.Hash)
}

// TestZobristKeysIndependentSeed ensures NewZobristKeys produces a distinct table per
// seed, so tests that want an isolated table (rather than the package-level default)
// can get one.
func TestZobristKeysIndependentSeed(t *testing.T) {
	a := board.NewZobristKeys(1)
	b := board.NewZobristKeys(2)
	assert.NotEqual(t, a.Key, b.Key)
}
