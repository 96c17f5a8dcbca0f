package engine_test

import (
	"testing"

	"github.com/halvard/boombots/pkg/board"
	"github.com/halvard/boombots/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	e := engine.New(engine.Options{HashExponent: 8})
	assert.Equal(t, 12, e.Bitboard().Robots(board.White))
	assert.Equal(t, 12, e.Bitboard().Robots(board.Black))
}

func TestEngineSearchReturnsLegalAction(t *testing.T) {
	e := engine.New(engine.Options{HashExponent: 8})
	result := e.Search(1)

	legal := false
	for _, sa := range board.Generate(e.Bitboard(), nil) {
		if sa.Action.Equals(result.Action) {
			legal = true
			break
		}
	}
	assert.True(t, legal)
}

func TestEngineApplyAdvancesBoard(t *testing.T) {
	e := engine.New(engine.Options{HashExponent: 8})
	before := e.Bitboard().Turn

	e.Apply(board.Action{Source: 0, Target: 1, Robots: 1})
	assert.NotEqual(t, before, e.Bitboard().Turn)
}
