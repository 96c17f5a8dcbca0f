// Package parity cross-checks that pkg/board's bitboard move generator and
// pkg/model's slot-based legality gate agree on which directional actions are legal,
// since a network client's action is validated against pkg/model while the search
// engine only ever considers pkg/board's generated actions.
package parity_test

import (
	"testing"

	"github.com/halvard/boombots/pkg/board"
	"github.com/halvard/boombots/pkg/model"
	"github.com/stretchr/testify/assert"
)

// TestGeneratedDirectionalActionsAreValidInModel checks that every move/stack action the
// bitboard generator produces from the standard starting position is also accepted by
// the slot model's Valid gate.
func TestGeneratedDirectionalActionsAreValidInModel(t *testing.T) {
	bb := board.New()
	g := model.New()

	for _, sa := range board.Generate(bb, nil) {
		a := sa.Action
		if a.IsExplosion() {
			continue
		}
		ma := model.Action{Source: int(a.Source), Target: int(a.Target), Robots: a.Robots}
		assert.True(t, g.Valid(ma), "bitboard-legal action %v rejected by model", a)
	}
}

// TestModelRejectsEveryDirectionalActionBitboardOmits checks the converse: for every
// occupied square belonging to the side to move, scanning every (target, robots)
// combination the bitboard generator did not produce is rejected by the model too.
// Explosions are excluded deliberately (see DESIGN.md): the model accepts any explosion
// on an own bot, while the generator only emits explosions adjacent to an opponent,
// since an isolated explosion can never be the best move and is pruned for search
// efficiency rather than being illegal.
func TestModelRejectsEveryDirectionalActionBitboardOmits(t *testing.T) {
	bb := board.New()
	g := model.New()

	legal := make(map[model.Action]bool)
	for _, sa := range board.Generate(bb, nil) {
		a := sa.Action
		if a.IsExplosion() {
			continue
		}
		legal[model.Action{Source: int(a.Source), Target: int(a.Target), Robots: a.Robots}] = true
	}

	for source := 0; source < 64; source++ {
		bot := g.At(source)
		if bot == nil || bot.Team != g.Turn() {
			continue
		}
		for target := 0; target < 64; target++ {
			for robots := 1; robots <= bot.Height; robots++ {
				ma := model.Action{Source: source, Target: target, Robots: robots}
				if legal[ma] {
					continue
				}
				assert.False(t, g.Valid(ma), "model accepts %v that the bitboard generator never produces", ma)
			}
		}
	}
}

// TestGeneratedExplosionsAreValidInModel checks the one-directional agreement that does
// hold for explosions: every explosion the generator produces is also Valid in the
// model (the converse does not hold; see TestModelRejectsEveryDirectionalActionBitboardOmits).
func TestGeneratedExplosionsAreValidInModel(t *testing.T) {
	bb := board.With(board.White,
		board.Placement{Square: 0, Team: board.White, Height: 1},
		board.Placement{Square: 9, Team: board.Black, Height: 1},
	)
	g := model.Empty()
	g.Place(0, model.White, 1)
	g.Place(9, model.Black, 1)

	found := false
	for _, sa := range board.Generate(bb, nil) {
		a := sa.Action
		if !a.IsExplosion() {
			continue
		}
		found = true
		assert.True(t, g.Valid(model.Action{Source: int(a.Source), Robots: 0}))
	}
	assert.True(t, found, "expected at least one explosion to be generated")
}
