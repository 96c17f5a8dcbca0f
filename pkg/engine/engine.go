// Package engine wires together a Bitboard, TranspositionTable and the search package
// into a single constructable entry point for a driver such as an external frontend.
// cmd/boomperft uses only Version and drives pkg/search directly.
package engine

import (
	"fmt"

	"github.com/halvard/boombots/pkg/board"
	"github.com/halvard/boombots/pkg/eval"
	"github.com/halvard/boombots/pkg/search"
	"github.com/seekerror/build"
)

var version = build.NewVersion(0, 1, 0)

// Version returns the engine's semantic version.
func Version() build.Version {
	return version
}

// Options are engine construction options.
type Options struct {
	// HashExponent sizes the transposition table to 2^HashExponent entries.
	HashExponent uint
	// NoiseMillis adds deterministic pseudo-random noise to leaf evaluations; 0 disables it.
	NoiseMillis int
	// NoiseSeed seeds the noise generator when NoiseMillis > 0.
	NoiseSeed int64
}

func (o Options) String() string {
	return fmt.Sprintf("{hashExponent=%v, noiseMillis=%v}", o.HashExponent, o.NoiseMillis)
}

// Engine bundles a Bitboard, a TranspositionTable sized per Options, and the evaluator
// search.Move uses — the single owner of its board/TT/evaluator triple for the duration
// of a game.
type Engine struct {
	opts Options
	bb   *board.Bitboard
	tt   *search.TranspositionTable
	eval eval.Evaluator
}

// New constructs an Engine at the standard starting position.
func New(opts Options) *Engine {
	evaluator := eval.Default
	if opts.NoiseMillis > 0 {
		evaluator = eval.Randomize(evaluator, opts.NoiseMillis, opts.NoiseSeed)
	}
	return &Engine{
		opts: opts,
		bb:   board.New(),
		tt:   search.NewTranspositionTable(opts.HashExponent),
		eval: evaluator,
	}
}

// Bitboard returns the engine's owned board.
func (e *Engine) Bitboard() *board.Bitboard {
	return e.bb
}

// Table returns the engine's transposition table.
func (e *Engine) Table() *search.TranspositionTable {
	return e.tt
}

// Search runs one fixed-depth negamax search from the engine's current position.
func (e *Engine) Search(depth int) search.NegamaxResult {
	return search.MoveWithEvaluator(e.bb, e.tt, e.eval, depth, eval.Loss, eval.Win)
}

// Apply mutates the engine's board by a. Only the forward half is exposed since the
// engine never needs to undo a played (as opposed to searched) action.
func (e *Engine) Apply(a board.Action) {
	delta := e.bb.Delta(a)
	e.bb.Apply(delta)
}
