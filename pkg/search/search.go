package search

import (
	"github.com/halvard/boombots/pkg/board"
	"github.com/halvard/boombots/pkg/eval"
)

// lmrLowThreshold, lmrHighThreshold and lmrMinDepth are the late-move-reduction
// parameters: children scored <= 100 get the deepest reduction, <= 300 a shallower one,
// and reduced depth never drops below lmrMinDepth.
const (
	lmrLowThreshold  uint16 = 100
	lmrHighThreshold uint16 = 300
	lmrMinDepth      int    = 2
)

// NegamaxResult is the outcome of one Move (or IterativeDeepen iteration): the chosen
// root action, its score, and search telemetry.
type NegamaxResult struct {
	Action board.Action
	Score  eval.Score
	Nodes  uint64
	TTHits uint64
	Depth  int
}

// run carries the three exclusively-owned collaborators (board, TT, evaluator) plus
// accumulators through one negamax call tree by reference. No shared ownership or
// back-references between calls.
type run struct {
	bb     *board.Bitboard
	tt     *TranspositionTable
	eval   eval.Evaluator
	nodes  uint64
	ttHits uint64
}

// Move runs one fixed-depth negamax search from bb's current position and returns the
// best root action. bb is left unmodified (every Apply is matched by an Undo).
func Move(bb *board.Bitboard, tt *TranspositionTable, depth int, alpha, beta eval.Score) NegamaxResult {
	return MoveWithEvaluator(bb, tt, eval.Default, depth, alpha, beta)
}

// MoveWithEvaluator is Move parameterized by an explicit Evaluator, so callers (tests,
// pkg/engine with its noise options) can supply eval.Randomize(...) or a stub.
func MoveWithEvaluator(bb *board.Bitboard, tt *TranspositionTable, evaluator eval.Evaluator, depth int, alpha, beta eval.Score) NegamaxResult {
	r := &run{bb: bb, tt: tt, eval: evaluator}

	actions := board.Generate(bb, nil)
	if len(actions) == 0 {
		return NegamaxResult{Score: eval.Loss, Depth: depth}
	}

	alphaOriginal := alpha
	best := actions[0].Action
	bestScore := eval.MinScore

	for _, sa := range actions {
		next := lmrNextDepth(depth, sa.Score)

		delta := bb.Delta(sa.Action)
		prevHash := bb.Hash
		bb.Apply(delta)
		child := r.score(next, eval.Negate(beta), eval.Negate(alpha))
		bb.Undo(delta, prevHash)

		score := eval.Negate(child)
		if score > bestScore {
			bestScore = score
			best = sa.Action
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}

	bound := boundFor(bestScore, alphaOriginal, beta)
	tt.Store(bb.Hash, bestScore, best, depth, bound)

	return NegamaxResult{Action: best, Score: bestScore, Nodes: r.nodes, TTHits: r.ttHits, Depth: depth}
}

// score is the interior negamax call, returning the score from the side-to-move's
// perspective at the current bb.
func (r *run) score(depth int, alpha, beta eval.Score) eval.Score {
	if outcome := eval.Terminal(r.bb); outcome != eval.None {
		r.nodes++
		switch outcome {
		case eval.WinOutcome:
			return eval.Win
		case eval.LossOutcome:
			return eval.Loss
		default:
			return eval.Draw
		}
	}

	var pv *board.Action
	if e, ok := r.tt.Lookup(r.bb.Hash); ok {
		r.ttHits++
		mv := e.Move
		pv = &mv

		if e.Depth >= depth {
			switch e.Bound {
			case ExactBound:
				return e.Score
			case LowerBound:
				if e.Score > alpha {
					alpha = e.Score
				}
			case UpperBound:
				if e.Score < beta {
					beta = e.Score
				}
			}
			if alpha >= beta {
				return e.Score
			}
		}
	}

	if depth == 0 {
		r.nodes++
		return r.eval.Evaluate(r.bb)
	}

	actions := board.Generate(r.bb, pv)
	if len(actions) == 0 {
		r.nodes++
		return eval.Loss // stalemate counts as a loss for the side to move
	}
	r.nodes++

	alphaOriginal := alpha
	best := actions[0].Action
	bestScore := eval.MinScore

	for _, sa := range actions {
		next := lmrNextDepth(depth, sa.Score)

		delta := r.bb.Delta(sa.Action)
		prevHash := r.bb.Hash
		r.bb.Apply(delta)
		child := r.score(next, eval.Negate(beta), eval.Negate(alpha))
		r.bb.Undo(delta, prevHash)

		score := eval.Negate(child)
		if score > bestScore {
			bestScore = score
			best = sa.Action
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	bound := boundFor(bestScore, alphaOriginal, beta)
	r.tt.Store(r.bb.Hash, bestScore, best, depth, bound)

	return bestScore
}

// lmrNextDepth applies late-move reduction: shallow searches (depth <= 2) never
// reduce; otherwise low-scored (late, unpromising) siblings get a deeper reduction than
// medium-scored ones, and siblings scored above lmrHighThreshold (the PV move,
// explosions, and "check" moves with any extra bonus) search at full depth - 1.
func lmrNextDepth(depth int, childScore uint16) int {
	if depth <= 2 {
		return depth - 1
	}
	switch {
	case childScore <= lmrLowThreshold:
		return maxInt(lmrMinDepth, depth/3)
	case childScore <= lmrHighThreshold:
		return maxInt(lmrMinDepth, depth/2)
	default:
		return depth - 1
	}
}

// boundFor classifies bestScore against the search window the node was entered with:
// Upper if bestScore did not raise alpha, Lower if it caused a beta cutoff, else Exact.
func boundFor(bestScore, alphaOriginal, beta eval.Score) Bound {
	switch {
	case bestScore <= alphaOriginal:
		return UpperBound
	case bestScore >= beta:
		return LowerBound
	default:
		return ExactBound
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
