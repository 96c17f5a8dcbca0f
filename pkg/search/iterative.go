package search

import (
	"context"
	"time"

	"github.com/halvard/boombots/pkg/board"
	"github.com/halvard/boombots/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"
)

// PV is one iterative-deepening iteration's result plus its wall-clock cost.
type PV struct {
	NegamaxResult
	Time time.Duration
}

// IterativeDeepen runs Move at increasing depth, 1..maxDepth (or without bound if
// maxDepth <= 0), publishing each iteration's PV on the returned channel. Cancellation
// is checked only between iterations (contextx.IsCancelled), never inside Move/score -
// there are no suspension points inside a single search call.
func IterativeDeepen(ctx context.Context, bb *board.Bitboard, tt *TranspositionTable, maxDepth int, halt <-chan struct{}) <-chan PV {
	out := make(chan PV, 1)
	var done atomic.Bool

	go func() {
		defer close(out)

		for depth := 1; maxDepth <= 0 || depth <= maxDepth; depth++ {
			if contextx.IsCancelled(ctx) || done.Load() {
				return
			}
			select {
			case <-halt:
				return
			default:
			}

			start := time.Now()
			result := Move(bb, tt, depth, eval.Loss, eval.Win)
			pv := PV{NegamaxResult: result, Time: time.Since(start)}

			logw.Debugf(ctx, "Searched depth=%v: action=%v score=%v nodes=%v ttHits=%v in %v",
				depth, result.Action, result.Score, result.Nodes, result.TTHits, pv.Time)

			select {
			case <-out:
			default:
			}
			out <- pv
		}
	}()

	return out
}
