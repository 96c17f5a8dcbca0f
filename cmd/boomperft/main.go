// boomperft is a move-generation and search debugging tool: a non-interactive depth
// sweep that prints machine-readable stdout rows instead of interactively playing a
// game.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/halvard/boombots/pkg/board"
	"github.com/halvard/boombots/pkg/engine"
	"github.com/halvard/boombots/pkg/eval"
	"github.com/halvard/boombots/pkg/search"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	layout = flag.String("layout", "", "Named test scenario (default: standard starting position)")
	hash   = flag.Uint("hash", 20, "Transposition table size, as a power-of-two exponent")
	divide = flag.Bool("divide", false, "Print per-root-action node counts at the deepest depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	bb, err := newLayout(*layout)
	if err != nil {
		logw.Exitf(ctx, "Invalid layout %q: %v", *layout, err)
	}

	logw.Infof(ctx, "boomperft %v: depth=%v hash=2^%v", engine.Version(), *depth, *hash)

	tt := search.NewTranspositionTable(*hash)
	for i := 1; i <= *depth; i++ {
		start := time.Now()
		result := search.MoveWithEvaluator(bb, tt, eval.Default, i, eval.Loss, eval.Win)
		micros := time.Since(start).Microseconds()

		if *divide && i == *depth {
			printDivide(bb, tt, i)
		}
		println(fmt.Sprintf("boomperft,%v,%v,%v,%v,%v", i, result.Nodes, result.TTHits, result.Score, micros))
	}
}

// newLayout constructs the starting Bitboard for a named scenario. Only "" (standard)
// is currently defined; unknown names are an error rather than silently falling back,
// so a typo'd -layout flag fails loudly instead of perft-ing the wrong position.
func newLayout(name string) (*board.Bitboard, error) {
	switch name {
	case "":
		return board.New(), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", name)
	}
}

// printDivide reports, for each root action, the node count of the subtree it roots -
// useful for isolating a move-generation divergence to a single root action.
func printDivide(bb *board.Bitboard, tt *search.TranspositionTable, depth int) {
	for _, sa := range board.Generate(bb, nil) {
		delta := bb.Delta(sa.Action)
		prevHash := bb.Hash
		bb.Apply(delta)
		result := search.MoveWithEvaluator(bb, tt, eval.Default, depth-1, eval.Loss, eval.Win)
		bb.Undo(delta, prevHash)

		println(fmt.Sprintf("%v: %v", sa.Action, result.Nodes))
	}
}
