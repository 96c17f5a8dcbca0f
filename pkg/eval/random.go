package eval

import (
	"math/rand"

	"github.com/halvard/boombots/pkg/board"
)

// randomized wraps an Evaluator, adding a bounded amount of deterministic pseudo-random
// noise to its output, expressed directly in Score units via 'millis'.
type randomized struct {
	next   Evaluator
	rand   *rand.Rand
	millis int
}

// Randomize decorates next with noise in [-millis/2; millis-millis/2), seeded deterministically
// by seed so that a given (seed, move sequence) replay perturbs identically every run.
// millis=0 returns next unchanged: deterministic search remains available, since the
// search's alpha-beta pruning and TT bound policy do not depend on evaluation noise
// being absent.
func Randomize(next Evaluator, millis int, seed int64) Evaluator {
	if millis <= 0 {
		return next
	}
	return &randomized{
		next:   next,
		rand:   rand.New(rand.NewSource(seed)),
		millis: millis,
	}
}

func (r *randomized) Evaluate(bb *board.Bitboard) Score {
	base := r.next.Evaluate(bb)
	noise := Score(r.rand.Intn(r.millis) - r.millis/2)
	return Crop(base + noise)
}
