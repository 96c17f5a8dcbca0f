package board

import "container/heap"

// maxActions is the nominal upper bound on the number of actions a single Generate call
// produces. Generate does not enforce it: move-list storage is a plain slice that starts
// at capacity 64 and grows as needed, rather than a fixed array.
const maxActions = 256

// Ordering bonuses applied when scoring a generated action for search ordering.
const (
	pvBonus       uint16 = 1000
	explosionBonus uint16 = 500
	checkBonus    uint16 = 300
	stackUnit     uint16 = 10
	forwardUnit   uint16 = 15
	sidewaysUnit  uint16 = 5
)

// Generate enumerates every legal move/stack action for the side to move on bb, plus the
// explosions of its bots that are adjacent to an opponent bot (see appendExplosions),
// attaches a heuristic move-ordering score to each, and returns them sorted highest score first
// (ties broken arbitrarily by heap structure). pv, if non-nil, is boosted to sort first —
// the principal-variation move recalled from a shallower iteration or TT probe.
func Generate(bb *Bitboard, pv *Action) []ScoredAction {
	actions := make([]ScoredAction, 0, 64)
	actions = appendExplosions(bb, actions)
	actions = appendDirectional(bb, actions)

	for i := range actions {
		actions[i].Score = score(bb, actions[i].Action, pv)
	}
	return sortDescending(actions)
}

// appendExplosions emits a (source, 0, 0) action for every turn-player bot adjacent to
// at least one opponent bot. An explosion at a bot with no adjacent opponent is not
// emitted. If its chain does reach enemy bots, it passes through an own bot that is
// adjacent to one; that bot's explosion clears the same connected group and is emitted.
func appendExplosions(bb *Bitboard, actions []ScoredAction) []ScoredAction {
	opponent := bb.Team(bb.Turn.Opponent())

	mine := bb.Team(bb.Turn)
	for mask := mine; mask != 0; {
		bit := LSB(mask)
		mask ^= bit
		sq := SquareFromMask(bit)
		if Adjacent(sq)&opponent != 0 {
			actions = append(actions, ScoredAction{Action: Action{Source: sq, Target: sq, Robots: 0}})
		}
	}
	return actions
}

// appendDirectional emits every legal move/stack action, tallest stacks first, so that
// the strongest stacking options are seen early by downstream move-ordering.
func appendDirectional(bb *Bitboard, actions []ScoredAction) []ScoredAction {
	opponent := bb.Team(bb.Turn.Opponent())

	for h := maxHeight; h >= minHeight; h-- {
		sources := bb.frame[h] & bb.Team(bb.Turn)
		for mask := sources; mask != 0; {
			bit := LSB(mask)
			mask ^= bit
			s := SquareFromMask(bit)

			targets := MovesLookup[h][s] &^ opponent
			for tmask := targets; tmask != 0; {
				tbit := LSB(tmask)
				tmask ^= tbit
				t := SquareFromMask(tbit)

				toHeight := bb.Height(t)
				for r := 1; r <= h; r++ {
					if toHeight+r > maxHeight {
						break // stacking further would overflow; larger r only makes it worse
					}
					actions = append(actions, ScoredAction{Action: Action{Source: s, Target: t, Robots: r}})
				}
			}
		}
	}
	return actions
}

// score assigns a's move-ordering heuristic value.
func score(bb *Bitboard, a Action, pv *Action) uint16 {
	if pv != nil && a.Equals(*pv) {
		return pvBonus
	}
	if a.IsExplosion() {
		return explosionBonus
	}

	var s uint16
	opponent := bb.Team(bb.Turn.Opponent())
	if Adjacent(a.Target)&opponent != 0 {
		s += checkBonus
	}

	toHeight := bb.Height(a.Target)
	if toHeight > 0 {
		s += stackUnit * uint16(toHeight+a.Robots)
	}

	s += uint16(directionalBonus(bb.Turn, a.Source, a.Target))
	return s
}

// directionalBonus rewards forward progress (+forwardUnit per rank) over sideways drift
// (+sidewaysUnit per file), and nothing for moving backward, relative to the turn side:
// White advances +y, Black advances -y.
func directionalBonus(turn Team, source, target Square) int {
	dy := target.Y() - source.Y()
	if turn == Black {
		dy = -dy
	}
	dx := target.X() - source.X()
	if dx < 0 {
		dx = -dx
	}

	var bonus int
	if dy > 0 {
		bonus += forwardUnit * dy
	}
	bonus += sidewaysUnit * dx
	return bonus
}

// sortDescending drains a binary max-heap over actions: sorted by descending score, ties
// broken arbitrarily by heap structure rather than a stable sort.
func sortDescending(actions []ScoredAction) []ScoredAction {
	h := scoredActionHeap(actions)
	heap.Init(&h)

	out := make([]ScoredAction, 0, len(h))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(ScoredAction))
	}
	return out
}

// scoredActionHeap is a container/heap max-heap over ScoredAction.
type scoredActionHeap []ScoredAction

func (h scoredActionHeap) Len() int            { return len(h) }
func (h scoredActionHeap) Less(i, j int) bool  { return h[i].Score > h[j].Score }
func (h scoredActionHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoredActionHeap) Push(x interface{}) { *h = append(*h, x.(ScoredAction)) }
func (h *scoredActionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
