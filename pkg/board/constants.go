package board

// Frame indices into Bitboard.frame: 0 and 13 are team-occupancy unions, 1..12 are
// per-stack-height planes.
const (
	frameWhite = 0
	frameBlack = 13

	minHeight = 1
	maxHeight = 12
	numFrames = 14
)

// RowMasks[i] is the bitboard of rank i, 0..7.
var RowMasks [8]Frame

// Score bounds, in the same units eval.Score uses. pkg/eval imports pkg/board and
// derives its own Score-typed bounds from these.
const (
	Win      int16 = 30000
	Loss     int16 = -Win
	Draw     int16 = 0
	MaxScore int16 = Win
	MinScore int16 = Loss
)

// MovesLookup[h][s] is the set of target squares reachable by moving a stack of height h
// (1..12) orthogonally, up to h squares, from square s. Diagonal movement is never
// reachable. Index 0 is unused (zero value).
var MovesLookup [maxHeight + 1][64]Frame

func init() {
	for i := 0; i < 8; i++ {
		RowMasks[i] = Frame(0xff) << Frame(8*i)
	}

	for sq := Square(0); sq < 64; sq++ {
		adjacentLookup[sq] = computeAdjacent(sq)
	}

	for h := minHeight; h <= maxHeight; h++ {
		for sq := Square(0); sq < 64; sq++ {
			MovesLookup[h][sq] = computeMoves(sq, h)
		}
	}
}

// computeAdjacent builds the 8-neighbor mask for a single square by raytracing each of
// the 4 orthogonal + 4 diagonal directions one step, stopping at the board edge.
func computeAdjacent(sq Square) Frame {
	x, y := sq.X(), sq.Y()

	var out Frame
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx > 7 || ny < 0 || ny > 7 {
				continue
			}
			out |= Square(ny*8 + nx).Mask()
		}
	}
	return out
}

// computeMoves builds the set of orthogonal target squares reachable from sq by a stack
// of the given height, up to height squares in each of the 4 cardinal directions.
func computeMoves(sq Square, height int) Frame {
	x, y := sq.X(), sq.Y()

	var out Frame
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range dirs {
		for step := 1; step <= height; step++ {
			nx, ny := x+d[0]*step, y+d[1]*step
			if nx < 0 || nx > 7 || ny < 0 || ny > 7 {
				break // off board: further steps in this direction are too
			}
			out |= Square(ny*8 + nx).Mask()
		}
	}
	return out
}
