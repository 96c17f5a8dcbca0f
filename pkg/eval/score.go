// Package eval contains static position evaluation for Boombots bitboards: material,
// mobility surface, stack power, and terminal (win/loss/draw) detection.
package eval

import "github.com/halvard/boombots/pkg/board"

// Score is a signed position score from the side-to-move's perspective, in the same
// 16-bit range the transposition table and search carry end to end.
type Score int16

// Score bounds mirror board's Win/Loss/Draw constants, typed as Score. pkg/search uses
// these eval bounds.
const (
	Win      Score = Score(board.Win)
	Loss     Score = Score(board.Loss)
	Draw     Score = Score(board.Draw)
	MaxScore Score = Score(board.MaxScore)
	MinScore Score = Score(board.MinScore)
)

// Crop clamps s into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the larger of a and b.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of a and b.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// Negate flips the score to the opponent's perspective, used by negamax recursion.
func Negate(s Score) Score {
	return -s
}
