// Package board contains the bit-packed Boombots board representation: bit primitives,
// precomputed lookup tables, the Frame itself, actions/deltas, and move generation.
package board

import "fmt"

// Square identifies one of the 64 board squares, 0..63, row-major: square = y*8 + x.
// 6 bits.
type Square uint8

const (
	NumSquares Square = 64
)

// X returns the file, 0..7.
func (s Square) X() int {
	return int(s) % 8
}

// Y returns the rank, 0..7.
func (s Square) Y() int {
	return int(s) / 8
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.X()), s.Y()+1)
}

// Mask returns the single-bit Frame for the square.
func (s Square) Mask() Frame {
	return Frame(1) << Frame(s)
}

// SquareFromMask returns the square of the sole set bit in mask. Undefined if mask is
// empty or has more than one bit set.
func SquareFromMask(mask Frame) Square {
	return Square(PopLSBIndex(mask))
}
