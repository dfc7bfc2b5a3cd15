// square.go defines board squares and the directions between them.

package kogo

import "fmt"

// Square identifies one of the 64 board squares. Bit i of a [BitBoard]
// corresponds to Square(i); the mapping is file + 8*rank, so A1 is 0 and
// H8 is 63.
type Square int

// Named squares, A1 through H8, in rank-major / file-minor order (A1, B1,
// ..., H1, A2, ...).
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the square's file, 0 (a-file) through 7 (h-file).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the square's rank, 0 (first rank) through 7 (eighth rank).
func (s Square) Rank() int { return int(s) / 8 }

// BitBoard returns the single-bit BitBoard occupied by s.
func (s Square) BitBoard() BitBoard { return BitBoard(1) << uint(s) }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+rune(s.File()), '1'+rune(s.Rank()))
}

// ParseSquare parses algebraic notation ("a1".."h8") into a Square.
// It panics if s is not exactly two characters or names a square off the
// board; callers accepting untrusted input should validate length and
// character ranges first (see fen.Parse for an error-returning wrapper).
func ParseSquare(s string) Square {
	if len(s) != 2 {
		panic("kogo: square notation must be two characters, got " + s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		panic("kogo: square notation out of range: " + s)
	}
	return Square(rank*8 + file)
}

// Direction is one of the eight ray directions a sliding piece can move
// along, or DirectionNone when two squares share none of them.
type Direction int

const (
	DirectionNone Direction = iota
	North
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// DirectionTo classifies the ray relationship between s and other: which of
// the eight directions (if any) leads from s to other. It is used by
// diagnostics and rendering code to explain why a pin or check applies, not
// by the move generator itself (which works with precomputed masks).
func (s Square) DirectionTo(other Square) Direction {
	if s == other {
		return DirectionNone
	}
	df := other.File() - s.File()
	dr := other.Rank() - s.Rank()
	switch {
	case df == 0 && dr > 0:
		return North
	case df == 0 && dr < 0:
		return South
	case dr == 0 && df > 0:
		return East
	case dr == 0 && df < 0:
		return West
	case df == dr && df > 0:
		return NorthEast
	case df == dr && df < 0:
		return SouthWest
	case df == -dr && df > 0:
		return SouthEast
	case df == -dr && df < 0:
		return NorthWest
	default:
		return DirectionNone
	}
}
