// bitboard.go defines BitBoard, the 64-bit set-of-squares primitive every
// other component in the package is built from.

package kogo

import (
	"math/bits"
	"strings"
)

// BitBoard is a set of squares packed into a 64-bit word; bit i is set iff
// Square(i) is a member. The zero value is the empty set.
type BitBoard uint64

// File and rank masks, used throughout the slide-fill and attack-table code
// to stop a shift from wrapping across the board edge.
const (
	fileA BitBoard = 0x0101010101010101
	fileH BitBoard = 0x8080808080808080
	rank1 BitBoard = 0x00000000000000FF
	rank8 BitBoard = 0xFF00000000000000

	notFileA BitBoard = ^fileA
	notFileH BitBoard = ^fileH
	notRank1 BitBoard = ^rank1
	notRank8 BitBoard = ^rank8
)

// Empty reports whether the set has no members.
func (b BitBoard) Empty() bool { return b == 0 }

// Single reports whether the set has exactly one member.
func (b BitBoard) Single() bool { return b != 0 && b&(b-1) == 0 }

// Count returns the number of member squares.
func (b BitBoard) Count() int { return bits.OnesCount64(uint64(b)) }

// Has reports whether s is a member of b.
func (b BitBoard) Has(s Square) bool { return b&s.BitBoard() != 0 }

// With returns b with s added.
func (b BitBoard) With(s Square) BitBoard { return b | s.BitBoard() }

// Without returns b with s removed.
func (b BitBoard) Without(s Square) BitBoard { return b &^ s.BitBoard() }

// WithoutAll returns the squares in b that are not in mask (b &^ mask).
func (b BitBoard) WithoutAll(mask BitBoard) BitBoard { return b &^ mask }

// First returns the lowest-indexed member square. It panics if b is empty.
func (b BitBoard) First() Square {
	if b == 0 {
		panic("kogo: First called on an empty BitBoard")
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopFirst removes and returns the lowest-indexed member square from *b. It
// panics if *b is empty.
func (b *BitBoard) PopFirst() Square {
	s := b.First()
	*b &= *b - 1
	return s
}

// PopFirstBoard removes the lowest-indexed member from *b and returns it as
// a single-bit BitBoard, isolated via the standard two's-complement trick.
func (b *BitBoard) PopFirstBoard() BitBoard {
	isolated := BitBoard(uint64(*b) & (-uint64(*b)))
	*b &^= isolated
	return isolated
}

// String renders the set as an 8x8 grid of '1'/'.' with rank 8 on top, used
// for debug output and test failure messages.
func (b BitBoard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s := Square(rank*8 + file)
			if b.Has(s) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file != 7 {
				sb.WriteByte(' ')
			}
		}
		if rank != 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
