// pins.go defines Pins, the set of four ray masks updatePinsAndCheckMask
// computes each ply: one per absolute pin direction (horizontal, vertical,
// diagonal, anti-diagonal). A pinned piece may only move along the ray
// named by whichever of the four masks contains it — including capturing
// the pinning piece at the far end of that ray.

package kogo

// Pins holds, for each of the four ray directions, the union of all
// friendly-pin rays currently active in that direction: every square from
// the king to (and including) the pinning piece, for every piece pinned
// along that axis this ply. A piece not present in any of the four masks
// is unpinned.
type Pins struct {
	Horizontal   BitBoard
	Vertical     BitBoard
	Diagonal     BitBoard
	AntiDiagonal BitBoard
}

// HorizontalVertical is the union of the two orthogonal pin masks.
func (p Pins) HorizontalVertical() BitBoard { return p.Horizontal | p.Vertical }

// DiagonalAntiDiagonal is the union of the two diagonal pin masks.
func (p Pins) DiagonalAntiDiagonal() BitBoard { return p.Diagonal | p.AntiDiagonal }

// All is the union of all four pin masks.
func (p Pins) All() BitBoard { return p.HorizontalVertical() | p.DiagonalAntiDiagonal() }

// AllowedSquares returns the squares a piece standing on origin is allowed
// to move to because of pinning alone: the ray of whichever pin mask
// contains origin, or the all-ones board (no restriction) if origin isn't
// pinned along any axis. Combine with the check mask and the piece's own
// attack pattern to get its legal destinations.
func (p Pins) AllowedSquares(origin BitBoard) BitBoard {
	switch {
	case p.Horizontal&origin != 0:
		return p.Horizontal
	case p.Vertical&origin != 0:
		return p.Vertical
	case p.Diagonal&origin != 0:
		return p.Diagonal
	case p.AntiDiagonal&origin != 0:
		return p.AntiDiagonal
	default:
		return ^BitBoard(0)
	}
}
