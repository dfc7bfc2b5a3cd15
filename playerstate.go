// playerstate.go defines PlayerState: one side's piece placement plus the
// legality bookkeeping (enemy attacks, pins, check mask) that lets MoveGen
// filter to legal moves without make/unmake probing.

package kogo

// PlayerState holds one color's pieces and the legality state computed for
// it by the most recent call to Board's move-constraint refresh.
//
// The Pins, CheckMask, and KingMustMove fields describe the constraints
// THIS player's moves must obey, computed from the OPPONENT's pieces;
// Attacks is the opposite: the squares THIS player's pieces attack, which
// constrain the opponent's king (see attackgen.go, constraints.go).
type PlayerState struct {
	Kings   BitBoard
	Queens  BitBoard
	Rooks   BitBoard
	Bishops BitBoard
	Knights BitBoard
	Pawns   BitBoard

	// Occupied is the union of all six piece bitboards above.
	Occupied BitBoard

	// Attacks is every square this player's pieces attack, used to forbid
	// the opponent's king from moving there and to build castling safety
	// checks. Computed with the opponent's king removed from the board so
	// a king moving straight back along a slider's ray is still illegal
	// (see attackgen.go).
	Attacks BitBoard

	// CheckMask constrains this player's non-king pieces when in check:
	// all ones if not in check; under a single check, the checking ray
	// (every square between the king and a checking slider, plus the
	// slider) or the square of a checking knight or pawn; BitBoard(0) if in
	// double check (only the king may move; see KingMustMove).
	CheckMask BitBoard

	// Pins are this player's own pinned pieces, computed by ray-casting
	// from this player's king through the opponent's occupied squares.
	Pins Pins

	// KingMustMove is set when two or more enemy pieces check the king
	// simultaneously: no non-king move can resolve a double check, so
	// MoveGen skips straight to king moves.
	KingMustMove bool

	CanCastleKingside  bool
	CanCastleQueenside bool
}

// blankPlayerState returns a PlayerState with no pieces and no castling
// rights; callers place pieces with PlacePiece and then call
// Board.refreshConstraints once the whole position is assembled.
func blankPlayerState() PlayerState {
	return PlayerState{CheckMask: ^BitBoard(0)}
}

// PlacePiece adds a piece of the given kind on s to the player's
// bitboards and recomputes Occupied. It does not touch the piece's color;
// callers are responsible for placing it in the correct PlayerState.
func (ps *PlayerState) PlacePiece(kind PieceKind, s Square) {
	bit := s.BitBoard()
	switch kind {
	case King:
		ps.Kings |= bit
	case Queen:
		ps.Queens |= bit
	case Rook:
		ps.Rooks |= bit
	case Bishop:
		ps.Bishops |= bit
	case Knight:
		ps.Knights |= bit
	case Pawn:
		ps.Pawns |= bit
	default:
		panic("kogo: PlacePiece called with NoKind")
	}
	ps.Occupied |= bit
}

// RemovePiece clears s from whichever of the player's piece bitboards it
// belongs to and recomputes Occupied. It is a no-op if s holds none of the
// player's pieces.
func (ps *PlayerState) RemovePiece(s Square) {
	bit := s.BitBoard()
	mask := ^bit
	ps.Kings &= mask
	ps.Queens &= mask
	ps.Rooks &= mask
	ps.Bishops &= mask
	ps.Knights &= mask
	ps.Pawns &= mask
	ps.Occupied &= mask
}

