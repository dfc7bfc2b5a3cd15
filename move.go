// move.go defines Move, the tagged-variant description of a chess move
// spec'd in terms of the five shapes a legal move can take: a regular
// piece move, an en passant capture, a promotion, and the two castles.

package kogo

// MoveKind discriminates the variant a Move carries.
type MoveKind int

const (
	// MoveRegular is any move that neither captures en passant, promotes,
	// nor castles — including ordinary captures.
	MoveRegular MoveKind = iota
	MoveEnPassant
	MovePromotion
	MoveCastleKingside
	MoveCastleQueenside
)

// Move is a legal move produced by MoveGen. Only the fields relevant to its
// Kind are meaningful:
//
//	MoveRegular:    Origin, Target, Piece, DoublePush
//	MoveEnPassant:  Origin (the target and captured pawn are recovered from
//	                the board's en passant state at apply time)
//	MovePromotion:  Origin, Target, Promotion
//	MoveCastleKingside, MoveCastleQueenside: no fields; the king and rook
//	                squares are implied by the side to move
type Move struct {
	Kind MoveKind

	Origin Square
	Target Square

	// Piece is the moving piece's kind, for MoveRegular; pawn double
	// pushes set DoublePush so Board.MakeMove can record the new en
	// passant target.
	Piece      PieceKind
	DoublePush bool

	// Promotion is the piece kind a pawn promotes to, for MovePromotion.
	Promotion PieceKind
}

// epInfo records the current en passant opportunity, if any: CapturePoint
// is the square a capturing pawn lands on, and Pawn is the square the
// capturable pawn actually sits on (one rank behind CapturePoint).
type epInfo struct {
	valid        bool
	capturePoint Square
	pawn         Square
}

// Valid reports whether an en passant capture is available this ply.
func (e epInfo) Valid() bool { return e.valid }

// CapturePoint returns the square a capturing pawn lands on. It panics if
// no en passant capture is available; check Valid first.
func (e epInfo) CapturePoint() Square {
	if !e.valid {
		panic("kogo: CapturePoint called with no en passant opportunity")
	}
	return e.capturePoint
}

// PawnSquare returns the square of the pawn that would be captured. It
// panics if no en passant capture is available; check Valid first.
func (e epInfo) PawnSquare() Square {
	if !e.valid {
		panic("kogo: PawnSquare called with no en passant opportunity")
	}
	return e.pawn
}
