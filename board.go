// board.go defines Board, the full position: two PlayerStates (the side to
// move and its opponent, swapped every ply rather than tracked as
// White/Black), whose to move it is, the current en passant opportunity,
// a square-indexed piece map kept in sync with the bitboards for O(1)
// "what's on this square" queries, and the halfmove/fullmove counters.
//
// Board is a plain value type — no pointers, no slices — so it is cheap to
// copy and safe to hand to concurrent goroutines (see internal/perft).

package kogo

// Board is a complete chess position.
type Board struct {
	// Moving is the side about to move; Moved is its opponent. They swap
	// after every call to MakeMove, rather than being indexed by absolute
	// color, because nearly every piece of move-generation logic only
	// ever cares about "us" vs "them".
	Moving PlayerState
	Moved  PlayerState

	// ToMove is Moving's absolute color, needed only for rendering, FEN
	// serialization, and pawn-direction/castling-rank lookups.
	ToMove Color

	EnPassant epInfo

	// squares is a 64-entry square -> piece map kept redundant with the
	// bitboards above. Bitboards answer "which squares hold a rook", but
	// MakeMove and CLI rendering repeatedly need the inverse: "what piece
	// is on e4" — walking six bitboards per query would be wasteful, so
	// the map is maintained incrementally alongside every place/remove.
	squares [64]Piece

	HalfMoveClock  int
	FullMoveNumber int

	// slidingCheckMask/slidingCheckCount carry updatePinsAndCheckMask's
	// sliding-piece result to updateNonSlidingCheckMask within a single
	// refreshConstraints call; they hold no meaning between calls.
	slidingCheckMask  BitBoard
	slidingCheckCount int
}

// PieceAt returns the piece on s, or the zero Piece (NoKind) if s is empty.
func (b *Board) PieceAt(s Square) Piece { return b.squares[s] }

// placePiece adds piece to both the relevant PlayerState's bitboards and
// the square map. s must currently be empty.
func (b *Board) placePiece(piece Piece, s Square) {
	ps := b.playerState(piece.Color)
	ps.PlacePiece(piece.Kind, s)
	b.squares[s] = piece
}

// removePiece clears s from whichever PlayerState occupies it and from the
// square map. It is a no-op if s is already empty.
func (b *Board) removePiece(s Square) {
	piece := b.squares[s]
	if piece.IsEmpty() {
		return
	}
	b.playerState(piece.Color).RemovePiece(s)
	b.squares[s] = Piece{}
}

// playerState returns a pointer to the PlayerState for the given absolute
// color, accounting for the moving/moved swap.
func (b *Board) playerState(color Color) *PlayerState {
	if color == b.ToMove {
		return &b.Moving
	}
	return &b.Moved
}

// MakeMove applies m to the position: it updates piece placement, castling
// rights, the en passant target, the halfmove/fullmove counters, swaps
// Moving and Moved, and recomputes pins/check mask/attacks for the new
// side to move. m is assumed to have come from MoveGen.Run on this exact
// Board; passing an arbitrary Move is undefined behavior (it may panic or
// silently corrupt the position).
func (b *Board) MakeMove(m Move) {
	movingColor := b.ToMove
	isPawnMove := m.Kind == MoveEnPassant || m.Kind == MovePromotion || (m.Kind == MoveRegular && m.Piece == Pawn)
	isCapture := m.Kind == MoveEnPassant ||
		(m.Kind != MoveCastleKingside && m.Kind != MoveCastleQueenside && !b.squares[m.Target].IsEmpty())

	switch m.Kind {
	case MoveCastleKingside, MoveCastleQueenside:
		b.applyCastle(m.Kind, movingColor)
	case MoveEnPassant:
		target := b.EnPassant.capturePoint
		b.removePiece(b.EnPassant.pawn)
		b.removePiece(m.Origin)
		b.placePiece(Piece{Pawn, movingColor}, target)
		m.Target = target
	case MovePromotion:
		b.removePiece(m.Target)
		b.removePiece(m.Origin)
		b.placePiece(Piece{m.Promotion, movingColor}, m.Target)
	default: // MoveRegular
		b.removePiece(m.Target)
		b.removePiece(m.Origin)
		b.placePiece(Piece{m.Piece, movingColor}, m.Target)
	}

	b.updateCastlingRights(m, movingColor)

	if isPawnMove || isCapture {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	if movingColor == Black {
		b.FullMoveNumber++
	}

	b.EnPassant = epInfo{}
	if m.Kind == MoveRegular && m.Piece == Pawn && m.DoublePush {
		b.EnPassant = epInfo{
			valid:        true,
			capturePoint: Square((int(m.Origin) + int(m.Target)) / 2),
			pawn:         m.Target,
		}
	}

	b.ToMove = b.ToMove.Opponent()
	b.Moving, b.Moved = b.Moved, b.Moving

	b.refreshConstraints()
}

// applyCastle relocates the king and rook for the given castle kind and
// color; legality (rights, empty path, attacked-square safety) was already
// verified by MoveGen.
func (b *Board) applyCastle(kind MoveKind, color Color) {
	var kingFrom, kingTo, rookFrom, rookTo Square
	switch {
	case color == White && kind == MoveCastleKingside:
		kingFrom, kingTo, rookFrom, rookTo = E1, G1, H1, F1
	case color == White && kind == MoveCastleQueenside:
		kingFrom, kingTo, rookFrom, rookTo = E1, C1, A1, D1
	case color == Black && kind == MoveCastleKingside:
		kingFrom, kingTo, rookFrom, rookTo = E8, G8, H8, F8
	default: // Black, queenside
		kingFrom, kingTo, rookFrom, rookTo = E8, C8, A8, D8
	}
	b.removePiece(kingFrom)
	b.removePiece(rookFrom)
	b.placePiece(Piece{King, color}, kingTo)
	b.placePiece(Piece{Rook, color}, rookTo)
}

// updateCastlingRights revokes castling rights after castling, a king move,
// a rook move off its origin square, or a rook being captured on its origin
// square — the four ways a side can lose the right to castle.
func (b *Board) updateCastlingRights(m Move, movingColor Color) {
	moving := b.playerState(movingColor)
	switch {
	case m.Kind == MoveCastleKingside || m.Kind == MoveCastleQueenside:
		moving.CanCastleKingside = false
		moving.CanCastleQueenside = false
		return
	case m.Kind == MoveRegular && m.Piece == King:
		moving.CanCastleKingside = false
		moving.CanCastleQueenside = false
	}

	originRookRight := func(color Color, origin Square) {
		ps := b.playerState(color)
		switch {
		case color == White && origin == whiteKingsideRookOrigin,
			color == Black && origin == blackKingsideRookOrigin:
			ps.CanCastleKingside = false
		case color == White && origin == whiteQueensideRookOrigin,
			color == Black && origin == blackQueensideRookOrigin:
			ps.CanCastleQueenside = false
		}
	}
	originRookRight(movingColor, m.Origin)
	originRookRight(movingColor.Opponent(), m.Target)
}

// refreshConstraints recomputes Moved's attack set, Moving's pins, and
// Moving's check mask — the update_move_constraints pipeline: AttackGen
// first, then the sliding and non-sliding check-mask/pin passes. See
// attackgen.go and constraints.go.
func (b *Board) refreshConstraints() {
	runAttackGen(b)
	updatePinsAndCheckMask(b)
	updateNonSlidingCheckMask(b)
}

// NewBoard returns an empty board with White to move, both sides' castling
// rights cleared, and no en passant opportunity. Callers place pieces with
// PlacePiece (as the fen package does) and must call RefreshConstraints
// once the full position is assembled.
func NewBoard() Board {
	return Board{
		Moving: blankPlayerState(),
		Moved:  blankPlayerState(),
		ToMove: White,
	}
}

// PlacePiece places piece on s. It is exported for external collaborators
// (e.g. the fen package) assembling a Board from scratch; core move
// generation never calls it directly on an in-play Board.
func (b *Board) PlacePiece(piece Piece, s Square) { b.placePiece(piece, s) }

// RefreshConstraints recomputes pins, check mask, and attacks for the
// current position. External collaborators must call it once after
// placing all of a position's pieces and before generating moves.
func (b *Board) RefreshConstraints() { b.refreshConstraints() }

// SetCastlingRights sets color's castling rights directly; used by the fen
// package when assembling a Board from a FEN castling field.
func (b *Board) SetCastlingRights(color Color, kingside, queenside bool) {
	ps := b.playerState(color)
	ps.CanCastleKingside = kingside
	ps.CanCastleQueenside = queenside
}

// SetHalfMoveClock and SetFullMoveNumber let the fen package carry the FEN
// move counters straight through without exposing Board's internal layout.
func (b *Board) SetHalfMoveClock(n int)  { b.HalfMoveClock = n }
func (b *Board) SetFullMoveNumber(n int) { b.FullMoveNumber = n }

// SetEnPassantTarget records capturePoint as the current en passant
// landing square (the square behind the pawn that just double-pushed);
// used by the fen package when the FEN en passant field is not "-".
func (b *Board) SetEnPassantTarget(capturePoint Square) {
	pawnRank := capturePoint.Rank() + 1 // white just double-pushed, target on rank 3
	if capturePoint.Rank() == 5 {       // rank index 5 = FEN rank 6, black just double-pushed
		pawnRank = capturePoint.Rank() - 1
	}
	b.EnPassant = epInfo{valid: true, capturePoint: capturePoint, pawn: Square(pawnRank*8 + capturePoint.File())}
}
