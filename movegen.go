// movegen.go generates the complete legal move list for a Board. Every
// move returned is already legal: destinations are filtered by
// Moving.Pins and Moving.CheckMask as they're produced, so there is no
// make-move-and-recheck step afterward.

package kogo

// MoveGen generates legal moves for a Board. It carries no state of its
// own; NewMoveGen exists as a constructor so a future move-ordering hint
// can be threaded in without changing Run's signature.
type MoveGen struct{}

// NewMoveGen returns a ready-to-use MoveGen.
func NewMoveGen() MoveGen { return MoveGen{} }

// Run returns every legal move available to the side to move in b. The
// slice is freshly allocated; callers may hold onto it past the next call
// to Run.
func (MoveGen) Run(b *Board) []Move {
	moves := make([]Move, 0, 48)

	if !b.Moving.KingMustMove {
		genPawnMoves(b, &moves)
		genEnPassant(b, &moves)
		genCastles(b, &moves)
		genKnightMoves(b, &moves)
		genBishopMoves(b, &moves)
		genRookMoves(b, &moves)
		genQueenMoves(b, &moves)
	}
	genKingMoves(b, &moves)

	return moves
}

func isPromotionRank(s Square, color Color) bool {
	if color == White {
		return s.Rank() == 7
	}
	return s.Rank() == 0
}

func isPawnHomeRank(s Square, color Color) bool {
	if color == White {
		return s.Rank() == 1
	}
	return s.Rank() == 6
}

func emitPawnMove(moves *[]Move, origin, target Square, color Color, doublePush bool) {
	if isPromotionRank(target, color) {
		for _, k := range PromotionKinds {
			*moves = append(*moves, Move{Kind: MovePromotion, Origin: origin, Target: target, Promotion: k})
		}
		return
	}
	*moves = append(*moves, Move{Kind: MoveRegular, Origin: origin, Target: target, Piece: Pawn, DoublePush: doublePush})
}

func genPawnMoves(b *Board, moves *[]Move) {
	color := b.ToMove
	empty := ^(b.Moving.Occupied | b.Moved.Occupied)
	pawns := b.Moving.Pawns

	for pawns != 0 {
		originBit := pawns.PopFirstBoard()
		origin := originBit.First()
		allowed := b.Moving.Pins.AllowedSquares(originBit) & b.Moving.CheckMask

		var single BitBoard
		if color == White {
			single = originBit << 8
		} else {
			single = originBit >> 8
		}
		single &= empty

		if single != 0 {
			if single&allowed != 0 {
				emitPawnMove(moves, origin, single.First(), color, false)
			}
			if isPawnHomeRank(origin, color) {
				var double BitBoard
				if color == White {
					double = originBit << 16
				} else {
					double = originBit >> 16
				}
				double &= empty
				if double != 0 && double&allowed != 0 {
					emitPawnMove(moves, origin, double.First(), color, true)
				}
			}
		}

		captures := pawnAttackTable[color][origin] & b.Moved.Occupied & allowed
		for captures != 0 {
			target := captures.PopFirst()
			emitPawnMove(moves, origin, target, color, false)
		}
	}
}

func genEnPassant(b *Board, moves *[]Move) {
	if !b.EnPassant.valid {
		return
	}
	color := b.ToMove
	capturePoint := b.EnPassant.capturePoint
	capturePointBit := capturePoint.BitBoard()
	checkerBit := b.EnPassant.pawn.BitBoard()

	resolvesCheck := capturePointBit&b.Moving.CheckMask != 0 || checkerBit&b.Moving.CheckMask != 0
	if !resolvesCheck {
		return
	}

	candidates := pawnAttackTable[color.Opponent()][capturePoint] & b.Moving.Pawns
	for candidates != 0 {
		originBit := candidates.PopFirstBoard()
		if capturePointBit&b.Moving.Pins.AllowedSquares(originBit) == 0 {
			continue
		}
		*moves = append(*moves, Move{Kind: MoveEnPassant, Origin: originBit.First(), Target: capturePoint})
	}
}

func genCastles(b *Board, moves *[]Move) {
	if b.Moving.CheckMask != ^BitBoard(0) {
		return // can't castle out of check
	}
	occupied := b.Moving.Occupied | b.Moved.Occupied

	var kingsideSpace, kingsidePass, queensideSpace, queensidePass BitBoard
	if b.ToMove == White {
		kingsideSpace, kingsidePass = whiteKingsideSpace, whiteKingsideKingPass
		queensideSpace, queensidePass = whiteQueensideSpace, whiteQueensideKingPass
	} else {
		kingsideSpace, kingsidePass = blackKingsideSpace, blackKingsideKingPass
		queensideSpace, queensidePass = blackQueensideSpace, blackQueensideKingPass
	}

	if b.Moving.CanCastleKingside && occupied&kingsideSpace == 0 && b.Moved.Attacks&kingsidePass == 0 {
		*moves = append(*moves, Move{Kind: MoveCastleKingside})
	}
	if b.Moving.CanCastleQueenside && occupied&queensideSpace == 0 && b.Moved.Attacks&queensidePass == 0 {
		*moves = append(*moves, Move{Kind: MoveCastleQueenside})
	}
}

func genKnightMoves(b *Board, moves *[]Move) {
	knights := b.Moving.Knights &^ b.Moving.Pins.All()
	for knights != 0 {
		origin := knights.PopFirst()
		dests := knightAttackTable[origin] &^ b.Moving.Occupied & b.Moving.CheckMask
		emitPieceMoves(moves, origin, dests, Knight)
	}
}

func genBishopMoves(b *Board, moves *[]Move) {
	empty := ^(b.Moving.Occupied | b.Moved.Occupied)
	bishops := b.Moving.Bishops
	for bishops != 0 {
		originBit := bishops.PopFirstBoard()
		origin := originBit.First()
		dests := bishopAttacks(originBit, empty) &^ b.Moving.Occupied & b.Moving.CheckMask & b.Moving.Pins.AllowedSquares(originBit)
		emitPieceMoves(moves, origin, dests, Bishop)
	}
}

func genRookMoves(b *Board, moves *[]Move) {
	empty := ^(b.Moving.Occupied | b.Moved.Occupied)
	rooks := b.Moving.Rooks
	for rooks != 0 {
		originBit := rooks.PopFirstBoard()
		origin := originBit.First()
		dests := rookAttacks(originBit, empty) &^ b.Moving.Occupied & b.Moving.CheckMask & b.Moving.Pins.AllowedSquares(originBit)
		emitPieceMoves(moves, origin, dests, Rook)
	}
}

func genQueenMoves(b *Board, moves *[]Move) {
	empty := ^(b.Moving.Occupied | b.Moved.Occupied)
	queens := b.Moving.Queens
	for queens != 0 {
		originBit := queens.PopFirstBoard()
		origin := originBit.First()
		dests := queenAttacks(originBit, empty) &^ b.Moving.Occupied & b.Moving.CheckMask & b.Moving.Pins.AllowedSquares(originBit)
		emitPieceMoves(moves, origin, dests, Queen)
	}
}

// genKingMoves generates the king's moves unconditionally, whether or not
// the side to move is in check: the check mask only constrains the OTHER
// pieces, since a king that's in check always has the option (if any
// squares qualify) to step out of it. Legality here is solely "not
// occupied by my own piece, not attacked by the opponent" — Moved.Attacks
// was computed with this king made transparent (attackgen.go), so a
// retreat square still covered by a slider through the king's old square
// is correctly excluded.
func genKingMoves(b *Board, moves *[]Move) {
	origin := b.Moving.Kings.First()
	dests := kingAttackTable[origin] &^ b.Moving.Occupied &^ b.Moved.Attacks
	emitPieceMoves(moves, origin, dests, King)
}

func emitPieceMoves(moves *[]Move, origin Square, dests BitBoard, kind PieceKind) {
	for dests != 0 {
		target := dests.PopFirst()
		*moves = append(*moves, Move{Kind: MoveRegular, Origin: origin, Target: target, Piece: kind})
	}
}
