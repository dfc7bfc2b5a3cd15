// Package notate renders kogo positions and moves as human-readable text:
// a unicode board diagram for terminals and test failure output, and the
// piece-letter move notation described in the core's external interface.
//
// Board reads pieces from kogo.Board's square map and castling rights from
// its Moving/Moved PlayerState pair, which swap by ply rather than staying
// indexed by absolute color. ANSI coloring of pins/attacks/check squares belongs to an
// interactive renderer, not this library, and is left out.
package notate

import (
	"fmt"
	"strings"

	"kogo"
)

var pieceSymbols = map[kogo.Piece]rune{
	kogo.WhitePawn: '♙', kogo.WhiteKnight: '♘', kogo.WhiteBishop: '♗',
	kogo.WhiteRook: '♖', kogo.WhiteQueen: '♕', kogo.WhiteKing: '♔',
	kogo.BlackPawn: '♟', kogo.BlackKnight: '♞', kogo.BlackBishop: '♝',
	kogo.BlackRook: '♜', kogo.BlackQueen: '♛', kogo.BlackKing: '♚',
}

// Board renders b as an 8x8 unicode diagram with rank 8 on top, followed by
// the side to move and castling rights. The en passant target is not shown.
func Board(b kogo.Board) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(kogo.Square(rank*8 + file))
			symbol := '.'
			if !piece.IsEmpty() {
				symbol = pieceSymbols[piece]
			}
			sb.WriteRune(symbol)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	if b.ToMove == kogo.White {
		sb.WriteString("Active color: white\n")
	} else {
		sb.WriteString("Active color: black\n")
	}

	sb.WriteString("Castling rights: ")
	sb.WriteString(castlingRightsString(b))
	sb.WriteByte('\n')

	return sb.String()
}

func castlingRightsString(b kogo.Board) string {
	white, black := b.Moving, b.Moved
	if b.ToMove == kogo.Black {
		white, black = black, white
	}
	var sb strings.Builder
	if white.CanCastleKingside {
		sb.WriteByte('K')
	}
	if white.CanCastleQueenside {
		sb.WriteByte('Q')
	}
	if black.CanCastleKingside {
		sb.WriteByte('k')
	}
	if black.CanCastleQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// BitBoard renders a single bitboard's members as the given piece's
// symbol, and every other square as '.'. Used in test failure messages to
// show which squares a computation produced vs. expected.
func BitBoard(bb kogo.BitBoard, piece kogo.Piece) string {
	var sb strings.Builder
	symbol := pieceSymbols[piece]

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			s := kogo.Square(rank*8 + file)
			r := '.'
			if bb.Has(s) {
				r = symbol
			}
			sb.WriteRune(r)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// Move renders m in the core's external move notation: piece letter (pawn
// moves omit it) + origin + target, "=" + piece letter for promotions, a
// bare origin square for en passant, and "ks"/"qs" for castling.
func Move(m kogo.Move) string {
	switch m.Kind {
	case kogo.MoveCastleKingside:
		return "ks"
	case kogo.MoveCastleQueenside:
		return "qs"
	case kogo.MoveEnPassant:
		return m.Origin.String()
	case kogo.MovePromotion:
		return m.Origin.String() + m.Target.String() + "=" + string(m.Promotion.Letter())
	default:
		if m.Piece == kogo.Pawn {
			return m.Origin.String() + m.Target.String()
		}
		return string(m.Piece.Letter()) + m.Origin.String() + m.Target.String()
	}
}

// ParseMove looks up the legal move in legal whose notation (per Move)
// matches s, returning an error naming the attempted notation if none
// matches. Used by a REPL or test harness to turn typed input back into a
// kogo.Move without re-implementing move legality itself.
func ParseMove(s string, legal []kogo.Move) (kogo.Move, error) {
	for _, m := range legal {
		if Move(m) == s {
			return m, nil
		}
	}
	return kogo.Move{}, fmt.Errorf("notate: %q does not match any legal move", s)
}

// Explain describes, for diagnostic output, the ray direction from the side
// to move's king to each of its currently pinned pieces, one line each —
// e.g. a rook on e4 pinned along the e-file to a king on e1 shows as
// "Re4 pinned vertical (N from king)". Squares not present in any pin mask
// are omitted.
func Explain(b kogo.Board) string {
	king := b.Moving.Kings.First()
	var sb strings.Builder

	for sq := kogo.A1; sq <= kogo.H8; sq++ {
		bit := sq.BitBoard()
		var axis string
		switch {
		case b.Moving.Pins.Horizontal&bit != 0:
			axis = "horizontal"
		case b.Moving.Pins.Vertical&bit != 0:
			axis = "vertical"
		case b.Moving.Pins.Diagonal&bit != 0:
			axis = "diagonal"
		case b.Moving.Pins.AntiDiagonal&bit != 0:
			axis = "anti-diagonal"
		default:
			continue
		}
		if sq == king {
			continue
		}
		piece := b.PieceAt(sq)
		if piece.IsEmpty() {
			continue
		}
		dir := king.DirectionTo(sq)
		fmt.Fprintf(&sb, "%c%s pinned %s (%s from king)\n", piece.Kind.Letter(), sq, axis, directionName(dir))
	}
	if sb.Len() == 0 {
		return "no pins\n"
	}
	return sb.String()
}

func directionName(d kogo.Direction) string {
	switch d {
	case kogo.North:
		return "N"
	case kogo.South:
		return "S"
	case kogo.East:
		return "E"
	case kogo.West:
		return "W"
	case kogo.NorthEast:
		return "NE"
	case kogo.NorthWest:
		return "NW"
	case kogo.SouthEast:
		return "SE"
	case kogo.SouthWest:
		return "SW"
	default:
		return "?"
	}
}
