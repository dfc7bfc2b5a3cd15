// Package fen implements conversions between Forsyth-Edwards Notation
// strings and kogo.Board values.
//
// Every malformed field returns a *ParseError naming the offending field
// rather than panicking, since a FEN string may come from a file or network
// peer rather than a trusted caller.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"kogo"
)

// ParseError reports which of a FEN string's six space-separated fields
// failed to parse and why.
type ParseError struct {
	Field string
	Msg   string
}

func (e *ParseError) Error() string { return fmt.Sprintf("fen: %s: %s", e.Field, e.Msg) }

func errf(field, format string, args ...any) error {
	return &ParseError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

var pieceLetters = map[byte]kogo.Piece{
	'P': kogo.WhitePawn, 'N': kogo.WhiteKnight, 'B': kogo.WhiteBishop,
	'R': kogo.WhiteRook, 'Q': kogo.WhiteQueen, 'K': kogo.WhiteKing,
	'p': kogo.BlackPawn, 'n': kogo.BlackKnight, 'b': kogo.BlackBishop,
	'r': kogo.BlackRook, 'q': kogo.BlackQueen, 'k': kogo.BlackKing,
}

// Parse parses a 6-field FEN string into a Board with its move-generation
// constraints (pins, check mask, attacks) already refreshed, ready for
// MoveGen.Run.
func Parse(s string) (kogo.Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return kogo.Board{}, errf("format", "expected 6 space-separated fields, got %d", len(fields))
	}

	board := kogo.NewBoard()

	// Active color must be assigned before piece placement: placePiece
	// resolves which PlayerState (Moving vs Moved) a piece belongs to by
	// consulting board.ToMove, and NewBoard defaults it to White.
	var toMove kogo.Color
	switch fields[1] {
	case "w":
		toMove = kogo.White
	case "b":
		toMove = kogo.Black
	default:
		return kogo.Board{}, errf("active color", "must be \"w\" or \"b\", got %q", fields[1])
	}
	board.ToMove = toMove

	if err := parsePlacement(&board, fields[0]); err != nil {
		return kogo.Board{}, err
	}

	if err := parseCastling(&board, fields[2]); err != nil {
		return kogo.Board{}, err
	}

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return kogo.Board{}, errf("en passant target", "%s", err)
		}
		if sq.Rank() != 2 && sq.Rank() != 5 {
			return kogo.Board{}, errf("en passant target", "must be on rank 3 or 6, got %q", fields[3])
		}
		board.SetEnPassantTarget(sq)
	}

	halfMoves, err := strconv.Atoi(fields[4])
	if err != nil {
		return kogo.Board{}, errf("halfmove clock", "not a number: %q", fields[4])
	}
	board.SetHalfMoveClock(halfMoves)

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return kogo.Board{}, errf("fullmove number", "not a number: %q", fields[5])
	}
	board.SetFullMoveNumber(fullMoves)

	board.RefreshConstraints()
	return board, nil
}

func parsePlacement(board *kogo.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return errf("piece placement", "expected 8 ranks, got %d", len(rows))
	}

	for rankFromTop, row := range rows {
		rank := 7 - rankFromTop
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceLetters[c]
			if !ok {
				return errf("piece placement", "invalid character %q", c)
			}
			if file > 7 {
				return errf("piece placement", "rank %d overflows 8 files", rank+1)
			}
			board.PlacePiece(piece, kogo.Square(rank*8+file))
			file++
		}
		if file != 8 {
			return errf("piece placement", "rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func parseCastling(board *kogo.Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		if !strings.ContainsRune("KQkq", rune(field[i])) {
			return errf("castling rights", "invalid castling field %q", field)
		}
	}
	whiteKS, whiteQS := strings.Contains(field, "K"), strings.Contains(field, "Q")
	blackKS, blackQS := strings.Contains(field, "k"), strings.Contains(field, "q")
	if !whiteKS && !whiteQS && !blackKS && !blackQS {
		return errf("castling rights", "invalid castling field %q", field)
	}
	board.SetCastlingRights(kogo.White, whiteKS, whiteQS)
	board.SetCastlingRights(kogo.Black, blackKS, blackQS)
	return nil
}

func parseSquare(s string) (kogo.Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("must be two characters, got %q", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("file must be a-h, got %q", s)
	}
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("rank must be 1-8, got %q", s)
	}
	return kogo.Square(int(rank-'1')*8 + int(file-'a')), nil
}

var pieceKindLetters = map[kogo.PieceKind]byte{
	kogo.Pawn: 'P', kogo.Knight: 'N', kogo.Bishop: 'B',
	kogo.Rook: 'R', kogo.Queen: 'Q', kogo.King: 'K',
}

// Serialize renders b as a 6-field FEN string.
func Serialize(b kogo.Board) string {
	var sb strings.Builder
	sb.Grow(64)

	sb.WriteString(serializePlacement(b))
	sb.WriteByte(' ')

	white, black := b.Moving, b.Moved
	if b.ToMove == kogo.Black {
		white, black = black, white
		sb.WriteString("b ")
	} else {
		sb.WriteString("w ")
	}

	rights := 0
	if white.CanCastleKingside {
		sb.WriteByte('K')
		rights++
	}
	if white.CanCastleQueenside {
		sb.WriteByte('Q')
		rights++
	}
	if black.CanCastleKingside {
		sb.WriteByte('k')
		rights++
	}
	if black.CanCastleQueenside {
		sb.WriteByte('q')
		rights++
	}
	if rights == 0 {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	if b.EnPassant.Valid() {
		sb.WriteString(b.EnPassant.CapturePoint().String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoveNumber))

	return sb.String()
}

func serializePlacement(b kogo.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(kogo.Square(rank*8 + file))
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			letter := pieceKindLetters[piece.Kind]
			if piece.Color == kogo.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
