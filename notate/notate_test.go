package notate

import (
	"strings"
	"testing"

	"kogo"
	"kogo/fen"
)

func TestBoardRendersActiveColorAndCastlingRights(t *testing.T) {
	b, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}
	out := Board(b)
	if !strings.Contains(out, "Active color: white") {
		t.Errorf("Board output missing active color line:\n%s", out)
	}
	if !strings.Contains(out, "Castling rights: KQkq") {
		t.Errorf("Board output missing castling rights line:\n%s", out)
	}
}

func TestBoardRendersNoCastlingRightsAsDash(t *testing.T) {
	b, err := fen.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}
	out := Board(b)
	if !strings.Contains(out, "Castling rights: -") {
		t.Errorf("Board output should show '-' for no rights:\n%s", out)
	}
}

func TestMoveNotation(t *testing.T) {
	testcases := []struct {
		name string
		m    kogo.Move
		want string
	}{
		{"pawn push", kogo.Move{Kind: kogo.MoveRegular, Origin: kogo.E2, Target: kogo.E4, Piece: kogo.Pawn}, "e2e4"},
		{"knight move", kogo.Move{Kind: kogo.MoveRegular, Origin: kogo.G1, Target: kogo.F3, Piece: kogo.Knight}, "Ng1f3"},
		{"en passant", kogo.Move{Kind: kogo.MoveEnPassant, Origin: kogo.D5}, "d5"},
		{"promotion", kogo.Move{Kind: kogo.MovePromotion, Origin: kogo.A7, Target: kogo.A8, Promotion: kogo.Queen}, "a7a8=Q"},
		{"castle kingside", kogo.Move{Kind: kogo.MoveCastleKingside}, "ks"},
		{"castle queenside", kogo.Move{Kind: kogo.MoveCastleQueenside}, "qs"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Move(tc.m); got != tc.want {
				t.Errorf("Move(%+v) = %q, want %q", tc.m, got, tc.want)
			}
		})
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	b, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}
	legal := kogo.NewMoveGen().Run(&b)

	got, err := ParseMove("Ng1f3", legal)
	if err != nil {
		t.Fatalf("ParseMove(Ng1f3): %v", err)
	}
	if got.Origin != kogo.G1 || got.Target != kogo.F3 {
		t.Errorf("ParseMove(Ng1f3) = %+v, want origin g1 target f3", got)
	}
}

func TestParseMoveRejectsUnknownNotation(t *testing.T) {
	b, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}
	legal := kogo.NewMoveGen().Run(&b)

	if _, err := ParseMove("z9z9", legal); err == nil {
		t.Fatal("expected an error for notation matching no legal move")
	}
}
