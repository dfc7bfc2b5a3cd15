package kogo_test

import (
	"testing"

	"kogo"
	"kogo/fen"
)

const initialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// perft walks the legal-move tree to depth plies and counts leaf positions,
// the standard move-generator correctness benchmark. See
// https://www.chessprogramming.org/Perft_Results
func perft(b kogo.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		child := b
		child.MakeMove(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}

func mustParse(t *testing.T, fenStr string) kogo.Board {
	t.Helper()
	b, err := fen.Parse(fenStr)
	if err != nil {
		t.Fatalf("parsing %q: %v", fenStr, err)
	}
	return b
}

func TestPerftInitialPosition(t *testing.T) {
	b := mustParse(t, initialPositionFEN)

	testcases := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tc := range testcases {
		if got := perft(b, tc.depth); got != tc.nodes {
			t.Errorf("perft(initial, %d) = %d, want %d", tc.depth, got, tc.nodes)
		}
	}
}

// TestPerftInitialPositionDeep reruns the initial position at depths 6 and 7
// against the Shannon-number values. Skipped under -short since depth 7
// visits billions of nodes.
func TestPerftInitialPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	b := mustParse(t, initialPositionFEN)

	if got := perft(b, 6); got != 119060324 {
		t.Errorf("perft(initial, 6) = %d, want 119060324", got)
	}
	if got := perft(b, 7); got != 3195901860 {
		t.Errorf("perft(initial, 7) = %d, want 3195901860", got)
	}
}

// TestPerftPosition3 exercises the endgame king/rook/pawn position commonly
// labelled "position 3" in the chessprogramming wiki's perft results page —
// heavy on discovered checks and en passant edge cases.
func TestPerftPosition3(t *testing.T) {
	b := mustParse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 0")

	if got := perft(b, 3); got != 2812 {
		t.Errorf("perft(position3, 3) = %d, want 2812", got)
	}

	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	if got := perft(b, 6); got != 11030083 {
		t.Errorf("perft(position3, 6) = %d, want 11030083", got)
	}
}

// TestPerftPromotionPosition exercises a position with a pending promotion
// on d7 and castling rights for White only (Black has none).
func TestPerftPromotionPosition(t *testing.T) {
	b := mustParse(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")

	if got := perft(b, 3); got != 62379 {
		t.Errorf("perft(promotion, 3) = %d, want 62379", got)
	}
}

func TestGenKingMovesExcludesAttackedSquares(t *testing.T) {
	// White king on e1, black rook on e8 gives check along the whole
	// e-file: the king must not be able to step to e2, but may step
	// sideways. The black king on a8 plays no part.
	b := mustParse(t, "k3r3/8/8/8/8/8/8/4K3 w - - 0 1")

	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	for _, m := range moves {
		if m.Target == kogo.E2 {
			t.Fatalf("king move to e2 should be illegal (rook on e8 covers the file), got it in %v", moves)
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king on e8, attacked simultaneously by a white rook on e1 (file)
	// and a white bishop on h5 (diagonal) — double check, only king moves.
	// The white king on a1 plays no part.
	b := mustParse(t, "4k3/8/8/7B/8/8/8/K3R3 b - - 0 1")

	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	for _, m := range moves {
		if m.Kind == kogo.MoveRegular && m.Piece != kogo.King {
			t.Fatalf("double check must forbid non-king moves, got %v", m)
		}
	}
	if !b.Moving.KingMustMove {
		t.Fatal("expected KingMustMove set under double check")
	}
}

func TestPinnedKnightCannotMove(t *testing.T) {
	// White king e1, white knight e4 pinned by black rook on e8; black
	// king on a8.
	b := mustParse(t, "k3r3/8/8/8/4N3/8/8/4K3 w - - 0 1")

	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	for _, m := range moves {
		if m.Piece == kogo.Knight {
			t.Fatalf("pinned knight has no legal moves, got %v", m)
		}
	}
}

func TestEnPassantCaptureIsOffered(t *testing.T) {
	// White pawn on d5, black pawn just double-pushed e7-e5, landing
	// adjacent and capturable en passant; neither king is in check. This
	// test only confirms the capture is offered, not a check-resolution
	// scenario (see TestEnPassantDiscoveredCheckIsDropped).
	b := mustParse(t, "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1")

	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	found := false
	for _, m := range moves {
		if m.Kind == kogo.MoveEnPassant {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an en passant capture to be offered, got %v", moves)
	}
}

func TestEnPassantDiscoveredCheckIsDropped(t *testing.T) {
	// White king and pawn both on rank 5 with a black rook at the far end:
	// capturing en passant would remove both the white pawn (d5) and the
	// black pawn (e5) from the rank, exposing the king on a5 to the rook on
	// h5. The capture must not appear in the legal move list.
	b := mustParse(t, "8/8/8/K2Pp2r/8/8/8/4k3 w - e6 0 1")

	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	for _, m := range moves {
		if m.Kind == kogo.MoveEnPassant {
			t.Fatalf("en passant capture exposing the king to a discovered check must be dropped, got %v", m)
		}
	}
}

func TestCastlingBlockedByAttackedPassSquare(t *testing.T) {
	// White king e1, rook h1, kingside right intact, but black rook on f7
	// covers f1 — the kingside king-pass square — so castling is illegal.
	b := mustParse(t, "4k3/5r2/8/8/8/8/8/4K2R w K - 0 1")

	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	for _, m := range moves {
		if m.Kind == kogo.MoveCastleKingside {
			t.Fatal("castling through an attacked square must be illegal")
		}
	}
}
