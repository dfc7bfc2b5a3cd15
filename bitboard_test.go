package kogo

import "testing"

func TestBitBoardFirstAndPopFirst(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb := Square(i).BitBoard()
		if got := bb.First(); got != Square(i) {
			t.Fatalf("First() on single-bit board for square %d = %d, want %d", i, got, i)
		}
		if got := bb.PopFirst(); got != Square(i) {
			t.Fatalf("PopFirst() for square %d = %d, want %d", i, got, i)
		}
		if bb != 0 {
			t.Fatalf("PopFirst did not clear the bit for square %d: %v", i, bb)
		}
	}
}

func TestBitBoardCount(t *testing.T) {
	var bb BitBoard
	for i := 0; i < 64; i++ {
		if bb.Count() != i {
			t.Fatalf("Count() = %d after placing %d bits, want %d", bb.Count(), i, i)
		}
		bb |= Square(i).BitBoard()
	}
	if bb.Count() != 64 {
		t.Fatalf("Count() of full board = %d, want 64", bb.Count())
	}
}

func TestBitBoardSingleAndEmpty(t *testing.T) {
	var bb BitBoard
	if !bb.Empty() {
		t.Fatal("zero BitBoard should be Empty")
	}
	if bb.Single() {
		t.Fatal("zero BitBoard should not be Single")
	}

	bb = E4.BitBoard()
	if bb.Empty() {
		t.Fatal("single-bit BitBoard should not be Empty")
	}
	if !bb.Single() {
		t.Fatal("single-bit BitBoard should be Single")
	}

	bb |= D4.BitBoard()
	if bb.Single() {
		t.Fatal("two-bit BitBoard should not be Single")
	}
}

func TestBitBoardWithAndWithout(t *testing.T) {
	var bb BitBoard
	bb = bb.With(A1).With(H8)
	if !bb.Has(A1) || !bb.Has(H8) {
		t.Fatalf("expected both A1 and H8 set, got %v", bb)
	}
	bb = bb.Without(A1)
	if bb.Has(A1) {
		t.Fatal("A1 should have been removed")
	}
	if !bb.Has(H8) {
		t.Fatal("H8 should remain set")
	}
}

func TestBitBoardWithoutAll(t *testing.T) {
	bb := A1.BitBoard() | B2.BitBoard() | C3.BitBoard()
	mask := B2.BitBoard() | C3.BitBoard()
	got := bb.WithoutAll(mask)
	if got != A1.BitBoard() {
		t.Fatalf("WithoutAll result = %v, want only A1", got)
	}
}

func TestBitBoardPopFirstBoard(t *testing.T) {
	bb := C3.BitBoard() | F6.BitBoard()
	first := bb.PopFirstBoard()
	if first != C3.BitBoard() {
		t.Fatalf("PopFirstBoard returned %v, want C3's bit (c3 sorts before f6)", first)
	}
	if bb != F6.BitBoard() {
		t.Fatalf("remaining board = %v, want only F6", bb)
	}
}
