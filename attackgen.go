// attackgen.go computes Moved's new attack set — the set of squares the
// side that just moved now attacks — which Board.refreshConstraints runs
// first, before the pin and check-mask passes in constraints.go (those cast
// their own rays from Moving's king and do not read this attack set).

package kogo

// runAttackGen recomputes b.Moved.Attacks (the attacks of the side that
// just moved, now the opponent of the side to move) from scratch.
//
// Moving's king is treated as transparent — removed from the occupancy
// used to compute sliding attacks — so that a king standing in a slider's
// line of fire still cannot "escape" by stepping one further square back
// along that same ray; without this, MoveGen's king-move filter (which
// simply excludes Moved.Attacks) would think such a retreat square was
// safe.
func runAttackGen(b *Board) {
	empty := ^(b.Moving.Occupied | b.Moved.Occupied) | b.Moving.Kings

	var attacks BitBoard
	attacks |= kingAttackTable[b.Moved.Kings.First()]

	// Pins do not restrict attacks: a piece pinned against its own king
	// still gives check, so Moving's king may not step onto any square it
	// covers.
	queens := b.Moved.Queens
	for queens != 0 {
		origin := queens.PopFirstBoard()
		attacks |= queenAttacks(origin, empty)
	}
	rooks := b.Moved.Rooks
	for rooks != 0 {
		origin := rooks.PopFirstBoard()
		attacks |= rookAttacks(origin, empty)
	}
	bishops := b.Moved.Bishops
	for bishops != 0 {
		origin := bishops.PopFirstBoard()
		attacks |= bishopAttacks(origin, empty)
	}

	knights := b.Moved.Knights
	for knights != 0 {
		sq := knights.PopFirst()
		attacks |= knightAttackTable[sq]
	}

	movedColor := b.ToMove.Opponent()
	pawns := b.Moved.Pawns
	for pawns != 0 {
		originBit := pawns.PopFirstBoard()
		sq := originBit.First()
		attacks |= pawnAttackTable[movedColor][sq]
	}

	b.Moved.Attacks = attacks
}
