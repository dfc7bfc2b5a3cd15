// constraints.go computes, each ply, the side-to-move's pins and check
// mask: the two pieces of state MoveGen consults to restrict every
// non-king move to squares that keep (or put) the king safe, without ever
// trying a move and looking for check afterwards.

package kogo

// pinAxis names which of the four Pins fields a ray direction feeds into.
type pinAxis int

const (
	axisVertical pinAxis = iota
	axisHorizontal
	axisDiagonal
	axisAntiDiagonal
)

type rayDirection struct {
	fill       func(origin, empty BitBoard) BitBoard
	orthogonal bool
	axis       pinAxis
}

var rayDirections = [8]rayDirection{
	{northFill, true, axisVertical},
	{southFill, true, axisVertical},
	{eastFill, true, axisHorizontal},
	{westFill, true, axisHorizontal},
	{northEastFill, false, axisDiagonal},
	{southWestFill, false, axisDiagonal},
	{northWestFill, false, axisAntiDiagonal},
	{southEastFill, false, axisAntiDiagonal},
}

// updatePinsAndCheckMask ray-casts from Moving's king in all eight
// directions through a board where Moving's own pieces are transparent
// (only Moved's pieces stop the ray). Each ray either:
//
//   - finds no enemy piece before the board edge: no threat.
//   - finds an enemy piece that isn't a slider matching the ray's axis
//     (rook/queen for the four orthogonal rays, bishop/queen for the four
//     diagonal rays): no threat from this ray.
//   - finds a matching slider with zero of Moving's own pieces between the
//     king and it: the king is in check along this ray.
//   - finds a matching slider with exactly one of Moving's own pieces
//     between the king and it: that piece is pinned along this axis.
//   - finds a matching slider with two or more of Moving's own pieces
//     between: the ray is blocked harmlessly, no pin or check.
//
// It also resolves the "discovered check through en passant" edge case: if
// capturing en passant would remove the only two pieces standing between
// Moving's king and a horizontal enemy rook/queen at once (the capturing
// pawn and the captured pawn, on the same rank as the king), the capture
// is dropped from this ply's en passant opportunity entirely rather than
// being encoded as an ordinary pin, since it constrains one specific move
// rather than the piece's moves in general.
//
// The sliding contribution to the check mask is stashed on b for
// updateNonSlidingCheckMask to combine with the leaper-piece contribution
// and finalize Moving.CheckMask / Moving.KingMustMove.
func updatePinsAndCheckMask(b *Board) {
	origin := b.Moving.Kings
	transparent := ^b.Moved.Occupied

	var pins Pins
	var checkMask BitBoard
	var checkCount int

	for _, d := range rayDirections {
		ray := d.fill(origin, transparent)
		enemy := ray & b.Moved.Occupied
		if enemy == 0 {
			continue
		}
		var sliders BitBoard
		if d.orthogonal {
			sliders = b.Moved.Rooks | b.Moved.Queens
		} else {
			sliders = b.Moved.Bishops | b.Moved.Queens
		}
		if enemy&sliders == 0 {
			continue
		}

		ownBlockers := (ray &^ enemy) & b.Moving.Occupied
		switch ownBlockers.Count() {
		case 0:
			checkMask |= ray
			checkCount++
		case 1:
			switch d.axis {
			case axisVertical:
				pins.Vertical |= ray
			case axisHorizontal:
				pins.Horizontal |= ray
			case axisDiagonal:
				pins.Diagonal |= ray
			default:
				pins.AntiDiagonal |= ray
			}
		}
	}
	b.Moving.Pins = pins
	b.slidingCheckMask = checkMask
	b.slidingCheckCount = checkCount

	resolveEnPassantDiscovery(b, origin, transparent)
}

// resolveEnPassantDiscovery clears b.EnPassant if performing the capture
// it describes would expose Moving's king to a horizontal check, by
// re-running the east/west rays with the en passant pawn's square also
// made transparent: a ray that passes the en passant pawn and reaches a
// rook or queen with exactly one of Moving's pieces, a pawn, left in
// between clears it (see updatePinsAndCheckMask's doc comment).
func resolveEnPassantDiscovery(b *Board, origin, transparent BitBoard) {
	if !b.EnPassant.valid {
		return
	}
	epPawn := b.EnPassant.pawn.BitBoard()
	transparent2 := transparent | epPawn
	sliders := b.Moved.Rooks | b.Moved.Queens

	for _, fill := range [2]func(BitBoard, BitBoard) BitBoard{eastFill, westFill} {
		ray := fill(origin, transparent2)
		enemy := ray & b.Moved.Occupied
		if enemy == 0 || enemy&sliders == 0 || ray&epPawn == 0 {
			continue
		}
		ownBlockers := (ray &^ enemy) & b.Moving.Occupied
		if ownBlockers.Count() == 1 && ownBlockers&b.Moving.Pawns != 0 {
			b.EnPassant = epInfo{}
			return
		}
	}
}

// updateNonSlidingCheckMask adds the knight and pawn contributions to the
// check mask computed by updatePinsAndCheckMask and finalizes
// Moving.CheckMask / Moving.KingMustMove: all ones if not in check, the
// single checking ray/square if exactly one piece checks, or the empty
// board with KingMustMove set if two or more do (a double check, which
// only a king move can resolve).
func updateNonSlidingCheckMask(b *Board) {
	checkMask := b.slidingCheckMask
	checkCount := b.slidingCheckCount

	kingSq := b.Moving.Kings.First()
	movingColor := b.ToMove

	knightCheckers := knightAttackTable[kingSq] & b.Moved.Knights
	if knightCheckers != 0 {
		checkMask |= knightCheckers
		checkCount += knightCheckers.Count()
	}

	pawnCheckers := pawnAttackTable[movingColor][kingSq] & b.Moved.Pawns
	if pawnCheckers != 0 {
		checkMask |= pawnCheckers
		checkCount += pawnCheckers.Count()
	}

	switch {
	case checkCount == 0:
		b.Moving.CheckMask = ^BitBoard(0)
		b.Moving.KingMustMove = false
	case checkCount == 1:
		b.Moving.CheckMask = checkMask
		b.Moving.KingMustMove = false
	default:
		b.Moving.CheckMask = 0
		b.Moving.KingMustMove = true
	}
}
