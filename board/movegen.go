package board

const (
	rank1 uint64 = 0x00000000000000FF
	rank2 uint64 = rank1 << 8
	rank4 uint64 = rank1 << 24
	rank5 uint64 = rank1 << 32
	rank7 uint64 = rank1 << 48
	rank8 uint64 = rank1 << 56
)

// GeneratePseudoMoves fills list with every pseudo-legal move in b's current
// position (spec.md §4.4): moves that obey piece-movement rules but may
// leave the mover's own king in check. Castling moves additionally respect
// the "not currently in check" and "does not pass through an attacked
// square" rules here, since both checks are as cheap to make during
// generation as after; the final "king not left in check" legality test
// still runs via IsSquareAttacked after MakeMove for every move kind.
func GeneratePseudoMoves(b *Board, list *MoveList) {
	us := b.sideToMove
	them := us.Opponent()
	occ := b.Occupied()
	ownBB := b.byColorBB[us]
	enemyBB := b.byColorBB[them]

	generatePawnMoves(b, list, us, occ, enemyBB)
	generateStepperMoves(b, list, us, Knight, ownBB, func(sq Square) uint64 { return KnightAttacks(sq) })
	generateSliderMoves(b, list, us, Bishop, ownBB, occ, func(sq Square, o uint64) uint64 { return BishopAttacks(sq, o) })
	generateSliderMoves(b, list, us, Rook, ownBB, occ, func(sq Square, o uint64) uint64 { return RookAttacks(sq, o) })
	generateSliderMoves(b, list, us, Queen, ownBB, occ, func(sq Square, o uint64) uint64 { return QueenAttacks(sq, o) })
	generateStepperMoves(b, list, us, King, ownBB, func(sq Square) uint64 { return KingAttacks(sq) })
	generateCastlingMoves(b, list, us, occ)
}

func generateStepperMoves(b *Board, list *MoveList, us Color, pt PieceType, ownBB uint64, attacksFrom func(Square) uint64) {
	bb := b.pieceBB[us][pt]
	for bb != 0 {
		from := popLSB(&bb)
		targets := attacksFrom(from) &^ ownBB
		for targets != 0 {
			to := popLSB(&targets)
			list.add(NewMove(from, to, NoPieceType, FlagNormal))
		}
	}
}

func generateSliderMoves(b *Board, list *MoveList, us Color, pt PieceType, ownBB, occ uint64, attacksFrom func(Square, uint64) uint64) {
	bb := b.pieceBB[us][pt]
	for bb != 0 {
		from := popLSB(&bb)
		targets := attacksFrom(from, occ) &^ ownBB
		for targets != 0 {
			to := popLSB(&targets)
			list.add(NewMove(from, to, NoPieceType, FlagNormal))
		}
	}
}

var promoTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func generatePawnMoves(b *Board, list *MoveList, us Color, occ, enemyBB uint64) {
	pawns := b.pieceBB[us][Pawn]
	forward := 8
	startRank := rank2
	promoRank := rank8
	if us == Black {
		forward = -8
		startRank = rank7
		promoRank = rank1
	}

	bb := pawns
	for bb != 0 {
		from := popLSB(&bb)
		to := Square(int(from) + forward)

		if to >= 0 && to < 64 && occ&sqBB(to) == 0 {
			addPawnMove(list, from, to, promoRank)

			if sqBB(from)&startRank != 0 {
				to2 := Square(int(from) + 2*forward)
				if occ&sqBB(to2) == 0 {
					list.add(NewMove(from, to2, NoPieceType, FlagNormal))
				}
			}
		}

		captures := PawnAttacks(us, from) & enemyBB
		for captures != 0 {
			capSq := popLSB(&captures)
			addPawnMove(list, from, capSq, promoRank)
		}

		if b.epSquare != SQNone && PawnAttacks(us, from)&sqBB(b.epSquare) != 0 {
			list.add(NewMove(from, b.epSquare, NoPieceType, FlagEnPassant))
		}
	}
}

func addPawnMove(list *MoveList, from, to Square, promoRank uint64) {
	if sqBB(to)&promoRank != 0 {
		for _, pt := range promoTypes {
			list.add(NewMove(from, to, pt, FlagPromotion))
		}
		return
	}
	list.add(NewMove(from, to, NoPieceType, FlagNormal))
}

func generateCastlingMoves(b *Board, list *MoveList, us Color, occ uint64) {
	them := us.Opponent()
	if IsSquareAttacked(b, b.kingSquare[us], them) {
		return
	}

	if us == White {
		if b.castlingRights&WhiteOO != 0 && occ&((sqBB(5))|sqBB(6)) == 0 &&
			!IsSquareAttacked(b, 5, them) && !IsSquareAttacked(b, 6, them) {
			list.add(NewMove(4, 6, NoPieceType, FlagCastling))
		}
		if b.castlingRights&WhiteOOO != 0 && occ&(sqBB(1)|sqBB(2)|sqBB(3)) == 0 &&
			!IsSquareAttacked(b, 3, them) && !IsSquareAttacked(b, 2, them) {
			list.add(NewMove(4, 2, NoPieceType, FlagCastling))
		}
	} else {
		if b.castlingRights&BlackOO != 0 && occ&(sqBB(61)|sqBB(62)) == 0 &&
			!IsSquareAttacked(b, 61, them) && !IsSquareAttacked(b, 62, them) {
			list.add(NewMove(60, 62, NoPieceType, FlagCastling))
		}
		if b.castlingRights&BlackOOO != 0 && occ&(sqBB(57)|sqBB(58)|sqBB(59)) == 0 &&
			!IsSquareAttacked(b, 59, them) && !IsSquareAttacked(b, 58, them) {
			list.add(NewMove(60, 58, NoPieceType, FlagCastling))
		}
	}
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by,
// on b's current occupancy (spec.md §4.5). Checked cheapest-first: pawns
// and knights are table lookups, then kings, then sliders last since they
// require a magic-table probe.
func IsSquareAttacked(b *Board, sq Square, by Color) bool {
	occ := b.Occupied()

	if PawnAttacks(by.Opponent(), sq)&b.pieceBB[by][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&b.pieceBB[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&b.pieceBB[by][King] != 0 {
		return true
	}
	bishopsQueens := b.pieceBB[by][Bishop] | b.pieceBB[by][Queen]
	if bishopsQueens != 0 && BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.pieceBB[by][Rook] | b.pieceBB[by][Queen]
	if rooksQueens != 0 && RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (b *Board) InCheck() bool {
	return IsSquareAttacked(b, b.kingSquare[b.sideToMove], b.sideToMove.Opponent())
}

// GenerateLegalMoves fills list with every legal move: each pseudo-legal
// move is speculatively applied via MakeMove, which itself rejects (and
// auto-reverts) any move leaving the mover's own king attacked (spec.md
// §4.4's filtering step, §4.6's make/unmake contract). Every move MakeMove
// accepts is immediately unmade so the board is never left mutated by this
// call.
func GenerateLegalMoves(b *Board, list *MoveList) {
	var pseudo MoveList
	GeneratePseudoMoves(b, &pseudo)
	for _, m := range pseudo.Slice() {
		if !b.MakeMove(m) {
			continue
		}
		list.add(m)
		b.UnmakeMove()
	}
}
