package board

// castlePerm maps a move's origin (and the rook's home square, for
// rook-captured-or-moved detection) to the castling-rights bits that
// survive a move touching that square. ANDing the current rights with
// castlePerm[sq] for both the move's origin and destination reproduces the
// usual "moving/capturing a rook or king clears the matching rights" rule
// in one table lookup, per spec.md §9's resolution of its castling-table
// Open Question: A1->13, E1->12, H1->14, A8->7, E8->3, H8->11, else->15.
var castlePerm = buildCastlePerm()

func buildCastlePerm() [64]CastlingRights {
	var t [64]CastlingRights
	for i := range t {
		t[i] = 15
	}
	t[0] = 13  // A1: clears WhiteOOO
	t[4] = 12  // E1: clears both White rights
	t[7] = 14  // H1: clears WhiteOO
	t[56] = 7  // A8: clears BlackOOO
	t[60] = 3  // E8: clears both Black rights
	t[63] = 11 // H8: clears BlackOO
	return t
}

// MakeMove applies m to the board, updating every representation
// incrementally (bitboards, piece list, Zobrist key, castling rights,
// en-passant target, the fifty-move counter) and pushes a StateInfo onto
// the bounded history stack so UnmakeMove can undo it with no argument
// (spec.md §4.6). If m leaves the mover's own king attacked, MakeMove
// reverts it immediately and returns false; callers must not call
// UnmakeMove in that case, since nothing remains to undo. MakeMove panics
// if the history stack is exhausted (ply has reached MaxPlies). Because
// ParseFen seeds ply from the fullmove counter, a position loaded with a
// fullmove number above 1024 is already at or past that bound.
func (b *Board) MakeMove(m Move) bool {
	if b.ply >= MaxPlies {
		panic("board: MakeMove exceeds MaxPlies; unbalanced make/unmake")
	}

	st := &b.history[b.ply]
	st.move = m
	st.epSquare = b.epSquare
	st.castlingRights = b.castlingRights
	st.rule50 = b.rule50
	st.posKey = b.posKey
	st.capturedPiece = NoPiece

	us := b.sideToMove
	them := us.Opponent()
	from, to := m.From(), m.To()
	mover := b.pieces[from]
	flag := m.Flag()

	b.posKey ^= castlingKey(b.castlingRights)
	if b.epSquare != SQNone {
		b.posKey ^= enPassantKey(b.epSquare)
	}

	newEP := SQNone
	b.rule50++

	switch flag {
	case FlagEnPassant:
		capSq := Square(int(to) - pawnPushDelta(us))
		captured := b.pieces[capSq]
		st.capturedPiece = captured
		b.removePiece(captured, capSq)
		b.posKey ^= pieceKey(captured, capSq)
		b.rule50 = 0

	case FlagCastling:
		rookFrom, rookTo := castlingRookSquares(from, to)
		rook := b.pieces[rookFrom]
		b.posKey ^= pieceKey(rook, rookFrom)
		b.movePiece(rook, rookFrom, rookTo)
		b.posKey ^= pieceKey(rook, rookTo)

	default:
		if captured := b.pieces[to]; captured != NoPiece {
			st.capturedPiece = captured
			b.removePiece(captured, to)
			b.posKey ^= pieceKey(captured, to)
			b.rule50 = 0
		}
	}

	b.posKey ^= pieceKey(mover, from)
	b.removePiece(mover, from)

	placed := mover
	if flag == FlagPromotion {
		placed = MakePiece(us, m.PromotionType())
		b.rule50 = 0
	}
	b.addPiece(placed, to)
	b.posKey ^= pieceKey(placed, to)

	if mover.Type() == Pawn {
		b.rule50 = 0
		if flag == FlagNormal && abs(int(to)-int(from)) == 16 {
			newEP = Square((int(from) + int(to)) / 2)
		}
	}

	b.castlingRights &= castlePerm[from] & castlePerm[to]
	b.posKey ^= castlingKey(b.castlingRights)

	b.epSquare = newEP
	if b.epSquare != SQNone {
		b.posKey ^= enPassantKey(b.epSquare)
	}

	b.sideToMove = them
	b.posKey ^= sideToMoveKey()

	b.ply++

	if IsSquareAttacked(b, b.kingSquare[us], them) {
		b.UnmakeMove()
		return false
	}
	return true
}

// UnmakeMove reverts the most recent MakeMove. It must only be called when
// the matching MakeMove returned true.
func (b *Board) UnmakeMove() {
	b.ply--
	st := &b.history[b.ply]
	m := st.move

	them := b.sideToMove
	us := them.Opponent()
	b.sideToMove = us

	from, to := m.From(), m.To()
	flag := m.Flag()

	placed := b.pieces[to]
	b.removePiece(placed, to)

	mover := placed
	if flag == FlagPromotion {
		mover = MakePiece(us, Pawn)
	}
	b.addPiece(mover, from)

	switch flag {
	case FlagEnPassant:
		capSq := Square(int(to) - pawnPushDelta(us))
		b.addPiece(st.capturedPiece, capSq)

	case FlagCastling:
		rookFrom, rookTo := castlingRookSquares(from, to)
		rook := b.pieces[rookTo]
		b.movePiece(rook, rookTo, rookFrom)

	default:
		if st.capturedPiece != NoPiece {
			b.addPiece(st.capturedPiece, to)
		}
	}

	b.epSquare = st.epSquare
	b.castlingRights = st.castlingRights
	b.rule50 = st.rule50
	b.posKey = st.posKey
}

// pawnPushDelta returns the single-step forward offset for a color's pawns.
func pawnPushDelta(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

// castlingRookSquares returns the rook's origin and destination for a
// castling move given the king's origin and destination.
func castlingRookSquares(kingFrom, kingTo Square) (from, to Square) {
	switch kingTo {
	case 6:
		return 7, 5
	case 2:
		return 0, 3
	case 62:
		return 63, 61
	case 58:
		return 56, 59
	}
	return kingFrom, kingTo
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
