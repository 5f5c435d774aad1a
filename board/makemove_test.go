package board

import "testing"

// assertRoundTrip applies m, checks Validate and the position key change,
// then unmakes it and checks the board is bit-for-bit back where it
// started (via FEN, the cheapest full-state comparison available).
func assertRoundTrip(t *testing.T, fen string, m Move) {
	t.Helper()
	b := ParseFen(fen)
	before := b.ToFEN()
	beforeKey := b.PosKey()

	ok := b.MakeMove(m)
	if !ok {
		t.Fatalf("MakeMove(%v) on %q rejected as illegal, want legal", m, fen)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() after MakeMove(%v): %v", m, err)
	}
	if b.PosKey() == beforeKey {
		t.Fatalf("PosKey() unchanged after MakeMove(%v)", m)
	}

	b.UnmakeMove()
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() after UnmakeMove: %v", err)
	}
	if got := b.ToFEN(); got != before {
		t.Fatalf("UnmakeMove left board at %q, want %q", got, before)
	}
	if b.PosKey() != beforeKey {
		t.Fatalf("PosKey() after UnmakeMove = %#x, want %#x", b.PosKey(), beforeKey)
	}
}

func TestMakeUnmakeNormalMove(t *testing.T) {
	assertRoundTrip(t, StartFEN, NewMove(NewSquare(4, 1), NewSquare(4, 3), NoPieceType, FlagNormal))
}

func TestMakeUnmakeCapture(t *testing.T) {
	fen := "rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2"
	assertRoundTrip(t, fen, NewMove(NewSquare(3, 3), NewSquare(4, 4), NoPieceType, FlagNormal))
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	m := NewMove(NewSquare(4, 4), NewSquare(3, 5), NoPieceType, FlagEnPassant)
	b := ParseFen(fen)
	if !b.MakeMove(m) {
		t.Fatalf("en passant capture rejected as illegal")
	}
	if got := b.PieceOn(NewSquare(3, 4)); got != NoPiece {
		t.Fatalf("captured pawn square d5 still occupied: %v", got)
	}
	b.UnmakeMove()
	if got := b.PieceOn(NewSquare(3, 4)); got != BlackPawn {
		t.Fatalf("unmake did not restore captured pawn on d5, got %v", got)
	}
	assertRoundTrip(t, fen, m)
}

func TestMakeUnmakeCastlingKingside(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	m := NewMove(NewSquare(4, 0), NewSquare(6, 0), NoPieceType, FlagCastling)
	b := ParseFen(fen)
	if !b.MakeMove(m) {
		t.Fatalf("kingside castle rejected as illegal")
	}
	if got := b.PieceOn(NewSquare(5, 0)); got != WhiteRook {
		t.Fatalf("rook not on f1 after castling, got %v", got)
	}
	if got := b.PieceOn(NewSquare(7, 0)); got != NoPiece {
		t.Fatalf("h1 still occupied after castling")
	}
	b.UnmakeMove()
	assertRoundTrip(t, fen, m)
}

func TestMakeUnmakePromotion(t *testing.T) {
	fen := "8/P6k/8/8/8/8/7K/8 w - - 0 1"
	m := NewMove(NewSquare(0, 6), NewSquare(0, 7), Queen, FlagPromotion)
	b := ParseFen(fen)
	if !b.MakeMove(m) {
		t.Fatalf("promotion rejected as illegal")
	}
	if got := b.PieceOn(NewSquare(0, 7)); got != WhiteQueen {
		t.Fatalf("a8 = %v, want WhiteQueen", got)
	}
	b.UnmakeMove()
	if got := b.PieceOn(NewSquare(0, 6)); got != WhitePawn {
		t.Fatalf("a7 = %v after unmake, want WhitePawn", got)
	}
	assertRoundTrip(t, fen, m)
}

func TestMakeMoveRejectsMoveIntoCheck(t *testing.T) {
	// White king on e1, white knight pinned on e2 by a black rook on e8:
	// moving the knight off the e-file must be rejected.
	fen := "4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1"
	b := ParseFen(fen)
	before := b.ToFEN()

	m := NewMove(NewSquare(4, 1), NewSquare(5, 3), NoPieceType, FlagNormal)
	if b.MakeMove(m) {
		t.Fatalf("pinned knight move accepted as legal")
	}
	if got := b.ToFEN(); got != before {
		t.Fatalf("board mutated after rejected MakeMove: %q != %q", got, before)
	}
}

func TestGenerateLegalMovesStartposCount(t *testing.T) {
	b := ParseFen(StartFEN)
	var list MoveList
	GenerateLegalMoves(b, &list)
	if list.Count != 20 {
		t.Fatalf("legal moves from startpos = %d, want 20", list.Count)
	}
}
