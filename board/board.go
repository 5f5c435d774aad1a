package board

import (
	"fmt"
	"math/bits"
)

// MaxPlies bounds the reversible make/unmake history (spec.md §3). The
// history is indexed by game ply (see Board.Ply), so the bound covers the
// ply seeded from a FEN's fullmove counter plus every move made since; it
// comfortably covers both a perft recursion and a UCI
// "position startpos moves ..." replay.
const MaxPlies = 2048

// StateInfo is one bounded-history entry: everything MakeMove cannot cheaply
// recompute on UnmakeMove, including the move itself so UnmakeMove takes no
// argument (spec.md §3 "optionally also the applied move").
type StateInfo struct {
	move            Move
	capturedPiece   Piece
	epSquare        Square
	castlingRights  CastlingRights
	rule50          int
	posKey          uint64
}

// Board is a complete, mutable chess position.
type Board struct {
	pieces      [64]Piece
	byColorBB   [2]uint64
	pieceBB     [2][7]uint64 // [color][PieceType], index 0 unused
	pieceList   [16][10]Square
	pieceNb     [16]int
	kingSquare  [2]Square
	sideToMove  Color
	castlingRights CastlingRights
	epSquare    Square
	rule50      int
	ply         int
	posKey      uint64
	history     [MaxPlies]StateInfo
}

// NewEmpty returns a Board with no pieces placed, side to move White, no
// castling rights, no en-passant target. Callers typically populate it via
// ParseFen rather than directly.
func NewEmpty() *Board {
	b := &Board{}
	for sq := range b.pieces {
		b.pieces[sq] = NoPiece
	}
	b.epSquare = SQNone
	b.kingSquare[White] = SQNone
	b.kingSquare[Black] = SQNone
	return b
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the current castling-rights mask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassant returns the current en-passant target square, or SQNone.
func (b *Board) EnPassant() Square { return b.epSquare }

// Rule50 returns the halfmove clock used for the fifty-move rule.
func (b *Board) Rule50() int { return b.rule50 }

// Ply returns the game ply: ParseFen seeds it from the FEN fullmove counter
// and side to move, and each MakeMove adds one. It is also the board's
// current index into the bounded history stack.
func (b *Board) Ply() int { return b.ply }

// PosKey returns the incrementally maintained Zobrist hash of the position.
func (b *Board) PosKey() uint64 { return b.posKey }

// PieceOn returns the piece occupying sq, or NoPiece.
func (b *Board) PieceOn(sq Square) Piece { return b.pieces[sq] }

// KingSquare returns the square of the given color's king.
func (b *Board) KingSquare(c Color) Square { return b.kingSquare[c] }

// Occupied returns the full-board occupancy bitboard.
func (b *Board) Occupied() uint64 { return b.byColorBB[White] | b.byColorBB[Black] }

// ColorBB returns the occupancy bitboard for one color.
func (b *Board) ColorBB(c Color) uint64 { return b.byColorBB[c] }

// PieceTypeBB returns the bitboard of a given color+type combination.
func (b *Board) PieceTypeBB(c Color, pt PieceType) uint64 { return b.pieceBB[c][pt] }

// addPiece places p on sq, maintaining every redundant representation
// (pieces array, bitboards, piece list) in lockstep.
func (b *Board) addPiece(p Piece, sq Square) {
	c, pt := p.Color(), p.Type()
	b.pieces[sq] = p
	bb := sqBB(sq)
	b.byColorBB[c] |= bb
	b.pieceBB[c][pt] |= bb

	b.pieceList[p][b.pieceNb[p]] = sq
	b.pieceNb[p]++

	if pt == King {
		b.kingSquare[c] = sq
	}
}

// removePiece clears sq (which must hold p), maintaining every
// representation in lockstep, including compacting the piece list by
// swapping the removed square with the list's last entry.
func (b *Board) removePiece(p Piece, sq Square) {
	c, pt := p.Color(), p.Type()
	b.pieces[sq] = NoPiece
	bb := ^sqBB(sq)
	b.byColorBB[c] &= bb
	b.pieceBB[c][pt] &= bb

	list := &b.pieceList[p]
	n := b.pieceNb[p]
	for i := 0; i < n; i++ {
		if list[i] == sq {
			list[i] = list[n-1]
			break
		}
	}
	b.pieceNb[p]--
}

// movePiece relocates p from "from" to "to", which must be empty; it is a
// thin composition of removePiece/addPiece kept separate for call-site
// clarity in MakeMove.
func (b *Board) movePiece(p Piece, from, to Square) {
	b.removePiece(p, from)
	b.addPiece(p, to)
}

// Validate cross-checks the board's redundant representations and returns
// an error describing the first inconsistency found, or nil. It never
// mutates the board; callers (tests, primarily) invoke it after every
// mutation to catch representation drift immediately rather than at some
// later, harder-to-diagnose point.
func (b *Board) Validate() error {
	var fromBB [64]Piece
	for sq := range fromBB {
		fromBB[sq] = NoPiece
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := b.pieceBB[c][pt]
			for bb != 0 {
				sq := popLSB(&bb)
				p := MakePiece(c, pt)
				if b.pieces[sq] != p {
					return fmt.Errorf("board: square %d has %v in pieces array but %v in bitboard", sq, b.pieces[sq], p)
				}
				fromBB[sq] = p
			}
		}
	}
	for sq := Square(0); sq < 64; sq++ {
		if b.pieces[sq] != fromBB[sq] {
			return fmt.Errorf("board: square %d has %v in pieces array with no matching bitboard entry", sq, b.pieces[sq])
		}
	}
	if b.byColorBB[White]&b.byColorBB[Black] != 0 {
		return fmt.Errorf("board: white and black occupancy overlap")
	}
	for p := Piece(0); p < 16; p++ {
		pt := p.Type()
		if pt == NoPieceType {
			continue
		}
		for i := 0; i < b.pieceNb[p]; i++ {
			sq := b.pieceList[p][i]
			if b.pieces[sq] != p {
				return fmt.Errorf("board: pieceList has %v at %d but pieces array has %v", p, sq, b.pieces[sq])
			}
		}
	}
	if b.pieces[b.kingSquare[White]] != WhiteKing {
		return fmt.Errorf("board: white king square %d does not hold a white king", b.kingSquare[White])
	}
	if b.pieces[b.kingSquare[Black]] != BlackKing {
		return fmt.Errorf("board: black king square %d does not hold a black king", b.kingSquare[Black])
	}
	if want := b.computeZobrist(); want != b.posKey {
		return fmt.Errorf("board: posKey %#x does not match recomputed hash %#x", b.posKey, want)
	}
	return nil
}

func popLSB(bb *uint64) Square {
	sq := Square(bits.TrailingZeros64(*bb))
	*bb &= *bb - 1
	return sq
}
