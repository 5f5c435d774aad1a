// Package board implements a bitboard chess position: piece placement,
// magic-bitboard attack queries, pseudo-move generation, and a reversible
// make/unmake state machine used by the perft node counter.
package board

// Square is a 0..63 board index. A1=0, H1=7, A8=56, H8=63.
type Square int8

// SQNone is the distinguished "no square" sentinel.
const SQNone Square = -1

// File returns the file (0=a .. 7=h) of a square.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank (0=1st .. 7=8th) of a square.
func (s Square) Rank() int { return int(s) >> 3 }

// NewSquare builds a square from a 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// Color is the side to move or the owner of a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

// PieceType is the colorless kind of a piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Piece packs color and type into a 4-bit value: (color<<3)|type. This
// deliberately leaves indices 0 and 8 unused between the white and black
// piece ranges (spec.md §9, "piece encoding gaps") so that psq[piece][sq]
// and pieceList[piece] can be indexed directly without repacking.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// MakePiece combines a color and type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type strips the color bit, returning the colorless piece type.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owning side. NoPiece reads as White; callers must not
// rely on this for occupied squares.
func (p Piece) Color() Color { return Color(p >> 3) }

// CastlingRights is a 4-bit mask of available castling moves.
type CastlingRights uint8

const (
	WhiteOO  CastlingRights = 1 << 0
	WhiteOOO CastlingRights = 1 << 1
	BlackOO  CastlingRights = 1 << 2
	BlackOOO CastlingRights = 1 << 3
	AllCastlingRights CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// MoveFlag distinguishes the special move kinds encoded in a Move.
type MoveFlag uint8

const (
	FlagNormal    MoveFlag = 0
	FlagPromotion MoveFlag = 1
	FlagEnPassant MoveFlag = 2
	FlagCastling  MoveFlag = 3
)

// Move is the 16-bit packed move value described in spec.md §3:
//
//	bits 0-5   destination square
//	bits 6-11  origin square
//	bits 12-13 promotion piece type (0..3 -> Knight..Queen)
//	bits 14-15 move flag
//
// The all-zero Move is the distinguished "none" value.
type Move uint16

// NoMove is the null move (from==to==A1, flag normal, no promotion).
const NoMove Move = 0

const (
	moveToShift    = 0
	moveFromShift  = 6
	movePromoShift = 12
	moveFlagShift  = 14
)

// NewMove packs origin, destination, promotion piece type, and flag into a Move.
// promo must be one of Knight..Queen when flag==FlagPromotion, ignored otherwise.
func NewMove(from, to Square, promo PieceType, flag MoveFlag) Move {
	var promoBits uint16
	if flag == FlagPromotion {
		promoBits = uint16(promo - Knight) // Knight->0 .. Queen->3
	}
	return Move(uint16(to&0x3F)<<moveToShift |
		uint16(from&0x3F)<<moveFromShift |
		promoBits<<movePromoShift |
		uint16(flag)<<moveFlagShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3F) }

// Flag returns the move's special-case flag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> moveFlagShift) & 0x3) }

// PromotionType returns the promoted-to piece type, or NoPieceType when the
// move is not a promotion.
func (m Move) PromotionType() PieceType {
	if m.Flag() != FlagPromotion {
		return NoPieceType
	}
	return Knight + PieceType((m>>movePromoShift)&0x3)
}

// String renders the move in UCI long-algebraic form (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	from, to := m.From(), m.To()
	buf := [5]byte{
		byte('a' + from.File()), byte('1' + from.Rank()),
		byte('a' + to.File()), byte('1' + to.Rank()),
	}
	s := string(buf[:4])
	if promo := m.PromotionType(); promo != NoPieceType {
		s += string(promoLetter(promo))
	}
	return s
}

func promoLetter(pt PieceType) byte {
	switch pt {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	}
	return '?'
}

// MaxMoves bounds a MoveList: no legal chess position has more pseudo-legal
// moves than this.
const MaxMoves = 256

// MoveList is a caller-owned bounded move buffer (spec.md §3 "Ownership").
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

func (l *MoveList) add(m Move) { l.Moves[l.Count] = m; l.Count++ }

// Slice returns the populated prefix of the buffer.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }
