package board

import (
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFen builds a Board from a FEN string. Per spec.md §4.3/§7 this is
// best-effort: a malformed or short FEN never returns an error, it simply
// leaves whatever trailing fields it could not parse at their reset
// defaults (side to move White, no castling rights, no en-passant target,
// rule50 zero, fullmove one). Use Board.Validate to check the result of
// parsing untrusted input.
func ParseFen(s string) *Board {
	b := NewEmpty()
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return b
	}

	parsePlacement(b, fields[0])

	b.sideToMove = White
	if len(fields) > 1 && fields[1] == "b" {
		b.sideToMove = Black
	}

	if len(fields) > 2 {
		b.castlingRights = parseCastling(fields[2])
	}

	b.epSquare = SQNone
	if len(fields) > 3 {
		b.epSquare = parseEPSquare(fields[3], b.sideToMove)
	}

	b.rule50 = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
			b.rule50 = n
		}
	}

	fullmove := 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			fullmove = n
		}
	}
	b.ply = 2*(fullmove-1) + boolToInt(b.sideToMove == Black)

	b.posKey = b.computeZobrist()
	return b
}

func parsePlacement(b *Board, placement string) {
	ranks := strings.Split(placement, "/")
	for i := 0; i < len(ranks) && i < 8; i++ {
		rank := 7 - i
		file := 0
		for _, ch := range ranks[i] {
			if file >= 8 {
				break
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if p := pieceFromChar(byte(ch)); p != NoPiece {
				b.addPiece(p, NewSquare(file, rank))
				file++
			}
		}
	}
}

func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return NoPiece
}

func charFromPiece(p Piece) byte {
	var letters = map[Piece]byte{
		WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
		BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
	}
	return letters[p]
}

func parseCastling(field string) CastlingRights {
	if field == "-" {
		return 0
	}
	var cr CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			cr |= WhiteOO
		case 'Q':
			cr |= WhiteOOO
		case 'k':
			cr |= BlackOO
		case 'q':
			cr |= BlackOOO
		}
	}
	return cr
}

// parseEPSquare accepts the ep-target field only when its rank is the one
// consistent with sideToMove (rank 6 for White to move, rank 3 for Black to
// move), matching the ground-truth parser's `row == (SideToMove == WHITE ?
// '6' : '3')` check; any other rank is ignored rather than trusted, since a
// FEN cannot have a pending en-passant capture on any other rank.
func parseEPSquare(field string, sideToMove Color) Square {
	if len(field) != 2 {
		return SQNone
	}
	file := int(field[0] - 'a')
	rank := int(field[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SQNone
	}
	wantRank := 5 // rank 6, 0-based
	if sideToMove == Black {
		wantRank = 2 // rank 3, 0-based
	}
	if rank != wantRank {
		return SQNone
	}
	return NewSquare(file, rank)
}

// ToFEN renders the board as a FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&WhiteOO != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&WhiteOOO != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&BlackOO != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&BlackOOO != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.epSquare == SQNone {
		sb.WriteByte('-')
	} else {
		sb.WriteByte(byte('a' + b.epSquare.File()))
		sb.WriteByte(byte('1' + b.epSquare.Rank()))
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.rule50))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove()))

	return sb.String()
}

// fullmove inverts ply's gamePly formula (spec.md §4.3) to recover the FEN
// fullmove counter for ToFEN.
func (b *Board) fullmove() int {
	return (b.ply-boolToInt(b.sideToMove == Black))/2 + 1
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
