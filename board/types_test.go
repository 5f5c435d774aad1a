package board

import "testing"

func TestMoveEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		from, to Square
		promo    PieceType
		flag     MoveFlag
		want     string
	}{
		{NewSquare(4, 1), NewSquare(4, 3), NoPieceType, FlagNormal, "e2e4"},
		{NewSquare(0, 6), NewSquare(0, 7), Queen, FlagPromotion, "a7a8q"},
		{NewSquare(0, 6), NewSquare(0, 7), Knight, FlagPromotion, "a7a8n"},
		{NewSquare(3, 4), NewSquare(3, 5), NoPieceType, FlagEnPassant, "d5d6"},
		{NewSquare(4, 0), NewSquare(6, 0), NoPieceType, FlagCastling, "e1g1"},
	}

	for _, c := range cases {
		m := NewMove(c.from, c.to, c.promo, c.flag)
		if got := m.From(); got != c.from {
			t.Errorf("NewMove(%v).From() = %v, want %v", c.want, got, c.from)
		}
		if got := m.To(); got != c.to {
			t.Errorf("NewMove(%v).To() = %v, want %v", c.want, got, c.to)
		}
		if got := m.Flag(); got != c.flag {
			t.Errorf("NewMove(%v).Flag() = %v, want %v", c.want, got, c.flag)
		}
		if c.flag == FlagPromotion {
			if got := m.PromotionType(); got != c.promo {
				t.Errorf("NewMove(%v).PromotionType() = %v, want %v", c.want, got, c.promo)
			}
		}
		if got := m.String(); got != c.want {
			t.Errorf("NewMove(...).String() = %q, want %q", got, c.want)
		}
	}
}

func TestNoMoveIsZeroValue(t *testing.T) {
	var m Move
	if m != NoMove {
		t.Fatalf("zero Move != NoMove")
	}
	if m.String() != "0000" {
		t.Fatalf("NoMove.String() = %q, want \"0000\"", m.String())
	}
}

func TestPieceColorAndType(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			if got := p.Color(); got != c {
				t.Errorf("MakePiece(%v,%v).Color() = %v, want %v", c, pt, got, c)
			}
			if got := p.Type(); got != pt {
				t.Errorf("MakePiece(%v,%v).Type() = %v, want %v", c, pt, got, pt)
			}
		}
	}
}
