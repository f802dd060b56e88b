package chess

import "testing"

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
		file int
		row  int
	}{
		{A8, "a8", 0, 0},
		{H8, "h8", 7, 0},
		{E8, "e8", 4, 0},
		{A1, "a1", 0, 7},
		{E1, "e1", 4, 7},
		{H1, "h1", 7, 7},
		{SquareAt(4, 4), "e4", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if tt.sq.File() != tt.file || tt.sq.Row() != tt.row {
				t.Errorf("File(), Row() = %d, %d; want %d, %d", tt.sq.File(), tt.sq.Row(), tt.file, tt.row)
			}
			if got := NewSquare(Col(tt.name[0]), Rank(tt.name[1])); got != tt.sq {
				t.Errorf("NewSquare(%q) = %d; want %d", tt.name, got, tt.sq)
			}
		})
	}
}

func TestSquareInvalid(t *testing.T) {
	if NoSquare.Valid() {
		t.Error("NoSquare.Valid() = true")
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want \"-\"", got)
	}
	for _, tt := range []struct{ file, row int }{{-1, 0}, {8, 0}, {0, -1}, {0, 8}} {
		if got := SquareAt(tt.file, tt.row); got != NoSquare {
			t.Errorf("SquareAt(%d, %d) = %d; want NoSquare", tt.file, tt.row, got)
		}
	}
	if got := NewSquare('i', '1'); got != NoSquare {
		t.Errorf("NewSquare('i', '1') = %d; want NoSquare", got)
	}
	if got := NewSquare('a', '9'); got != NoSquare {
		t.Errorf("NewSquare('a', '9') = %d; want NoSquare", got)
	}
}

func TestColourHelpers(t *testing.T) {
	if Forward(White) != -8 || Forward(Black) != 8 {
		t.Errorf("Forward = %d, %d; want -8, 8", Forward(White), Forward(Black))
	}
	if PromotionRow(White) != 0 || PromotionRow(Black) != 7 {
		t.Errorf("PromotionRow = %d, %d; want 0, 7", PromotionRow(White), PromotionRow(Black))
	}
	if PawnRow(White) != 6 || PawnRow(Black) != 1 {
		t.Errorf("PawnRow = %d, %d; want 6, 1", PawnRow(White), PawnRow(Black))
	}
	if KingHome(White) != E1 || KingHome(Black) != E8 {
		t.Errorf("KingHome = %v, %v; want e1, e8", KingHome(White), KingHome(Black))
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"quiet", NewMove(SquareAt(4, 6), SquareAt(4, 4)), "e2e4"},
		{"queen promotion", NewPromotion(SquareAt(4, 1), SquareAt(4, 0), Queen), "e7e8q"},
		{"knight promotion", NewPromotion(SquareAt(0, 6), SquareAt(1, 7), Knight), "a2b1n"},
		{"castle", NewMove(E1, SquareAt(6, 7)), "e1g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveEquality(t *testing.T) {
	a := NewPromotion(SquareAt(4, 1), SquareAt(4, 0), Queen)
	b := NewPromotion(SquareAt(4, 1), SquareAt(4, 0), Queen)
	c := NewPromotion(SquareAt(4, 1), SquareAt(4, 0), Rook)

	if a != b {
		t.Error("identical moves compare unequal")
	}
	if a == c {
		t.Error("moves with different promotion compare equal")
	}
	if !a.IsPromotion() || NewMove(A1, A8).IsPromotion() {
		t.Error("IsPromotion() mismatch")
	}
	if !(Move{From: A8, To: H1}).InBounds() || (Move{From: NoSquare, To: H1}).InBounds() {
		t.Error("InBounds() mismatch")
	}
}

func TestValidPromotion(t *testing.T) {
	for _, p := range []Piece{Queen, Rook, Bishop, Knight} {
		if !ValidPromotion(p) {
			t.Errorf("ValidPromotion(%v) = false", p)
		}
	}
	for _, p := range []Piece{Empty, Pawn, King, NumPieceValues} {
		if ValidPromotion(p) {
			t.Errorf("ValidPromotion(%v) = true", p)
		}
	}
}
