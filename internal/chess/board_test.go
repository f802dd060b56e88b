package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", b.EnPassant)
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if b.Castling.Any() {
			t.Error("empty board has castling rights")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := b.Get(sq); got != NoPiece {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece ColouredPiece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn d7", "d7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black knight g8", "g8", B(Knight)},
		{"empty e4", "e4", NoPiece},
		{"empty a6", "a6", NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := NewSquare(Col(tt.sq[0]), Rank(tt.sq[1]))
			if got := b.Get(sq); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if b.Castling != AllCastlingRights {
		t.Errorf("Castling = %+v; want all rights", b.Castling)
	}
	if got := b.CountPieces(White, Pawn); got != 8 {
		t.Errorf("CountPieces(White, Pawn) = %d; want 8", got)
	}
	if got := b.CountPieces(Black, Knight); got != 2 {
		t.Errorf("CountPieces(Black, Knight) = %d; want 2", got)
	}
}

func TestBoardPredicatesOutOfRange(t *testing.T) {
	b := NewInitialBoard()

	for _, sq := range []Square{NoSquare, -9, 64, 71, 1000} {
		if b.IsEmpty(sq) {
			t.Errorf("IsEmpty(%d) = true; want false", sq)
		}
		if b.IsAttackable(sq) {
			t.Errorf("IsAttackable(%d) = true; want false", sq)
		}
		if b.IsWhite(sq) || b.IsBlack(sq) {
			t.Errorf("colour predicate true for %d", sq)
		}
		if b.IsPawn(sq) || b.IsKing(sq) || b.IsRook(sq) {
			t.Errorf("kind predicate true for %d", sq)
		}
		if got := b.Get(sq); got != NoPiece {
			t.Errorf("Get(%d) = %v; want Empty", sq, got)
		}
	}
}

func TestIsAttackable(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		toMove Colour
		sq     Square
		want   bool
	}{
		{"empty square white to move", White, SquareAt(4, 4), true},
		{"own piece white to move", White, E1, false},
		{"enemy piece white to move", White, E8, true},
		{"own piece black to move", Black, E8, false},
		{"enemy piece black to move", Black, A1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.ToMove = tt.toMove
			if got := b.IsAttackable(tt.sq); got != tt.want {
				t.Errorf("IsAttackable(%v) = %v; want %v", tt.sq, got, tt.want)
			}
		})
	}
}

func TestBoardSetGet(t *testing.T) {
	b := NewBoard()
	sq := SquareAt(3, 4)

	b.Set(sq, W(Queen))
	if !b.IsQueen(sq) || !b.IsWhite(sq) {
		t.Errorf("Get(%v) = %v; want White Queen", sq, b.Get(sq))
	}

	b.Set(sq, NoPiece)
	if !b.IsEmpty(sq) {
		t.Errorf("IsEmpty(%v) = false after clearing", sq)
	}

	// Writes off the board are dropped.
	b.Set(NoSquare, W(King))
	b.Set(64, W(King))
	if _, ok := b.FindKing(White); ok {
		t.Error("off-board Set placed a king")
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	c.Set(E1, NoPiece)
	c.Castling.RevokeAll(White)
	c.EnPassant = SquareAt(4, 5)

	if !b.IsKing(E1) {
		t.Error("modifying copy cleared the original king")
	}
	if !b.Castling.WhiteKingside || !b.Castling.WhiteQueenside {
		t.Error("modifying copy revoked the original castling rights")
	}
	if b.EnPassant != NoSquare {
		t.Error("modifying copy set the original en passant square")
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()

	if sq, ok := b.FindKing(White); !ok || sq != E1 {
		t.Errorf("FindKing(White) = %v, %v; want e1, true", sq, ok)
	}
	if sq, ok := b.FindKing(Black); !ok || sq != E8 {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}

	b.Set(E8, NoPiece)
	if sq, ok := b.FindKing(Black); ok || sq != NoSquare {
		t.Errorf("FindKing(Black) on kingless board = %v, %v", sq, ok)
	}
}

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		colour   Colour
		kingside bool
	}{
		{White, true},
		{White, false},
		{Black, true},
		{Black, false},
	}

	for _, tt := range tests {
		cr := AllCastlingRights
		if !cr.Has(tt.colour, tt.kingside) {
			t.Errorf("Has(%v, %v) = false on full rights", tt.colour, tt.kingside)
		}
		cr.Revoke(tt.colour, tt.kingside)
		if cr.Has(tt.colour, tt.kingside) {
			t.Errorf("Has(%v, %v) = true after Revoke", tt.colour, tt.kingside)
		}
		if !cr.Has(tt.colour, !tt.kingside) {
			t.Errorf("Revoke(%v, %v) cleared the other side", tt.colour, tt.kingside)
		}
		if !cr.Has(tt.colour.Opposite(), tt.kingside) {
			t.Errorf("Revoke(%v, %v) cleared the other colour", tt.colour, tt.kingside)
		}
	}

	cr := AllCastlingRights
	cr.RevokeAll(White)
	cr.RevokeAll(Black)
	if cr.Any() {
		t.Errorf("Any() = true after revoking everything: %+v", cr)
	}
}
