package chess

// PromotionPieces lists the legal promotion choices in generation order.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// Move describes a from-square, to-square and optional promotion piece.
// Castling is encoded as the king moving two squares towards the rook.
// Two moves are equal when all three fields are equal.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a pawn move promoting to the given piece.
func NewPromotion(from, to Square, piece Piece) Move {
	return Move{From: from, To: to, Promotion: piece}
}

// IsPromotion returns true if the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// InBounds reports whether both squares lie on the board.
func (m Move) InBounds() bool {
	return m.From.Valid() && m.To.Valid()
}

// String returns the long algebraic form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + ('a' - 'A')))
	}
	return s
}

// ValidPromotion reports whether a pawn may promote to the piece.
func ValidPromotion(piece Piece) bool {
	for _, p := range PromotionPieces {
		if p == piece {
			return true
		}
	}
	return false
}
