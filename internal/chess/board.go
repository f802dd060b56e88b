package chess

// CastlingRights holds the four castling permissions. A right is only ever
// revoked during play, never restored.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the state of the rights at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return cr.WhiteKingside
	case colour == White:
		return cr.WhiteQueenside
	case kingside:
		return cr.BlackKingside
	default:
		return cr.BlackQueenside
	}
}

// Revoke clears one right.
func (cr *CastlingRights) Revoke(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		cr.WhiteKingside = false
	case colour == White:
		cr.WhiteQueenside = false
	case kingside:
		cr.BlackKingside = false
	default:
		cr.BlackQueenside = false
	}
}

// RevokeAll clears both rights of the colour.
func (cr *CastlingRights) RevokeAll(colour Colour) {
	cr.Revoke(colour, true)
	cr.Revoke(colour, false)
}

// Any reports whether any right remains.
func (cr CastlingRights) Any() bool {
	return cr.WhiteKingside || cr.WhiteQueenside || cr.BlackKingside || cr.BlackQueenside
}

// Board represents a chess position with all state needed for the game.
// It is a value type: assigning a Board copies the whole position.
type Board struct {
	// The board squares, indexed by Square.
	Squares [NumSquares]ColouredPiece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// The square skipped by a two-square pawn advance on the previous ply,
	// or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, incremented after Black moves.
	MoveNumber int
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]ColouredPiece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[SquareAt(file, HomeRow(Black))] = B(backRank[file])
		b.Squares[SquareAt(file, PawnRow(Black))] = B(Pawn)
		b.Squares[SquareAt(file, PawnRow(White))] = W(Pawn)
		b.Squares[SquareAt(file, HomeRow(White))] = W(backRank[file])
	}

	b.ToMove = White
	b.Castling = AllCastlingRights
	b.EnPassant = NoSquare
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// Get returns the piece on the square, or NoPiece when the square is empty
// or off the board.
func (b *Board) Get(sq Square) ColouredPiece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece ColouredPiece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// Copy returns an independent copy of the position.
func (b *Board) Copy() Board {
	return *b
}

// IsEmpty reports whether the square is on the board and empty.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.Squares[sq].IsEmpty()
}

func (b *Board) isKind(sq Square, piece Piece) bool {
	return sq.Valid() && b.Squares[sq].Piece == piece
}

// IsPawn reports whether the square holds a pawn of either colour.
func (b *Board) IsPawn(sq Square) bool { return b.isKind(sq, Pawn) }

// IsKnight reports whether the square holds a knight of either colour.
func (b *Board) IsKnight(sq Square) bool { return b.isKind(sq, Knight) }

// IsBishop reports whether the square holds a bishop of either colour.
func (b *Board) IsBishop(sq Square) bool { return b.isKind(sq, Bishop) }

// IsRook reports whether the square holds a rook of either colour.
func (b *Board) IsRook(sq Square) bool { return b.isKind(sq, Rook) }

// IsQueen reports whether the square holds a queen of either colour.
func (b *Board) IsQueen(sq Square) bool { return b.isKind(sq, Queen) }

// IsKing reports whether the square holds a king of either colour.
func (b *Board) IsKing(sq Square) bool { return b.isKind(sq, King) }

// IsColour reports whether the square holds a piece of the given colour.
func (b *Board) IsColour(sq Square, colour Colour) bool {
	if !sq.Valid() {
		return false
	}
	p := b.Squares[sq]
	return !p.IsEmpty() && p.Colour == colour
}

// IsWhite reports whether the square holds a white piece.
func (b *Board) IsWhite(sq Square) bool { return b.IsColour(sq, White) }

// IsBlack reports whether the square holds a black piece.
func (b *Board) IsBlack(sq Square) bool { return b.IsColour(sq, Black) }

// IsAttackable reports whether the side to move may land on the square:
// it is empty or holds an opponent piece. Off-board squares are not.
func (b *Board) IsAttackable(sq Square) bool {
	return b.IsEmpty(sq) || b.IsColour(sq, b.ToMove.Opposite())
}

// FindKing returns the square of the colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq].Is(colour, King) {
			return sq, true
		}
	}
	return NoSquare, false
}

// CountPieces returns how many pieces of the kind and colour are on the board.
func (b *Board) CountPieces(colour Colour, piece Piece) int {
	n := 0
	for _, p := range b.Squares {
		if p.Is(colour, piece) {
			n++
		}
	}
	return n
}
