package chess

// Square is a board index 0-63, row-major from a8 (0) to h1 (63).
// File is index%8 and the row counted from the top (rank 8) is index/8.
type Square int

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

// Named squares used by the castling and promotion rules.
const (
	A8 Square = 0
	E8 Square = 4
	H8 Square = 7
	A1 Square = 56
	E1 Square = 60
	H1 Square = 63
)

// SquareAt returns the square at the given file (0-7, a-h) and row from the
// top (0-7, rank 8 to rank 1). Off-board coordinates give NoSquare.
func SquareAt(file, row int) Square {
	if file < 0 || file >= BoardSize || row < 0 || row >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + file)
}

// NewSquare converts character coordinates ('a'-'h', '1'-'8') to a square.
func NewSquare(col Col, rank Rank) Square {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare
	}
	return SquareAt(int(col-ColBase), int(LastRank-rank))
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Row returns the row counted from the top, 0 for rank 8.
func (sq Square) Row() int {
	return int(sq) / BoardSize
}

// Col returns the file letter.
func (sq Square) Col() Col {
	return Col(ColBase + sq.File())
}

// Rank returns the rank digit.
func (sq Square) Rank() Rank {
	return Rank(LastRank - sq.Row())
}

// String returns the algebraic name of the square, e.g. "e4", or "-".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(sq.Col()), byte(sq.Rank())})
}

// HomeRow returns the row holding the colour's pieces at the start.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row holding the colour's pawns at the start.
func PawnRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the far back row for the colour's pawns.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// Forward returns the square-index step of one pawn advance for the colour.
func Forward(colour Colour) int {
	if colour == White {
		return int(Up.Offset())
	}
	return int(Down.Offset())
}

// KingHome returns the starting square of the colour's king.
func KingHome(colour Colour) Square {
	if colour == White {
		return E1
	}
	return E8
}
