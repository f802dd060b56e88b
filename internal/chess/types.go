// Package chess holds the value types shared by the rules engine: colours,
// pieces, squares, moves and the board.
package chess

// Colour is the side a piece or player belongs to.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns "White" or "Black".
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other side.
func (c Colour) Opposite() Colour {
	return White - c
}

// Piece is a piece kind without colour.
type Piece int

const (
	Empty Piece = iota // no piece; also "no promotion" in a Move
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

var pieceNames = [NumPieceValues]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

const pieceLetters = " PNBRQK"

// String returns the piece name, or "Unknown" outside the valid range.
func (p Piece) String() string {
	if p < Empty || p >= NumPieceValues {
		return "Unknown"
	}
	return pieceNames[p]
}

// Letter returns the upper-case letter of the piece, ' ' for Empty and '?'
// outside the valid range.
func (p Piece) Letter() byte {
	if p < Empty || p >= NumPieceValues {
		return '?'
	}
	return pieceLetters[p]
}

// ColouredPiece is the content of a square. The zero value is an empty
// square.
type ColouredPiece struct {
	Piece  Piece
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = ColouredPiece{}

// MakeColouredPiece pairs a colour with a piece kind. Empty always yields
// NoPiece so that empty squares compare equal.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	if piece == Empty {
		return NoPiece
	}
	return ColouredPiece{Piece: piece, Colour: colour}
}

// W returns the white piece of the given kind.
func W(piece Piece) ColouredPiece { return MakeColouredPiece(White, piece) }

// B returns the black piece of the given kind.
func B(piece Piece) ColouredPiece { return MakeColouredPiece(Black, piece) }

// IsEmpty reports whether the square holds no piece.
func (cp ColouredPiece) IsEmpty() bool {
	return cp.Piece == Empty
}

// Is reports whether cp is a piece of the given colour and kind.
func (cp ColouredPiece) Is(colour Colour, piece Piece) bool {
	return !cp.IsEmpty() && cp.Piece == piece && cp.Colour == colour
}

// String returns e.g. "White Knight", or "Empty".
func (cp ColouredPiece) String() string {
	if cp.IsEmpty() {
		return Empty.String()
	}
	return cp.Colour.String() + " " + cp.Piece.String()
}

// MoveClass is the kind of a legal move, as needed to apply or describe it.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
	UnknownMove
)

var moveClassNames = [...]string{
	PawnMove:              "pawn move",
	PawnMoveWithPromotion: "promotion",
	EnPassantPawnMove:     "en passant",
	PieceMove:             "piece move",
	KingsideCastle:        "kingside castle",
	QueensideCastle:       "queenside castle",
}

// String returns a short description of the class.
func (mc MoveClass) String() string {
	if mc < PawnMove || int(mc) >= len(moveClassNames) {
		return "unknown"
	}
	return moveClassNames[mc]
}

// Rank is a rank character, '1' to '8'.
type Rank byte

// Col is a file character, 'a' to 'h'.
type Col byte

// Board dimensions and coordinate characters.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase   = 'a'
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// CheckStatus is the effect of a move on the opposing king.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

var checkStatusNames = [...]string{
	NoCheck:   "none",
	Check:     "check",
	Checkmate: "checkmate",
}

// String returns "none", "check" or "checkmate".
func (cs CheckStatus) String() string {
	if cs < NoCheck || int(cs) >= len(checkStatusNames) {
		return "unknown"
	}
	return checkStatusNames[cs]
}

// Suffix returns "+" for check, "#" for checkmate and "" otherwise.
func (cs CheckStatus) Suffix() string {
	switch cs {
	case Check:
		return "+"
	case Checkmate:
		return "#"
	}
	return ""
}
