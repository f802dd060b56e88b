// Package notation converts coordinate move text such as "e2e4" or "e7e8q"
// to and from chess.Move values.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ParseSquare parses an algebraic square name. Letters are case-insensitive.
func ParseSquare(text string) (chess.Square, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 2 {
		return chess.NoSquare, &errors.ParseError{
			Err:      errors.ErrMalformedMove,
			Input:    text,
			Expected: "square such as e4",
			Got:      quoteOrEmpty(s),
		}
	}
	sq := chess.NewSquare(chess.Col(s[0]), chess.Rank(s[1]))
	if !sq.Valid() {
		return chess.NoSquare, &errors.ParseError{
			Err:      errors.ErrMalformedMove,
			Input:    text,
			Expected: "file a-h and rank 1-8",
			Got:      quoteOrEmpty(s),
		}
	}
	return sq, nil
}

// ParseMove parses coordinate move text: origin square, destination square
// and an optional promotion letter q, r, b or n. Whether the promotion
// letter is required depends on the position and is not checked here.
func ParseMove(text string) (chess.Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrMalformedMove,
			Input:    text,
			Expected: "4 or 5 characters",
			Got:      quoteOrEmpty(s),
		}
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return chess.Move{}, withColumn(err, text, 1)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, withColumn(err, text, 3)
	}

	move := chess.NewMove(from, to)
	if len(s) == 5 {
		piece, ok := promotionPiece(s[4])
		if !ok {
			return chess.Move{}, &errors.ParseError{
				Err:      errors.ErrMalformedMove,
				Input:    text,
				Column:   5,
				Expected: "promotion piece q, r, b or n",
				Got:      quoteOrEmpty(s[4:]),
			}
		}
		move.Promotion = piece
	}
	return move, nil
}

// ParseMoves parses a whitespace-separated list of coordinate moves.
func ParseMoves(text string) ([]chess.Move, error) {
	fields := strings.Fields(text)
	moves := make([]chess.Move, 0, len(fields))
	for i, field := range fields {
		move, err := ParseMove(field)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// FormatMove returns the coordinate text of move.
func FormatMove(move chess.Move) string {
	return move.String()
}

// FormatMoves returns the coordinate text of moves separated by spaces.
func FormatMoves(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = FormatMove(m)
	}
	return strings.Join(parts, " ")
}

func promotionPiece(c byte) (chess.Piece, bool) {
	switch c {
	case 'q':
		return chess.Queen, true
	case 'r':
		return chess.Rook, true
	case 'b':
		return chess.Bishop, true
	case 'n':
		return chess.Knight, true
	}
	return chess.Empty, false
}

// withColumn moves a square error into the context of the whole move.
func withColumn(err error, input string, column int) error {
	if pe, ok := err.(*errors.ParseError); ok {
		pe.Input = input
		pe.Column = column
	}
	return err
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "nothing"
	}
	return "\"" + s + "\""
}
