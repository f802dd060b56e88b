package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidatePosition checks a position supplied from outside before any rule
// is applied to it. NewBoardFromFEN only checks structure; this adds what
// move generation relies on: one king of each colour, no pawn on the first
// or last rank, and the side that just moved not left in check.
//
// A missing king wraps errors.ErrNoKing; every other failure wraps
// errors.ErrInvalidFEN.
func ValidatePosition(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch n := board.CountPieces(colour, chess.King); {
		case n == 0:
			return fmt.Errorf("%s king: %w", colour, errors.ErrNoKing)
		case n > 1:
			return invalidFEN("%d %s kings", n, colour)
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		for _, row := range []int{0, chess.BoardSize - 1} {
			if sq := chess.SquareAt(file, row); board.IsPawn(sq) {
				return invalidFEN("pawn on %s", sq)
			}
		}
	}

	if waiting := board.ToMove.Opposite(); IsInCheck(board, waiting) {
		return invalidFEN("%s is in check with %s to move", waiting, board.ToMove)
	}
	return nil
}
