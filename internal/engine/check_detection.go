package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked. It generates
// the opponent's pseudo-legal moves with the side to move temporarily flipped
// and looks for one landing on the king. The board is restored before return.
//
// A board without a king of the given colour is a broken invariant and
// panics with an error wrapping errors.ErrNoKing.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		panic(fmt.Errorf("%s king: %w", colour, errors.ErrNoKing))
	}

	saved := board.ToMove
	board.ToMove = colour.Opposite()
	defer func() { board.ToMove = saved }()

	for _, move := range GeneratePseudoLegal(board) {
		if move.To == king {
			return true
		}
	}
	return false
}

// SquareAttacked returns true if a piece of byColour attacks sq. Unlike
// IsInCheck it works for empty squares: pawns attack diagonally only.
func SquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one row behind, relative to their own direction.
	pawnRow := sq - chess.Square(chess.Forward(byColour))
	for _, df := range [2]int{-1, 1} {
		file := sq.File() + df
		if file < 0 || file >= chess.BoardSize {
			continue
		}
		if board.Get(pawnRow + chess.Square(df)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, df := range [4]int{-2, -1, 1, 2} {
		file := sq.File() + df
		if file < 0 || file >= chess.BoardSize {
			continue
		}
		dr := 3 - abs(df)
		for _, r := range [2]int{-dr, dr} {
			if board.Get(sq + chess.Square(r*chess.BoardSize+df)).Is(byColour, chess.Knight) {
				return true
			}
		}
	}

	for dir := chess.Direction(0); dir < chess.NumDirections; dir++ {
		offset := dir.Offset()
		for step := 1; step < chess.SquaresToEdge[sq][dir]; step++ {
			piece := board.Get(sq + chess.Square(step)*offset)
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour == byColour {
				switch {
				case step == 1 && piece.Piece == chess.King:
					return true
				case piece.Piece == chess.Queen:
					return true
				case dir.IsDiagonal() && piece.Piece == chess.Bishop:
					return true
				case !dir.IsDiagonal() && piece.Piece == chess.Rook:
					return true
				}
			}
			break // Blocked
		}
	}

	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
