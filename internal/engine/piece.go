package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendKnightMoves adds the knight jumps from sq. Only the destination file
// is range-checked; a jump past the top or bottom row yields an index off the
// board, which IsAttackable rejects.
func appendKnightMoves(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	for _, df := range [2]int{-1, 1} {
		for _, dr := range [2]int{-1, 1} {
			for _, jump := range [2][2]int{{df, 2 * dr}, {2 * df, dr}} {
				file := from.File() + jump[0]
				if file < 0 || file >= chess.BoardSize {
					continue
				}
				to := from + chess.Square(jump[1]*chess.BoardSize+jump[0])
				if board.IsAttackable(to) {
					moves = append(moves, chess.NewMove(from, to))
				}
			}
		}
	}
	return moves
}

// appendKingMoves adds the single steps of a king.
func appendKingMoves(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	for dir := chess.Direction(0); dir < chess.NumDirections; dir++ {
		if chess.SquaresToEdge[from][dir] <= 1 {
			continue
		}
		to := from + dir.Offset()
		if board.IsAttackable(to) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// appendSlidingMoves walks each ray in [first, last] until the edge or the
// first occupied square. A blocking enemy piece is a capture; an own piece
// ends the ray without a move.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, first, last chess.Direction) []chess.Move {
	for dir := first; dir <= last; dir++ {
		offset := dir.Offset()
		for step := 1; step < chess.SquaresToEdge[from][dir]; step++ {
			to := from + chess.Square(step)*offset
			if board.IsEmpty(to) {
				moves = append(moves, chess.NewMove(from, to))
				continue
			}
			if board.IsAttackable(to) {
				moves = append(moves, chess.NewMove(from, to))
			}
			break
		}
	}
	return moves
}
