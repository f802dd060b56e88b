package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendPawnMoves adds the moves of the pawn on from in the order single push,
// capture towards the h-file, capture towards the a-file, double push.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	colour := board.ToMove
	forward := chess.Square(chess.Forward(colour))
	ahead := from + forward

	if board.IsEmpty(ahead) {
		moves = appendPawnMove(moves, colour, from, ahead)
	}

	for _, df := range [2]int{1, -1} {
		file := from.File() + df
		if file < 0 || file >= chess.BoardSize {
			continue
		}
		to := ahead + chess.Square(df)
		if board.IsColour(to, colour.Opposite()) || (to.Valid() && to == board.EnPassant) {
			moves = appendPawnMove(moves, colour, from, to)
		}
	}

	if from.Row() == chess.PawnRow(colour) {
		double := ahead + forward
		if board.IsEmpty(ahead) && board.IsEmpty(double) {
			moves = append(moves, chess.NewMove(from, double))
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded into the four promotion choices
// when it lands on the far back row.
func appendPawnMove(moves []chess.Move, colour chess.Colour, from, to chess.Square) []chess.Move {
	if to.Row() != chess.PromotionRow(colour) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, piece := range chess.PromotionPieces {
		moves = append(moves, chess.NewPromotion(from, to, piece))
	}
	return moves
}

// isPromotingMove reports whether move takes a pawn of the side to move onto
// its promotion row.
func isPromotingMove(board *chess.Board, move chess.Move) bool {
	return board.Get(move.From).Is(board.ToMove, chess.Pawn) &&
		move.To.Valid() && move.To.Row() == chess.PromotionRow(board.ToMove)
}

// NeedsPromotion reports whether move, played in board, must carry a
// promotion piece.
func NeedsPromotion(board *chess.Board, move chess.Move) bool {
	return isPromotingMove(board, move)
}
