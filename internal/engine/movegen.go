// Package engine implements the chess rules: move generation, check
// detection, legality filtering and move application.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GeneratePseudoLegal returns every move available to the side to move
// without testing whether the move leaves the mover's own king attacked.
// Castling is emitted as a two-square king move and is not checked for
// attacked squares here; GenerateLegal is the only check-safety gate.
func GeneratePseudoLegal(board *chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := board.ToMove

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !board.IsColour(sq, colour) {
			continue
		}
		switch board.Squares[sq].Piece {
		case chess.Pawn:
			moves = appendPawnMoves(moves, board, sq)
		case chess.Knight:
			moves = appendKnightMoves(moves, board, sq)
		case chess.Bishop:
			moves = appendSlidingMoves(moves, board, sq, chess.FirstDiagonal, chess.LastDiagonal)
		case chess.Rook:
			moves = appendSlidingMoves(moves, board, sq, chess.FirstOrthogonal, chess.LastOrthogonal)
		case chess.Queen:
			moves = appendSlidingMoves(moves, board, sq, chess.FirstOrthogonal, chess.LastDiagonal)
		case chess.King:
			moves = appendKingMoves(moves, board, sq)
			moves = appendCastlingMoves(moves, board, sq)
		}
	}
	return moves
}
