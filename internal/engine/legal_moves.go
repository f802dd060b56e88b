package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GenerateLegal returns the legal moves for the side to move. Each
// pseudo-legal move is played on a scratch copy and kept only if the mover's
// king is not attacked afterwards.
//
// Castling is filtered by more than that after-move test: the king must not
// be in check on its home square and must not cross an attacked square (see
// castlingPathSafe). The pseudo-legal generator only checks that the path is
// empty, so dropping these checks would let a king castle out of or through
// check.
func GenerateLegal(board *chess.Board) []chess.Move {
	pseudo := GeneratePseudoLegal(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if leavesKingSafe(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, move := range GeneratePseudoLegal(board) {
		if leavesKingSafe(board, move) {
			return true
		}
	}
	return false
}

// IsLegal returns true if move is one of the legal moves in board. Moves are
// compared on from, to and promotion piece.
func IsLegal(board *chess.Board, move chess.Move) bool {
	for _, legal := range GenerateLegal(board) {
		if legal == move {
			return true
		}
	}
	return false
}

// leavesKingSafe plays move on a copy of board and checks the mover's king.
func leavesKingSafe(board *chess.Board, move chess.Move) bool {
	if IsCastlingMove(board, move) && !castlingPathSafe(board, move) {
		return false
	}
	mover := board.ToMove
	scratch := board.Copy()
	ForceMove(&scratch, move)
	return !IsInCheck(&scratch, mover)
}
