package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendCastlingMoves adds the castling moves of the king on from. The king
// must stand on its home square with its rook in the corner. Only emptiness of
// the squares between them is checked here.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	colour := board.ToMove
	if from != chess.KingHome(colour) {
		return moves
	}

	if board.Castling.Has(colour, false) &&
		board.Get(from-4).Is(colour, chess.Rook) &&
		board.IsEmpty(from-1) && board.IsEmpty(from-2) && board.IsEmpty(from-3) {
		moves = append(moves, chess.NewMove(from, from-2))
	}
	if board.Castling.Has(colour, true) &&
		board.Get(from+3).Is(colour, chess.Rook) &&
		board.IsEmpty(from+1) && board.IsEmpty(from+2) {
		moves = append(moves, chess.NewMove(from, from+2))
	}
	return moves
}

// IsCastlingMove reports whether move is a king moving two squares from its
// home square.
func IsCastlingMove(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.From)
	return piece.Piece == chess.King &&
		move.From == chess.KingHome(piece.Colour) &&
		abs(int(move.To-move.From)) == 2
}

// relocateCastlingRook moves the rook that accompanies a castling king.
func relocateCastlingRook(board *chess.Board, move chess.Move) {
	rookFrom, rookTo := move.From+3, move.From+1
	if move.To < move.From {
		rookFrom, rookTo = move.From-4, move.From-1
	}
	board.Set(rookTo, board.Get(rookFrom))
	board.Set(rookFrom, chess.NoPiece)
}

// updateCastlingRightsForCorner clears the right tied to an original rook
// corner. Other squares are ignored.
func updateCastlingRightsForCorner(rights *chess.CastlingRights, sq chess.Square) {
	switch sq {
	case chess.A1:
		rights.WhiteQueenside = false
	case chess.H1:
		rights.WhiteKingside = false
	case chess.A8:
		rights.BlackQueenside = false
	case chess.H8:
		rights.BlackKingside = false
	}
}

// castlingPathSafe reports whether the castling king is not in check and does
// not cross an attacked square. The destination is covered by the ordinary
// self-check test.
func castlingPathSafe(board *chess.Board, move chess.Move) bool {
	enemy := board.ToMove.Opposite()
	transit := (move.From + move.To) / 2
	return !SquareAttacked(board, move.From, enemy) && !SquareAttacked(board, transit, enemy)
}
