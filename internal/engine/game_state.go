package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameStatus describes whether a game can continue and, if not, why.
type GameStatus int

const (
	StatusOngoing GameStatus = iota
	StatusCheckmate
	StatusStalemate
	StatusDrawByHalfmoveLimit
	StatusDrawByInsufficientMaterial
	StatusDrawByRepetition
)

// String returns a short description of the status.
func (s GameStatus) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusDrawByHalfmoveLimit:
		return "draw by halfmove limit"
	case StatusDrawByInsufficientMaterial:
		return "draw by insufficient material"
	case StatusDrawByRepetition:
		return "draw by repetition"
	default:
		return "unknown"
	}
}

// IsOver reports whether the status ends the game.
func (s GameStatus) IsOver() bool {
	return s != StatusOngoing
}

// Result returns the PGN-style result for a finished game, given the side to
// move in the final position: "1-0", "0-1", "1/2-1/2", or "*" while ongoing.
func (s GameStatus) Result(toMove chess.Colour) string {
	switch s {
	case StatusOngoing:
		return "*"
	case StatusCheckmate:
		if toMove == chess.White {
			return "0-1"
		}
		return "1-0"
	default:
		return "1/2-1/2"
	}
}

// Status classifies the position from the legal moves and the check test
// alone: checkmate, stalemate or ongoing.
func Status(board *chess.Board) GameStatus {
	if HasLegalMoves(board) {
		return StatusOngoing
	}
	if IsInCheck(board, board.ToMove) {
		return StatusCheckmate
	}
	return StatusStalemate
}

// CheckStatusAfter reports whether move, played in board, gives check or
// checkmate. The board is not modified.
func CheckStatusAfter(board *chess.Board, move chess.Move) chess.CheckStatus {
	after := board.Copy()
	ForceMove(&after, move)
	if !IsInCheck(&after, after.ToMove) {
		return chess.NoCheck
	}
	if HasLegalMoves(&after) {
		return chess.Check
	}
	return chess.Checkmate
}

// Classify returns the kind of move that move is in board.
func Classify(board *chess.Board, move chess.Move) chess.MoveClass {
	piece := board.Get(move.From)
	switch piece.Piece {
	case chess.Empty:
		return chess.UnknownMove
	case chess.Pawn:
		switch {
		case move.To.Valid() && move.To.Row() == chess.PromotionRow(piece.Colour):
			return chess.PawnMoveWithPromotion
		case move.To == board.EnPassant && move.To.File() != move.From.File():
			return chess.EnPassantPawnMove
		default:
			return chess.PawnMove
		}
	case chess.King:
		if IsCastlingMove(board, move) {
			if move.To > move.From {
				return chess.KingsideCastle
			}
			return chess.QueensideCastle
		}
	}
	return chess.PieceMove
}
