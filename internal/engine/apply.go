package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ForceMove applies move to board without any legality check. Castling rook
// relocation, en passant removal, promotion, castling rights and both clocks
// are updated, and the side to move is flipped.
//
// A pawn reaching its promotion row without a valid promotion piece panics
// with an error wrapping errors.ErrMalformedMove; callers must reject such
// moves before they get here.
func ForceMove(board *chess.Board, move chess.Move) {
	mover := board.ToMove
	piece := board.Get(move.From)
	isPawn := piece.Piece == chess.Pawn
	isCapture := !board.Get(move.To).IsEmpty()

	if isPawn || isCapture {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if mover == chess.Black {
		board.MoveNumber++
	}

	switch piece.Piece {
	case chess.King:
		castling := IsCastlingMove(board, move)
		board.Castling.RevokeAll(piece.Colour)
		if castling {
			relocateCastlingRook(board, move)
		}
	case chess.Rook:
		updateCastlingRightsForCorner(&board.Castling, move.From)
	}

	// A capture on a rook corner removes the right even if the rook never moved.
	updateCastlingRightsForCorner(&board.Castling, move.To)

	if isPawn && move.To == board.EnPassant {
		board.Set(move.To-chess.Square(chess.Forward(mover)), chess.NoPiece)
	}

	board.EnPassant = chess.NoSquare
	if isPawn && abs(int(move.To-move.From)) == 2*chess.BoardSize {
		board.EnPassant = move.From + chess.Square(chess.Forward(mover))
	}

	board.ToMove = mover.Opposite()

	if isPawn && move.To.Row() == chess.PromotionRow(mover) {
		if !chess.ValidPromotion(move.Promotion) {
			panic(fmt.Errorf("%s reaches the last rank without a promotion piece: %w", move, errors.ErrMalformedMove))
		}
		board.Set(move.To, chess.MakeColouredPiece(mover, move.Promotion))
		board.Set(move.From, chess.NoPiece)
		return
	}

	board.Set(move.To, piece)
	board.Set(move.From, chess.NoPiece)
}

// Play validates move against the legal moves of board and applies it.
// It returns an error wrapping errors.ErrIllegalMove if the move is not legal.
func Play(board *chess.Board, move chess.Move) error {
	if !IsLegal(board, move) {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   plyNumber(board),
			MoveText: move.String(),
			FEN:      BoardToFEN(board),
		}
	}
	ForceMove(board, move)
	return nil
}

// plyNumber returns the 1-based ply about to be played in board.
func plyNumber(board *chess.Board) int {
	ply := 2 * (board.MoveNumber - 1)
	if board.ToMove == chess.Black {
		ply++
	}
	return ply + 1
}
