package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// DefaultHalfmoveLimit is the halfmove clock value beyond which a game is
// declared drawn.
const DefaultHalfmoveLimit = 300

// DrawRuleResult contains the results of draw rule detection over a game.
type DrawRuleResult struct {
	// HalfmoveLimitReached is true if the halfmove clock exceeded the limit
	// at some point in the game.
	HalfmoveLimitReached bool

	// Has75MoveRule is true if 150 half-moves were played without a pawn
	// move or capture.
	Has75MoveRule bool

	// HasThreefoldRepetition is true if any position occurred 3 or more times.
	HasThreefoldRepetition bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the game started with unequal material.
	HasMaterialOdds bool

	// Plies is the number of moves replayed.
	Plies int
}

// AnalyzeDrawRules replays moves from start and reports which draw
// conditions arose. Every move is checked for legality; the first illegal
// move stops the replay and is returned as an error wrapping
// errors.ErrIllegalMove. start is not modified.
func AnalyzeDrawRules(start *chess.Board, moves []chess.Move, halfmoveLimit int) (DrawRuleResult, error) {
	result := DrawRuleResult{
		HasMaterialOdds: !isStandardMaterial(start),
	}

	board := start.Copy()
	tracker := hashing.NewRepetitionTracker()
	tracker.Add(&board)

	for _, move := range moves {
		if err := Play(&board, move); err != nil {
			result.HasInsufficientMaterial = HasInsufficientMaterial(&board)
			return result, err
		}
		result.Plies++

		if HalfmoveLimitExceeded(&board, halfmoveLimit) {
			result.HalfmoveLimitReached = true
		}
		if board.HalfmoveClock >= 150 {
			result.Has75MoveRule = true
		}

		n := tracker.Add(&board)
		if n >= 3 {
			result.HasThreefoldRepetition = true
		}
		if n >= 5 {
			result.Has5FoldRepetition = true
		}
	}

	result.HasInsufficientMaterial = HasInsufficientMaterial(&board)
	return result, nil
}

// HalfmoveLimitExceeded reports whether the halfmove clock is beyond limit.
// A limit of zero or less disables the rule.
func HalfmoveLimitExceeded(board *chess.Board, limit int) bool {
	return limit > 0 && board.HalfmoveClock > limit
}

// HasInsufficientMaterial reports whether neither side can deliver mate:
// bare kings, a single minor piece, or one bishop each on squares of the
// same colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Square // indexed by chess.Colour
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		switch piece.Piece {
		case chess.Empty, chess.King:
		case chess.Knight, chess.Bishop:
			minors[piece.Colour] = append(minors[piece.Colour], sq)
		default:
			return false
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white)+len(black) <= 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return board.IsBishop(white[0]) && board.IsBishop(black[0]) &&
			isLightSquare(white[0]) == isLightSquare(black[0])
	}
	return false
}

// isLightSquare reports whether sq is light; a8 is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Row())%2 == 0
}

// standardMaterial is the piece count of each side in the initial position.
var standardMaterial = map[chess.Piece]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// isStandardMaterial reports whether both sides still have exactly the
// material of the initial position.
func isStandardMaterial(board *chess.Board) bool {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for piece, expected := range standardMaterial {
			if board.CountPieces(colour, piece) != expected {
				return false
			}
		}
	}
	return true
}
