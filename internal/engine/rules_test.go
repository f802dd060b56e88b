package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func moveList(t *testing.T, texts ...string) []chess.Move {
	t.Helper()
	out := make([]chess.Move, len(texts))
	for i, text := range texts {
		out[i] = testutil.Mv(t, text)
	}
	return out
}

var knightShuffle = []string{"g1f3", "g8f6", "f3g1", "f6g8"}

func repeat(seq []string, n int) []string {
	var out []string
	for i := 0; i < n; i++ {
		out = append(out, seq...)
	}
	return out
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial position", InitialFEN, false},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"king and knight", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", true},
		{"black knight", "1n2k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"bishops on same colour", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"bishops on opposite colours", "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},
		{"two knights", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", false},
		{"bishop against knight", "1n2k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},
		{"single pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"single rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"single queen", "3qk3/8/8/8/8/8/8/4K3 w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, HasInsufficientMaterial(mustFEN(t, tt.fen)), tt.want)
		})
	}
}

func TestHalfmoveLimitExceeded(t *testing.T) {
	tests := []struct {
		clock int
		limit int
		want  bool
	}{
		{0, DefaultHalfmoveLimit, false},
		{300, 300, false},
		{301, 300, true},
		{1000, 0, false},
		{5, -1, false},
		{11, 10, true},
	}

	for _, tt := range tests {
		board := chess.NewInitialBoard()
		board.HalfmoveClock = tt.clock
		if got := HalfmoveLimitExceeded(board, tt.limit); got != tt.want {
			t.Errorf("HalfmoveLimitExceeded(clock=%d, limit=%d) = %v; want %v", tt.clock, tt.limit, got, tt.want)
		}
	}
}

func TestAnalyzeDrawRules_Repetition(t *testing.T) {
	start := chess.NewInitialBoard()

	result, err := AnalyzeDrawRules(start, moveList(t, repeat(knightShuffle, 2)...), DefaultHalfmoveLimit)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, result.HasThreefoldRepetition, "threefold after two cycles")
	testutil.AssertFalse(t, result.Has5FoldRepetition)
	testutil.AssertFalse(t, result.HasMaterialOdds)
	testutil.AssertFalse(t, result.HasInsufficientMaterial)
	testutil.AssertFalse(t, result.HalfmoveLimitReached)
	testutil.AssertEqual(t, result.Plies, 8)

	result, err = AnalyzeDrawRules(start, moveList(t, repeat(knightShuffle, 4)...), DefaultHalfmoveLimit)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, result.Has5FoldRepetition, "fivefold after four cycles")

	testutil.AssertEqual(t, BoardToFEN(start), InitialFEN, "start position modified")
}

func TestAnalyzeDrawRules_NoRepetitionOneCycleShort(t *testing.T) {
	result, err := AnalyzeDrawRules(chess.NewInitialBoard(), moveList(t, repeat(knightShuffle, 2)[:7]...), DefaultHalfmoveLimit)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, result.HasThreefoldRepetition)
}

func TestAnalyzeDrawRules_HalfmoveLimit(t *testing.T) {
	start := mustFEN(t, "4k3/8/8/8/8/8/8/4K1N1 w - - 300 200")

	result, err := AnalyzeDrawRules(start, moveList(t, "g1f3"), DefaultHalfmoveLimit)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, result.HalfmoveLimitReached)
	testutil.AssertTrue(t, result.Has75MoveRule)
	testutil.AssertTrue(t, result.HasInsufficientMaterial)
	testutil.AssertTrue(t, result.HasMaterialOdds)

	result, err = AnalyzeDrawRules(start, moveList(t, "g1f3"), 0)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, result.HalfmoveLimitReached, "limit disabled")
}

func TestAnalyzeDrawRules_IllegalMove(t *testing.T) {
	result, err := AnalyzeDrawRules(chess.NewInitialBoard(), moveList(t, "e2e4", "e7e5", "e4e5"), DefaultHalfmoveLimit)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, result.Plies, 2)
}
