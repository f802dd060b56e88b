package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// sq is a test helper for algebraic square names.
func sq(name string) chess.Square {
	return chess.NewSquare(chess.Col(name[0]), chess.Rank(name[1]))
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()

	board2 := chess.NewInitialBoard()
	board2.Set(sq("e2"), chess.NoPiece)
	board2.Set(sq("e4"), chess.W(chess.Pawn))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashIgnoresClocks(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()
	board2.HalfmoveClock = 12
	board2.MoveNumber = 40

	if GenerateZobristHash(board1) != GenerateZobristHash(board2) {
		t.Error("clock fields changed the hash")
	}
}

func TestZobristHashStateFields(t *testing.T) {
	base := chess.NewInitialBoard()
	baseHash := GenerateZobristHash(base)

	tests := []struct {
		name   string
		modify func(b *chess.Board)
	}{
		{"side to move", func(b *chess.Board) { b.ToMove = chess.Black }},
		{"white kingside right", func(b *chess.Board) { b.Castling.WhiteKingside = false }},
		{"black queenside right", func(b *chess.Board) { b.Castling.BlackQueenside = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base.Copy()
			tt.modify(&b)
			if GenerateZobristHash(&b) == baseHash {
				t.Errorf("changing %s did not change the hash", tt.name)
			}
		})
	}
}

func TestZobristHashEnPassant(t *testing.T) {
	tests := []struct {
		name       string
		pushes     [][2]string // pawn relocations from the initial position
		toMove     chess.Colour
		target     string
		capturable bool
	}{
		{"no pawn beside", [][2]string{{"e2", "e4"}}, chess.Black, "e3", false},
		{"pawn beside", [][2]string{{"e2", "e4"}, {"d7", "d4"}}, chess.Black, "e3", true},
		{"pawn on the far side", [][2]string{{"e2", "e4"}, {"f7", "f4"}}, chess.Black, "e3", true},
		{"own pawn beside", [][2]string{{"e2", "e4"}, {"d2", "d4"}}, chess.Black, "e3", false},
		{"white to capture", [][2]string{{"e2", "e5"}, {"d7", "d5"}}, chess.White, "d6", true},
		{"pawn two files away", [][2]string{{"e2", "e5"}, {"c7", "c5"}}, chess.White, "c6", false},
		{"edge file", [][2]string{{"b2", "b5"}, {"a7", "a5"}}, chess.White, "a6", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.NewInitialBoard()
			for _, p := range tt.pushes {
				board.Set(sq(p[1]), board.Get(sq(p[0])))
				board.Set(sq(p[0]), chess.NoPiece)
			}
			board.ToMove = tt.toMove
			without := GenerateZobristHash(board)

			board.EnPassant = sq(tt.target)
			same := GenerateZobristHash(board) == without
			if same == tt.capturable {
				t.Errorf("target %s left the hash unchanged: %v; want %v", tt.target, same, !tt.capturable)
			}
		})
	}
}

func TestWeakHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	if WeakHash(board1) != WeakHash(board2) {
		t.Error("Identical boards produced different weak hashes")
	}

	board2.Set(sq("g1"), chess.NoPiece)
	board2.Set(sq("f3"), chess.W(chess.Knight))
	if WeakHash(board1) == WeakHash(board2) {
		t.Error("Different placements produced the same weak hash")
	}
}

func TestRepetitionTracker(t *testing.T) {
	tracker := NewRepetitionTracker()
	start := chess.NewInitialBoard()

	if got := tracker.Add(start); got != 1 {
		t.Errorf("first Add = %d; want 1", got)
	}

	moved := start.Copy()
	moved.Set(sq("g1"), chess.NoPiece)
	moved.Set(sq("f3"), chess.W(chess.Knight))
	moved.ToMove = chess.Black
	tracker.Add(&moved)

	if got := tracker.Add(start); got != 2 {
		t.Errorf("second Add of start = %d; want 2", got)
	}
	if got := tracker.Count(start); got != 2 {
		t.Errorf("Count(start) = %d; want 2", got)
	}
	if got := tracker.MaxCount(); got != 2 {
		t.Errorf("MaxCount() = %d; want 2", got)
	}
	if got := tracker.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d; want 2", got)
	}
	if got := tracker.Total(); got != 3 {
		t.Errorf("Total() = %d; want 3", got)
	}
}

func TestRepetitionTrackerReset(t *testing.T) {
	tracker := NewRepetitionTracker()
	board := chess.NewInitialBoard()

	tracker.Add(board)
	tracker.Add(board)
	tracker.Reset()

	if tracker.MaxCount() != 0 || tracker.UniqueCount() != 0 || tracker.Total() != 0 {
		t.Errorf("tracker not empty after Reset: max=%d unique=%d total=%d",
			tracker.MaxCount(), tracker.UniqueCount(), tracker.Total())
	}
	if got := tracker.Count(board); got != 0 {
		t.Errorf("Count after Reset = %d; want 0", got)
	}
}
