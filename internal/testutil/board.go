package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Well-known test positions.
const (
	// Kiwipete exercises castling, en passant, promotions and pins.
	Kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EnPassantPosition has a white pawn able to capture d5 en passant.
	EnPassantPosition = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"

	// PromotionPosition has a white pawn on a7 able to promote by push or capture.
	PromotionPosition = "1n5k/P7/8/8/8/8/8/7K w - - 0 1"

	// CastlingPosition has both sides free to castle on either wing.
	CastlingPosition = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
)

// Sq converts an algebraic square name such as "e4" to a square.
// It returns chess.NoSquare for malformed names.
func Sq(name string) chess.Square {
	if len(name) != 2 {
		return chess.NoSquare
	}
	return chess.NewSquare(chess.Col(name[0]), chess.Rank(name[1]))
}

// Mv converts long algebraic text such as "e2e4" or "e7e8q" to a move.
// It calls t.Fatal on malformed text.
func Mv(t testing.TB, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("malformed test move %q", text)
	}
	move := chess.NewMove(Sq(text[0:2]), Sq(text[2:4]))
	if !move.InBounds() {
		t.Fatalf("malformed test move %q", text)
	}
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			move.Promotion = chess.Queen
		case 'r':
			move.Promotion = chess.Rook
		case 'b':
			move.Promotion = chess.Bishop
		case 'n':
			move.Promotion = chess.Knight
		default:
			t.Fatalf("malformed promotion in test move %q", text)
		}
	}
	return move
}

// MoveStrings returns the long algebraic text of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// ContainsMove reports whether text names one of moves.
func ContainsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}
