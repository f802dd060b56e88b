// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist keys, indexed by colour, piece kind and square.
var (
	pieceKeys     [2][chess.NumPieceValues][chess.NumSquares]uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	// Fixed seed so keys are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range pieceKeys {
		for p := chess.Pawn; p < chess.NumPieceValues; p++ {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	blackToMove = rnd.Uint64()
}

// GenerateZobristHash returns the Zobrist key of the position: placement,
// side to move, castling rights and en passant file. The en passant file
// counts only when a pawn of the side to move stands beside the double-pushed
// pawn; otherwise the same placement reached by a single push would differ.
// Clocks are ignored, so repeated positions share a key.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64

	for sq, piece := range board.Squares {
		if !piece.IsEmpty() {
			key ^= pieceKeys[piece.Colour][piece.Piece][sq]
		}
	}

	if board.ToMove == chess.Black {
		key ^= blackToMove
	}

	rights := [4]bool{
		board.Castling.WhiteKingside,
		board.Castling.WhiteQueenside,
		board.Castling.BlackKingside,
		board.Castling.BlackQueenside,
	}
	for i, set := range rights {
		if set {
			key ^= castlingKeys[i]
		}
	}

	if enPassantCapturable(board) {
		key ^= enPassantKeys[board.EnPassant.File()]
	}

	return key
}

// enPassantCapturable reports whether a pawn of the side to move is placed
// to capture on the en passant square. Pins are not considered.
func enPassantCapturable(board *chess.Board) bool {
	ep := board.EnPassant
	if !ep.Valid() {
		return false
	}
	// The capturing pawn stands one row behind the target, seen from the mover.
	row := ep.Row() - chess.Forward(board.ToMove)/chess.BoardSize
	if row < 0 || row >= chess.BoardSize {
		return false
	}
	pawn := chess.MakeColouredPiece(board.ToMove, chess.Pawn)
	for _, file := range []int{ep.File() - 1, ep.File() + 1} {
		if file >= 0 && file < chess.BoardSize && board.Get(chess.SquareAt(file, row)) == pawn {
			return true
		}
	}
	return false
}

// WeakHash returns a cheap placement-only hash used to confirm Zobrist
// matches.
func WeakHash(board *chess.Board) uint32 {
	var h uint32 = 2166136261
	for _, piece := range board.Squares {
		h ^= uint32(piece.Piece)<<1 | uint32(piece.Colour)
		h *= 16777619
	}
	return h
}

// PositionSignature identifies a position for repetition counting.
type PositionSignature struct {
	// Hash is the Zobrist key of the position.
	Hash uint64
	// WeakHash is the placement hash for additional confidence.
	WeakHash uint32
}

// SignatureOf returns the signature of the position.
func SignatureOf(board *chess.Board) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}
}

// RepetitionTracker counts how often each position has occurred.
type RepetitionTracker struct {
	counts   map[PositionSignature]int
	maxCount int
	total    int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[PositionSignature]int),
	}
}

// Add records one occurrence of the position and returns how many times it
// has now been seen.
func (r *RepetitionTracker) Add(board *chess.Board) int {
	sig := SignatureOf(board)
	r.counts[sig]++
	r.total++
	n := r.counts[sig]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Count returns how many times the position has been recorded.
func (r *RepetitionTracker) Count(board *chess.Board) int {
	return r.counts[SignatureOf(board)]
}

// MaxCount returns the highest occurrence count of any position.
func (r *RepetitionTracker) MaxCount() int {
	return r.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTracker) UniqueCount() int {
	return len(r.counts)
}

// Total returns the number of positions recorded, repeats included.
func (r *RepetitionTracker) Total() int {
	return r.total
}

// Reset clears the tracker.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[PositionSignature]int)
	r.maxCount = 0
	r.total = 0
}
