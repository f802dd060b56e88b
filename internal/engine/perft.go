package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Every branch is played on its own copy; board is not modified.
func Perft(board *chess.Board, depth int) uint64 {
	nodes, _ := PerftContext(context.Background(), board, depth)
	return nodes
}

// PerftContext is Perft that stops with ctx.Err() once ctx is done. ctx is
// polled at every node two or more plies above the leaves.
func PerftContext(ctx context.Context, board *chess.Board, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := GenerateLegal(board)
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, move := range moves {
		child := board.Copy()
		ForceMove(&child, move)
		n, err := PerftContext(ctx, &child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the perft count below each legal root move, sorted by
// move text.
func PerftDivide(board *chess.Board, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := GenerateLegal(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		child := board.Copy()
		ForceMove(&child, move)
		entries = append(entries, DivideEntry{Move: move, Nodes: Perft(&child, depth-1)})
	}
	sortDivide(entries)
	return entries
}

// PerftDivideParallel is PerftDivide with the root moves spread over
// workers goroutines (one per CPU when workers < 1). When ctx is done the
// running subtrees stop early and ctx.Err() is returned. A root position
// that fails ValidatePosition is returned as an error before any counting.
func PerftDivideParallel(ctx context.Context, board *chess.Board, depth, workers int) ([]DivideEntry, error) {
	if err := ValidatePosition(board); err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, nil
	}

	moves := GenerateLegal(board)
	subtrees := make([]worker.Subtree, len(moves))
	for i, move := range moves {
		subtrees[i] = worker.Subtree{Board: board.Copy(), Move: move, Depth: depth - 1}
		ForceMove(&subtrees[i].Board, move)
	}

	counts, err := worker.New(countSubtree, worker.WithWorkers(workers)).Run(ctx, subtrees)
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(counts))
	for i, c := range counts {
		if c.Err != nil {
			return nil, c.Err
		}
		entries[i] = DivideEntry{Move: c.Move, Nodes: c.Nodes}
	}
	sortDivide(entries)
	return entries, nil
}

// countSubtree runs PerftContext on one subtree.
func countSubtree(ctx context.Context, st worker.Subtree) worker.Count {
	nodes, err := PerftContext(ctx, &st.Board, st.Depth)
	return worker.Count{Move: st.Move, Nodes: nodes, Err: err}
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

func sortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
}
