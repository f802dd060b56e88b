// perft counts the leaf nodes of the legal move tree of a position, the
// standard check of a move generator against published reference values.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/obslog"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logger, err := obslog.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	board, err := startPosition(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	job := perftJob{board: board, depth: *depth, divide: *divide, workers: cfg.Perft.Workers}
	if err := job.run(ctx, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startPosition parses and validates fen, or returns the initial position
// when it is empty.
func startPosition(fen string) (*chess.Board, error) {
	if fen == "" {
		return chess.NewInitialBoard(), nil
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := engine.ValidatePosition(board); err != nil {
		return nil, fmt.Errorf("-fen %q: %w", fen, err)
	}
	return board, nil
}

// perftJob is a single perft or divide run.
type perftJob struct {
	board   *chess.Board
	depth   int
	divide  bool
	workers int
}

// run counts the tree and writes the report to w.
func (j perftJob) run(ctx context.Context, w io.Writer, logger *zap.Logger) error {
	if j.depth < 0 {
		return fmt.Errorf("depth %d is negative", j.depth)
	}
	fen := engine.BoardToFEN(j.board)
	logger.Info("perft_start",
		zap.String("fen", fen),
		zap.Int("depth", j.depth),
		zap.Bool("divide", j.divide),
		zap.Int("workers", j.workers),
	)

	start := time.Now()
	nodes := uint64(1)
	if j.depth > 0 {
		entries, err := engine.PerftDivideParallel(ctx, j.board, j.depth, j.workers)
		if err != nil {
			return fmt.Errorf("perft: %w", err)
		}
		if j.divide {
			for _, e := range entries {
				fmt.Fprintf(w, "%s: %d\n", notation.FormatMove(e.Move), e.Nodes)
			}
			fmt.Fprintf(w, "\nMoves: %d\n", len(entries))
		}
		nodes = engine.TotalNodes(entries)
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "Nodes: %d\n", nodes)
	logger.Info("perft_done",
		zap.Uint64("nodes", nodes),
		zap.Duration("elapsed", elapsed),
		zap.Float64("nps", nodesPerSecond(nodes, elapsed)),
	)
	return nil
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}
