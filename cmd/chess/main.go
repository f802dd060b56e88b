// chess plays a game in the terminal between any mix of human players and a
// UCI engine, with undo/redo, hints and PNG board snapshots.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/obslog"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/uci"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := play(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play sets up the players and runs the game loop.
func play(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	scanner := bufio.NewScanner(in)

	humans, humanSide, err := choosePlayers(scanner, out, *players, *side)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithCapacity(cfg.HistoryCapacity),
		session.WithHalfmoveLimit(cfg.DrawHalfmoveLimit),
		session.WithLogger(logger),
	}
	if *fen != "" {
		board, err := engine.NewBoardFromFEN(*fen)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithStartBoard(*board))
	}

	sess, err := session.New(opts...)
	if err != nil {
		return fmt.Errorf("-fen %q: %w", *fen, err)
	}

	g := &game{
		sess:   sess,
		out:    out,
		logger: logger,
		limits: uci.Limits{Depth: cfg.Engine.Depth, MoveTimeMillis: cfg.Engine.MoveTimeMillis},
		render: cfg.Render,
	}
	switch humans {
	case 0:
		g.engineSide = [2]bool{true, true}
	case 1:
		g.engineSide[humanSide.Opposite()] = true
	}

	if humans < 2 && !cfg.Engine.Enabled() {
		return fmt.Errorf("%d engine player(s) need an engine binary (set -engine or STOCKFISH_PATH)", 2-humans)
	}
	if cfg.Engine.Enabled() {
		eng, err := uci.NewSession(ctx, cfg.Engine.Path, uci.Options{
			Threads:    cfg.Engine.Threads,
			SkillLevel: cfg.Engine.SkillLevel,
			HashMB:     cfg.Engine.HashMB,
			MultiPV:    cfg.Engine.MultiPV,
		}, uci.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("start engine: %w", err)
		}
		defer func() { _ = eng.Close() }()
		if err := eng.NewGame(ctx); err != nil {
			return fmt.Errorf("start engine: %w", err)
		}
		g.engine = eng
	}

	logger.Info("game_start",
		zap.String("session_id", g.sess.ID()),
		zap.Int("humans", humans),
		zap.String("fen", g.sess.FEN()),
		zap.Bool("engine", g.engine != nil),
	)
	return g.run(ctx, scanner)
}

// choosePlayers resolves the number of human players and, for a single
// human, their colour. Values not given on the command line are asked for.
func choosePlayers(scanner *bufio.Scanner, out io.Writer, count int, colour string) (int, chess.Colour, error) {
	var err error
	if count < 0 {
		if count, err = askPlayers(scanner, out); err != nil {
			return 0, chess.White, err
		}
	}
	if count > 2 {
		return 0, chess.White, fmt.Errorf("%d players: at most 2 can play", count)
	}
	if count != 1 {
		return count, chess.White, nil
	}

	if colour != "" {
		c, err := parseSide(colour)
		return count, c, err
	}
	white, err := askYesNo(scanner, out, "play as white? [y/n]")
	if err != nil {
		return 0, chess.White, err
	}
	if white {
		return count, chess.White, nil
	}
	return count, chess.Black, nil
}

// askPlayers prompts until a player count between 0 and 2 is entered.
func askPlayers(scanner *bufio.Scanner, out io.Writer) (int, error) {
	for {
		fmt.Fprintln(out, "How many players:")
		if !scanner.Scan() {
			return 0, endOfInput(scanner)
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 0 && n <= 2 {
			return n, nil
		}
		fmt.Fprintln(out, "enter 0, 1 or 2")
	}
}

func askYesNo(scanner *bufio.Scanner, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprintln(out, prompt)
		if !scanner.Scan() {
			return false, endOfInput(scanner)
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func endOfInput(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}

func parseSide(s string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("side %q: want white or black", s)
	}
}
