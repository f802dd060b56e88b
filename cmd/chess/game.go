package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/render"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/uci"
)

// enginePlayer is the part of a UCI session the game loop drives.
type enginePlayer interface {
	BestMove(ctx context.Context, fen string, limits uci.Limits) (chess.Move, error)
	Search(ctx context.Context, req uci.SearchRequest) (uci.SearchResponse, error)
	NewGame(ctx context.Context) error
}

// game runs the command loop for one terminal.
type game struct {
	sess   *session.Session
	out    io.Writer
	logger *zap.Logger

	// engine is nil when no engine binary is configured.
	engine     enginePlayer
	engineSide [2]bool // indexed by chess.Colour
	limits     uci.Limits

	render config.RenderConfig

	// hint holds the candidate moves of the last hint, drawn as arrows by
	// the render command until the position changes.
	hint []chess.Move
}

const helpText = `commands:
  <move>, move <move>   play a move in coordinate notation, e.g. e2e4 or a7a8q
  undo, redo            step through the move history
  moves                 list the legal moves
  board                 print the board
  fen                   print the position in FEN
  status                print the game status
  history               print the moves played
  hint                  ask the engine for candidate moves
  render <file.png>     write the board as a PNG image
  new                   start a new game
  help                  show this text
  quit                  leave the program`

func (g *game) humans() int {
	n := 0
	for _, engineMoves := range g.engineSide {
		if !engineMoves {
			n++
		}
	}
	return n
}

func (g *game) toMove() chess.Colour {
	board := g.sess.Board()
	return board.ToMove
}

// run plays engine turns and reads human commands from scanner until the
// input ends, a quit command is read, or an engine-only game finishes.
func (g *game) run(ctx context.Context, scanner *bufio.Scanner) error {
	g.showPosition()
	for {
		if err := g.playEngineTurns(ctx); err != nil {
			return err
		}
		if g.humans() == 0 {
			return nil
		}

		fmt.Fprintln(g.out, "enter player command:")
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := g.execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// playEngineTurns lets the engine move while it has the move and the game
// is not over.
func (g *game) playEngineTurns(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.sess.Status().IsOver() || !g.engineSide[g.toMove()] {
			return nil
		}
		if err := g.engineMove(ctx); err != nil {
			return err
		}
	}
}

func (g *game) engineMove(ctx context.Context) error {
	fen := g.sess.FEN()
	move, err := g.engine.BestMove(ctx, fen, g.limits)
	if err != nil {
		return fmt.Errorf("engine move in %q: %w", fen, err)
	}

	played, err := g.sess.AttemptMove(move)
	if err != nil {
		g.logger.Error("engine_move_rejected", zap.String("move", move.String()), zap.String("fen", fen), zap.Error(err))
		return fmt.Errorf("engine played %s in %q: %w: %w", move, fen, err, errors.ErrEngine)
	}
	if !played {
		g.logger.Error("engine_move_rejected", zap.String("move", move.String()), zap.String("fen", fen))
		return fmt.Errorf("engine played illegal %s in %q: %w", move, fen, errors.ErrEngine)
	}

	fmt.Fprintf(g.out, "%s plays %s\n", strings.ToLower(g.toMove().Opposite().String()), move)
	g.positionChanged()
	return nil
}

// execute runs one command line. Mistakes are reported to the player; only
// engine failures and cancellation are returned.
func (g *game) execute(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(g.out, helpText)
	case "move":
		if len(args) != 1 {
			fmt.Fprintln(g.out, "usage: move <move>")
			return false, nil
		}
		g.humanMove(args[0])
	case "undo":
		g.step(g.sess.Undo, "nothing to undo")
	case "redo":
		g.step(g.sess.Redo, "nothing to redo")
	case "moves":
		fmt.Fprintln(g.out, notation.FormatMoves(g.sess.LegalMoves()))
	case "board":
		board := g.sess.Board()
		writeBoard(g.out, &board)
	case "fen":
		fmt.Fprintln(g.out, g.sess.FEN())
	case "status":
		g.printStatus()
	case "history":
		fmt.Fprintln(g.out, g.formatHistory())
	case "hint":
		return false, g.showHint(ctx)
	case "render":
		if len(args) != 1 {
			fmt.Fprintln(g.out, "usage: render <file.png>")
			return false, nil
		}
		return false, g.renderTo(ctx, args[0])
	case "new":
		return false, g.newGame(ctx)
	default:
		if len(args) == 0 {
			if _, perr := notation.ParseMove(cmd); perr == nil {
				g.humanMove(cmd)
				return false, nil
			}
		}
		fmt.Fprintf(g.out, "unknown command %q (try help)\n", fields[0])
	}
	return false, nil
}

func (g *game) humanMove(text string) {
	if g.sess.Status().IsOver() {
		fmt.Fprintln(g.out, "the game is over")
		return
	}
	move, err := notation.ParseMove(text)
	if err != nil {
		fmt.Fprintf(g.out, "invalid move: %v\n", err)
		return
	}
	played, err := g.sess.AttemptMove(move)
	switch {
	case err != nil:
		fmt.Fprintf(g.out, "invalid move: %v\n", err)
	case !played:
		fmt.Fprintln(g.out, "invalid move")
	default:
		g.positionChanged()
	}
}

// step undoes or redoes one ply, or two when a single human plays an engine
// so that the human gets the move back.
func (g *game) step(fn func() bool, empty string) {
	if !fn() {
		fmt.Fprintln(g.out, empty)
		return
	}
	if g.humans() == 1 {
		fn()
	}
	g.positionChanged()
}

// positionChanged prints the new position and its outcome.
func (g *game) positionChanged() {
	g.hint = nil
	g.showPosition()
}

func (g *game) showPosition() {
	board := g.sess.Board()
	writeBoard(g.out, &board)

	status := g.sess.Status()
	if status.IsOver() {
		fmt.Fprintln(g.out, outcomeMessage(status, board.ToMove))
		g.logger.Info("game_over",
			zap.String("session_id", g.sess.ID()),
			zap.String("status", status.String()),
			zap.String("result", status.Result(board.ToMove)),
			zap.Int("ply", g.sess.Ply()),
		)
		return
	}
	if g.sess.InCheck() {
		fmt.Fprintln(g.out, "check")
	}
}

// outcomeMessage describes a finished game; toMove is the side to move in
// the final position.
func outcomeMessage(status engine.GameStatus, toMove chess.Colour) string {
	switch status {
	case engine.StatusCheckmate:
		return fmt.Sprintf("checkmate -- %s wins", strings.ToLower(toMove.Opposite().String()))
	case engine.StatusStalemate:
		return "stalemate"
	case engine.StatusDrawByHalfmoveLimit:
		return "stalemate -- too many moves without pawn advance or capture"
	case engine.StatusDrawByInsufficientMaterial:
		return "draw -- insufficient material"
	case engine.StatusDrawByRepetition:
		return "draw -- position repeated three times"
	default:
		return status.String()
	}
}

func (g *game) printStatus() {
	board := g.sess.Board()
	status := g.sess.Status()

	fmt.Fprintf(g.out, "status: %s\n", status)
	fmt.Fprintf(g.out, "to move: %s\n", strings.ToLower(board.ToMove.String()))
	fmt.Fprintf(g.out, "ply: %d\n", g.sess.Ply())
	if status.IsOver() {
		fmt.Fprintf(g.out, "result: %s\n", status.Result(board.ToMove))
	} else if g.sess.InCheck() {
		fmt.Fprintln(g.out, "in check")
	}

	rules, err := g.sess.DrawRules()
	if err != nil {
		g.logger.Warn("draw_rules_failed", zap.Error(err))
		return
	}
	if rules.HasThreefoldRepetition {
		fmt.Fprintln(g.out, "a position has occurred three times")
	}
	if rules.Has5FoldRepetition {
		fmt.Fprintln(g.out, "a position has occurred five times")
	}
	if rules.Has75MoveRule {
		fmt.Fprintln(g.out, "75 moves without pawn advance or capture")
	}
	if rules.HalfmoveLimitReached {
		fmt.Fprintln(g.out, "halfmove clock passed the draw limit")
	}
	if rules.HasMaterialOdds {
		fmt.Fprintln(g.out, "started without the standard material")
	}
}

// formatHistory numbers the recorded moves in pairs, e.g.
// "1. e2e4 e7e5 2. O-O d8h4#". Castling is written O-O or O-O-O and a move
// giving check or mate carries + or #.
func (g *game) formatHistory() string {
	records := g.sess.Records()
	if len(records) == 0 {
		return "no moves"
	}

	first := g.toMove()
	if len(records)%2 == 1 {
		first = first.Opposite()
	}

	var sb strings.Builder
	number := 1
	i := 0
	if first == chess.Black {
		fmt.Fprintf(&sb, "1... %s", recordText(records[0]))
		number, i = 2, 1
	}
	for ; i < len(records); i += 2 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d. %s", number, recordText(records[i]))
		if i+1 < len(records) {
			fmt.Fprintf(&sb, " %s", recordText(records[i+1]))
		}
		number++
	}
	return sb.String()
}

// recordText is the history text of one move.
func recordText(r session.Record) string {
	text := r.Move.String()
	switch r.Class {
	case chess.KingsideCastle:
		text = "O-O"
	case chess.QueensideCastle:
		text = "O-O-O"
	}
	return text + r.Check.Suffix()
}

func (g *game) showHint(ctx context.Context) error {
	if g.engine == nil {
		fmt.Fprintln(g.out, "no engine configured")
		return nil
	}
	if g.sess.Status().IsOver() {
		fmt.Fprintln(g.out, "the game is over")
		return nil
	}

	resp, err := g.engine.Search(ctx, uci.SearchRequest{FEN: g.sess.FEN(), Limits: g.limits})
	if err != nil {
		return fmt.Errorf("hint: %w", err)
	}

	g.hint = g.hint[:0]
	for i, c := range resp.Candidates {
		line := c.Line()
		if len(line) == 0 {
			continue
		}
		g.hint = append(g.hint, line[0])
		fmt.Fprintf(g.out, "%d. %s (%s) %s\n", i+1, line[0], formatScore(c), notation.FormatMoves(line))
	}
	if len(g.hint) == 0 {
		fmt.Fprintf(g.out, "engine suggests %s\n", resp.BestMove)
	}
	return nil
}

func formatScore(c uci.Candidate) string {
	if c.Mate != 0 {
		return fmt.Sprintf("mate %d", c.Mate)
	}
	return fmt.Sprintf("%+.2f", float64(c.EvalCP)/100)
}

func (g *game) renderTo(ctx context.Context, path string) error {
	board := g.sess.Board()
	opts := render.Options{
		SquareSize:  g.render.SquareSize,
		Coordinates: g.render.Coordinates,
		Flip:        g.humans() == 1 && g.engineSide[chess.White],
		Overlay:     g.hint,
	}
	if last, ok := g.sess.LastMove(); ok {
		opts.Highlight = &last
	}

	data, err := render.RenderPNG(ctx, &board, opts)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		fmt.Fprintf(g.out, "render failed: %v\n", err)
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(g.out, "render failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(g.out, "wrote %s\n", path)
	return nil
}

func (g *game) newGame(ctx context.Context) error {
	g.sess.Reset()
	if g.engine != nil {
		if err := g.engine.NewGame(ctx); err != nil {
			return fmt.Errorf("new game: %w", err)
		}
	}
	g.positionChanged()
	return nil
}
