package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func scannerOf(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestChoosePlayers(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		count      int
		colour     string
		wantHumans int
		wantSide   chess.Colour
		wantErr    bool
	}{
		{name: "ask two", input: "2\n", count: -1, wantHumans: 2, wantSide: chess.White},
		{name: "ask one as black", input: "1\nn\n", count: -1, wantHumans: 1, wantSide: chess.Black},
		{name: "retry bad answers", input: "5\nx\n1\nmaybe\nyes\n", count: -1, wantHumans: 1, wantSide: chess.White},
		{name: "flags only", count: 1, colour: "black", wantHumans: 1, wantSide: chess.Black},
		{name: "no players", count: 0, wantHumans: 0, wantSide: chess.White},
		{name: "too many", count: 3, wantErr: true},
		{name: "bad side", count: 1, colour: "green", wantErr: true},
		{name: "input ends", input: "", count: -1, wantErr: true},
		{name: "input ends at side", input: "1\n", count: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			humans, side, err := choosePlayers(scannerOf(tt.input), io.Discard, tt.count, tt.colour)
			if tt.wantErr {
				testutil.AssertError(t, err)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, humans, tt.wantHumans)
			testutil.AssertEqual(t, side, tt.wantSide)
		})
	}
}

func TestAskPlayers_Prompts(t *testing.T) {
	var out bytes.Buffer
	n, err := askPlayers(scannerOf("three\n0\n"), &out)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 0)
	testutil.AssertEqual(t, strings.Count(out.String(), "How many players:"), 2)
	testutil.AssertContains(t, out.String(), "enter 0, 1 or 2")
}

func TestEndOfInput(t *testing.T) {
	_, err := askPlayers(scannerOf(""), io.Discard)
	testutil.AssertErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseSide(t *testing.T) {
	for _, s := range []string{"white", "W", " White "} {
		c, err := parseSide(s)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, c, chess.White, s)
	}
	c, err := parseSide("b")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, c, chess.Black)
}

func TestPlay_TwoHumans(t *testing.T) {
	*players = 2
	t.Cleanup(func() { *players = -1 })

	var out bytes.Buffer
	err := play(context.Background(), config.NewConfig(), strings.NewReader("e2e4\nfen\nquit\n"), &out, zap.NewNop())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestPlay_StartFEN(t *testing.T) {
	*players, *fen = 2, "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	t.Cleanup(func() { *players, *fen = -1, "" })

	var out bytes.Buffer
	err := play(context.Background(), config.NewConfig(), strings.NewReader("e1g1\nfen\n"), &out, zap.NewNop())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "4k3/8/8/8/8/8/8/5RK1 b - - 1 1")
}

func TestPlay_Errors(t *testing.T) {
	t.Run("engine player without engine", func(t *testing.T) {
		*players, *side = 1, "white"
		t.Cleanup(func() { *players, *side = -1, "" })

		err := play(context.Background(), config.NewConfig(), strings.NewReader(""), io.Discard, zap.NewNop())
		testutil.AssertError(t, err)
		testutil.AssertContains(t, err.Error(), "STOCKFISH_PATH")
	})

	t.Run("bad start position", func(t *testing.T) {
		*players, *fen = 2, "not a fen"
		t.Cleanup(func() { *players, *fen = -1, "" })

		err := play(context.Background(), config.NewConfig(), strings.NewReader(""), io.Discard, zap.NewNop())
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
	})

	t.Run("start position without a king", func(t *testing.T) {
		*players, *fen = 2, "4k3/8/8/8/8/8/8/8 w - - 0 1"
		t.Cleanup(func() { *players, *fen = -1, "" })

		var out bytes.Buffer
		err := play(context.Background(), config.NewConfig(), strings.NewReader("e1e2\n"), &out, zap.NewNop())
		testutil.AssertErrorIs(t, err, chesserrors.ErrNoKing)
		testutil.AssertContains(t, err.Error(), "-fen")
		testutil.AssertEqual(t, out.String(), "")
	})
}

func TestApplyFlags(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)
	testutil.AssertEqual(t, cfg.HistoryCapacity, config.DefaultHistoryCapacity, "unset flags keep config")
	testutil.AssertTrue(t, cfg.Log.Console)

	*history, *enginePath, *logFile = 0, "/usr/bin/stockfish", "chess.log"
	t.Cleanup(func() { *history, *enginePath, *logFile = -1, "", "" })

	applyFlags(cfg)
	testutil.AssertEqual(t, cfg.HistoryCapacity, 0)
	testutil.AssertEqual(t, cfg.Engine.Path, "/usr/bin/stockfish")
	testutil.AssertEqual(t, cfg.Log.File, "chess.log")
	testutil.AssertFalse(t, cfg.Log.Console)
}
