// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	version    = flag.Bool("version", false, "Print version and exit")

	// Players
	players = flag.Int("players", -1, "Number of human players, 0-2 (default: ask)")
	side    = flag.String("side", "", "Side played by a single human: white or black (default: ask)")
	fen     = flag.String("fen", "", "Starting position (default: initial position)")

	// Engine
	enginePath = flag.String("engine", "", "UCI engine binary (overrides STOCKFISH_PATH)")
	depth      = flag.Int("depth", 0, "Engine search depth")
	moveTime   = flag.Int("movetime", 0, "Engine time per move in milliseconds")
	skill      = flag.Int("skill", -1, "Engine skill level 0-20")

	// Game
	history = flag.Int("history", -1, "Undo history capacity (0 = unlimited)")

	// Output
	squareSize = flag.Int("square-size", 0, "Square size of rendered boards in pixels")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFile    = flag.String("log-file", "", "Write logs to this file")
)

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cfg *config.Config) {
	if *enginePath != "" {
		cfg.Engine.Path = *enginePath
	}
	if *depth > 0 {
		cfg.Engine.Depth = *depth
	}
	if *moveTime > 0 {
		cfg.Engine.MoveTimeMillis = *moveTime
	}
	if *skill >= 0 {
		cfg.Engine.SkillLevel = *skill
	}
	if *history >= 0 {
		cfg.HistoryCapacity = *history
	}
	if *squareSize > 0 {
		cfg.Render.SquareSize = *squareSize
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
		cfg.Log.Console = false
	}
}
