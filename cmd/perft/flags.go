// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	fen        = flag.String("fen", "", "Position to count from (default: initial position)")
	depth      = flag.Int("depth", 4, "Search depth in plies")
	divide     = flag.Bool("divide", false, "Print the node count below each root move")
	workers    = flag.Int("workers", 0, "Worker goroutines for divide (0 = from config)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	version    = flag.Bool("version", false, "Print version and exit")
)

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
}
