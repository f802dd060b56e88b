package uci

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// MateScore is the centipawn value reported for a forced mate.
const MateScore = 30000

// Options are sent to the engine with setoption after the handshake.
type Options struct {
	Threads    int
	SkillLevel int
	HashMB     int
	MultiPV    int

	// Elo limits playing strength when positive.
	Elo int
}

// Limits bound a single search. At least one must be positive.
type Limits struct {
	Depth          int
	MoveTimeMillis int
	NodeCap        int
}

// Candidate is one principal variation reported by the engine.
type Candidate struct {
	Move      string
	EvalCP    int
	Mate      int
	Principal []string
}

// Line converts the principal variation to moves. Conversion stops at the
// first entry that is not coordinate notation.
func (c Candidate) Line() []chess.Move {
	line := make([]chess.Move, 0, len(c.Principal))
	for _, text := range c.Principal {
		move, err := notation.ParseMove(text)
		if err != nil {
			break
		}
		line = append(line, move)
	}
	return line
}

// SearchRequest describes the position to search and how long to search it.
type SearchRequest struct {
	// FEN is the root position; empty means the standard start position.
	FEN   string
	Moves []string

	Limits Limits

	// GoOverrides replaces the go command built from Limits.
	GoOverrides []string
}

// SearchResponse holds the engine's answer, candidates ordered by multipv.
type SearchResponse struct {
	Candidates []Candidate
	BestMove   string
}

func validateOptions(opt Options) error {
	if opt.SkillLevel < 0 || opt.SkillLevel > 20 {
		return fmt.Errorf("skill level %d out of range 0-20: %w", opt.SkillLevel, errors.ErrInvalidConfig)
	}
	if opt.HashMB <= 0 {
		return fmt.Errorf("hash size must be > 0: %d: %w", opt.HashMB, errors.ErrInvalidConfig)
	}
	if opt.MultiPV <= 0 {
		return fmt.Errorf("multipv must be > 0: %d: %w", opt.MultiPV, errors.ErrInvalidConfig)
	}
	if opt.Elo < 0 {
		return fmt.Errorf("elo must be >= 0: %d: %w", opt.Elo, errors.ErrInvalidConfig)
	}
	return nil
}

// optionCommands returns the setoption lines for opt.
func optionCommands(opt Options) []string {
	threads := opt.Threads
	if threads <= 0 {
		threads = 1
	}
	cmds := []string{
		fmt.Sprintf("setoption name Threads value %d", threads),
		fmt.Sprintf("setoption name Hash value %d", opt.HashMB),
		fmt.Sprintf("setoption name Skill Level value %d", opt.SkillLevel),
		fmt.Sprintf("setoption name MultiPV value %d", opt.MultiPV),
	}
	if opt.Elo > 0 {
		cmds = append(cmds,
			"setoption name UCI_LimitStrength value true",
			fmt.Sprintf("setoption name UCI_Elo value %d", opt.Elo),
		)
	}
	return cmds
}

func buildPositionCommand(fen string, moves []string) string {
	var sb strings.Builder
	if strings.TrimSpace(fen) == "" || fen == "startpos" {
		sb.WriteString("position startpos")
	} else {
		sb.WriteString("position fen ")
		sb.WriteString(strings.TrimSpace(fen))
	}
	if len(moves) > 0 {
		sb.WriteString(" moves ")
		sb.WriteString(strings.Join(moves, " "))
	}
	return sb.String()
}

func buildGoTokens(l Limits) ([]string, error) {
	args := []string{"go"}
	if l.Depth > 0 {
		args = append(args, "depth", strconv.Itoa(l.Depth))
	}
	if l.MoveTimeMillis > 0 {
		args = append(args, "movetime", strconv.Itoa(l.MoveTimeMillis))
	}
	if l.NodeCap > 0 {
		args = append(args, "nodes", strconv.Itoa(l.NodeCap))
	}
	if len(args) == 1 {
		return nil, fmt.Errorf("no search limits specified: %w", errors.ErrInvalidConfig)
	}
	return args, nil
}

// computeSearchTimeout returns how long to wait for bestmove.
func computeSearchTimeout(l Limits) time.Duration {
	if l.MoveTimeMillis > 0 {
		return time.Duration(l.MoveTimeMillis+2000) * time.Millisecond * 3
	}
	if l.Depth > 0 {
		base := time.Duration(l.Depth) * 300 * time.Millisecond
		if base < 6*time.Second {
			base = 6 * time.Second
		}
		if base > 20*time.Second {
			base = 20 * time.Second
		}
		return base
	}
	return 6 * time.Second
}

// parseInfo extracts the multipv index and candidate from an info line.
// Lines without a pv are ignored.
func parseInfo(line string) (int, Candidate, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 || parts[0] != "info" {
		return 0, Candidate{}, false
	}
	var (
		multipv = 1
		cand    Candidate
		pvIdx   = -1
	)

	for i := 1; i < len(parts) && pvIdx == -1; i++ {
		switch parts[i] {
		case "string":
			return 0, Candidate{}, false
		case "multipv":
			if i+1 < len(parts) {
				if v, err := strconv.Atoi(parts[i+1]); err == nil {
					multipv = v
				}
				i++
			}
		case "score":
			if i+2 < len(parts) {
				v, err := strconv.Atoi(parts[i+2])
				if err == nil {
					switch parts[i+1] {
					case "cp":
						cand.EvalCP = v
					case "mate":
						cand.Mate = v
						cand.EvalCP = MateScore
						if v < 0 {
							cand.EvalCP = -MateScore
						}
					}
				}
				i += 2
			}
		case "pv":
			pvIdx = i + 1
		}
	}

	if pvIdx == -1 || pvIdx >= len(parts) {
		return 0, Candidate{}, false
	}
	cand.Principal = append([]string(nil), parts[pvIdx:]...)
	cand.Move = cand.Principal[0]
	return multipv, cand, true
}

func collapseCandidates(m map[int]Candidate) []Candidate {
	if len(m) == 0 {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	result := make([]Candidate, 0, len(keys))
	for _, k := range keys {
		result = append(result, m[k])
	}
	return result
}

// parseBestMove returns the move from a bestmove line.
func parseBestMove(line string) (string, bool) {
	parts := strings.Fields(line)
	if len(parts) < 2 || parts[0] != "bestmove" {
		return "", false
	}
	return parts[1], true
}
