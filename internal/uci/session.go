// Package uci drives an external chess engine over the UCI protocol. The
// engine runs as a subprocess; commands go to its stdin and a single reader
// goroutine collects its stdout. Every read is bounded by a context.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

const (
	defaultReadyTimeout  = 4 * time.Second
	stopDrainTimeout     = time.Second
	quitTimeout          = time.Second
	newGameRetryAttempts = 3
	newGameRetryDelay    = 150 * time.Millisecond
	lineBuffer           = 256
)

// Session is a running engine process.
type Session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	logger *zap.Logger

	lines   chan string
	readErr error
	done    chan struct{}

	mu        sync.Mutex
	search    sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// SessionOption configures how the engine process is started.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	logger *zap.Logger
	args   []string
	env    []string
}

// WithLogger sets the logger for protocol traffic.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(c *sessionConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithArgs passes command-line arguments to the engine binary.
func WithArgs(args ...string) SessionOption {
	return func(c *sessionConfig) {
		c.args = append(c.args, args...)
	}
}

// WithEnv appends KEY=value entries to the engine's environment.
func WithEnv(env ...string) SessionOption {
	return func(c *sessionConfig) {
		c.env = append(c.env, env...)
	}
}

// NewSession starts the engine at binaryPath, completes the uci handshake
// and applies opt. The process is killed when ctx is cancelled.
func NewSession(ctx context.Context, binaryPath string, opt Options, opts ...SessionOption) (*Session, error) {
	if err := validateOptions(opt); err != nil {
		return nil, err
	}

	cfg := sessionConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}

	cmd := exec.CommandContext(ctx, binaryPath, cfg.args...)
	if len(cfg.env) > 0 {
		cmd.Env = append(os.Environ(), cfg.env...)
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdin pipe: %w", err)
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		stdin.Close()
		stdoutPipe.Close()
		return nil, fmt.Errorf("start engine %s: %w", binaryPath, err)
	}

	s := &Session{
		cmd:    cmd,
		stdin:  stdin,
		logger: cfg.logger.With(zap.String("engine", binaryPath), zap.Int("pid", cmd.Process.Pid)),
		lines:  make(chan string, lineBuffer),
		done:   make(chan struct{}),
	}
	go s.pump(stdoutPipe)

	if err := s.initialize(ctx, opt); err != nil {
		s.Close()
		return nil, err
	}
	s.logger.Info("uci_session_start")
	return s, nil
}

// pump forwards engine output lines until the pipe closes or the session
// is closed.
func (s *Session) pump(r io.Reader) {
	defer close(s.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		select {
		case s.lines <- line:
		case <-s.done:
			return
		}
	}
	s.readErr = scanner.Err()
}

// Search sends the position and go command and collects info lines until
// bestmove. If ctx ends first the engine is told to stop and its pending
// output is discarded.
func (s *Session) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	s.search.Lock()
	defer s.search.Unlock()

	goTokens := req.GoOverrides
	if len(goTokens) == 0 {
		var err error
		goTokens, err = buildGoTokens(req.Limits)
		if err != nil {
			return SearchResponse{}, err
		}
	}

	positionCmd := buildPositionCommand(req.FEN, req.Moves)
	if err := s.send(positionCmd); err != nil {
		return SearchResponse{}, fmt.Errorf("send position: %w", err)
	}
	goCmd := strings.Join(goTokens, " ")
	if err := s.send(goCmd); err != nil {
		return SearchResponse{}, fmt.Errorf("send go: %w", err)
	}

	searchCtx, cancel := context.WithTimeout(ctx, computeSearchTimeout(req.Limits))
	defer cancel()

	candidates := make(map[int]Candidate)
	for {
		line, err := s.readLine(searchCtx)
		if err != nil {
			s.logger.Warn("uci_search_failed",
				zap.String("position", positionCmd),
				zap.String("go", goCmd),
				zap.Error(err),
			)
			if searchCtx.Err() != nil {
				s.abandonSearch()
			}
			return SearchResponse{}, fmt.Errorf("read search output: %w", err)
		}

		switch {
		case strings.HasPrefix(line, "info "):
			if mv, cand, ok := parseInfo(line); ok {
				candidates[mv] = cand
			}
		case strings.HasPrefix(line, "bestmove"):
			best, _ := parseBestMove(line)
			resp := SearchResponse{Candidates: collapseCandidates(candidates), BestMove: best}
			s.logger.Debug("uci_search_done",
				zap.String("bestmove", best),
				zap.Int("candidates", len(resp.Candidates)),
			)
			return resp, nil
		}
	}
}

// abandonSearch stops a search whose caller gave up and drains output up to
// its bestmove so the next command sees a clean stream.
func (s *Session) abandonSearch() {
	if err := s.send("stop"); err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopDrainTimeout)
	defer cancel()
	for {
		line, err := s.readLine(ctx)
		if err != nil || strings.HasPrefix(line, "bestmove") {
			return
		}
	}
}

// BestMove searches fen with limits and returns the engine's choice.
// An engine reporting no move, as in a finished game, gives an error
// wrapping errors.ErrEngine.
func (s *Session) BestMove(ctx context.Context, fen string, limits Limits) (chess.Move, error) {
	resp, err := s.Search(ctx, SearchRequest{FEN: fen, Limits: limits})
	if err != nil {
		return chess.Move{}, err
	}
	if resp.BestMove == "" || resp.BestMove == "(none)" || resp.BestMove == "0000" {
		return chess.Move{}, fmt.Errorf("engine returned no move for %q: %w", fen, errors.ErrEngine)
	}
	move, err := notation.ParseMove(resp.BestMove)
	if err != nil {
		return chess.Move{}, fmt.Errorf("engine bestmove %q: %v: %w", resp.BestMove, err, errors.ErrEngine)
	}
	return move, nil
}

// EnsureReady waits for the engine to answer isready.
func (s *Session) EnsureReady(ctx context.Context) error {
	readyCtx, cancel := context.WithTimeout(ctx, defaultReadyTimeout)
	defer cancel()

	if err := s.send("isready"); err != nil {
		return fmt.Errorf("send isready: %w", err)
	}
	if err := s.awaitToken(readyCtx, "readyok"); err != nil {
		return fmt.Errorf("wait readyok: %w", err)
	}
	return nil
}

// NewGame tells the engine a new game starts and waits until it is ready.
func (s *Session) NewGame(ctx context.Context) error {
	if err := s.send("ucinewgame"); err != nil {
		return fmt.Errorf("send ucinewgame: %w", err)
	}

	for attempt := 1; attempt <= newGameRetryAttempts; attempt++ {
		err := s.EnsureReady(ctx)
		if err == nil {
			return nil
		}
		if attempt == newGameRetryAttempts {
			return err
		}
		s.logger.Warn("uci_ready_retry",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", newGameRetryAttempts),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(newGameRetryDelay):
		}
	}
	return nil
}

// Close asks the engine to quit and waits for it to exit, killing it if it
// does not exit within a second. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		_ = s.send("quit")

		s.mu.Lock()
		s.stdin.Close()
		s.mu.Unlock()
		close(s.done)

		exited := make(chan error, 1)
		go func() { exited <- s.cmd.Wait() }()

		select {
		case s.closeErr = <-exited:
		case <-time.After(quitTimeout):
			s.logger.Warn("uci_kill", zap.Duration("after", quitTimeout))
			_ = s.cmd.Process.Kill()
			<-exited
		}
		s.logger.Info("uci_session_close")
	})
	return s.closeErr
}

func (s *Session) initialize(ctx context.Context, opt Options) error {
	initCtx, cancel := context.WithTimeout(ctx, defaultReadyTimeout)
	defer cancel()

	if err := s.send("uci"); err != nil {
		return fmt.Errorf("send uci: %w", err)
	}
	if err := s.awaitToken(initCtx, "uciok"); err != nil {
		return fmt.Errorf("wait uciok: %w", err)
	}

	for _, cmd := range optionCommands(opt) {
		if err := s.send(cmd); err != nil {
			return fmt.Errorf("apply options: %w", err)
		}
	}

	if err := s.send("isready"); err != nil {
		return fmt.Errorf("send isready: %w", err)
	}
	if err := s.awaitToken(initCtx, "readyok"); err != nil {
		return fmt.Errorf("wait readyok: %w", err)
	}
	return nil
}

// send writes one command line to the engine.
func (s *Session) send(cmd string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("uci_send", zap.String("cmd", cmd))
	_, err := io.WriteString(s.stdin, cmd+"\n")
	return err
}

func (s *Session) awaitToken(ctx context.Context, token string) error {
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if line == token {
			return nil
		}
	}
}

// readLine returns the next line of engine output. A closed output stream
// gives an error wrapping errors.ErrEngine.
func (s *Session) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			cause := s.readErr
			if cause == nil {
				cause = io.EOF
			}
			return "", fmt.Errorf("engine output closed: %v: %w", cause, errors.ErrEngine)
		}
		return line, nil
	}
}
