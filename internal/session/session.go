// Package session owns a live game: the current position plus a bounded
// undo/redo history. It is the only place a position is mutated on behalf of
// a player, and every mutation is checked against the legal moves first.
//
// A Session is not safe for concurrent use; callers owning one from several
// goroutines must serialise access themselves.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// DefaultCapacity is the number of positions kept for undo.
const DefaultCapacity = 300

// entry is one recorded position and the move that produced it.
// The first entry has no move.
type entry struct {
	board chess.Board
	move  chess.Move
	moved bool
	class chess.MoveClass
	check chess.CheckStatus
}

// Record is a played move as it was classified when played.
type Record struct {
	Move  chess.Move
	Class chess.MoveClass
	Check chess.CheckStatus
}

// Session is a single game in progress.
type Session struct {
	id            string
	logger        *zap.Logger
	capacity      int
	halfmoveLimit int
	start         chess.Board

	history []entry
	cursor  int

	// evicted counts entries dropped from the front of history.
	evicted int
}

// Option configures a Session.
type Option func(*Session)

// WithCapacity bounds the history to n positions, the current one included.
// When full, the oldest position is evicted. Zero means unbounded.
func WithCapacity(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.capacity = n
		}
	}
}

// WithLogger sets the logger used for move and history events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHalfmoveLimit sets the halfmove clock value beyond which the game is
// drawn. Zero disables the rule.
func WithHalfmoveLimit(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.halfmoveLimit = n
		}
	}
}

// WithStartBoard starts the game from board instead of the initial position.
func WithStartBoard(board chess.Board) Option {
	return func(s *Session) {
		s.start = board
	}
}

// New creates a session at the starting position, or at the board given
// with WithStartBoard. A start board that fails engine.ValidatePosition is
// rejected with its error.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:            uuid.NewString(),
		logger:        zap.NewNop(),
		capacity:      DefaultCapacity,
		halfmoveLimit: engine.DefaultHalfmoveLimit,
		start:         *chess.NewInitialBoard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := engine.ValidatePosition(&s.start); err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))
	s.history = []entry{{board: s.start}}
	s.logger.Debug("session_create",
		zap.String("fen", engine.BoardToFEN(&s.start)),
		zap.Int("capacity", s.capacity),
	)
	return s, nil
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string {
	return s.id
}

// current returns the live position.
func (s *Session) current() *chess.Board {
	return &s.history[s.cursor].board
}

// Board returns a copy of the live position.
func (s *Session) Board() chess.Board {
	return *s.current()
}

// FEN returns the live position in Forsyth-Edwards Notation.
func (s *Session) FEN() string {
	return engine.BoardToFEN(s.current())
}

// LegalMoves returns the legal moves for the side to move.
func (s *Session) LegalMoves() []chess.Move {
	return engine.GenerateLegal(s.current())
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	board := s.current()
	return engine.IsInCheck(board, board.ToMove)
}

// Ply returns the number of moves played from the start position to the
// live position.
func (s *Session) Ply() int {
	return s.evicted + s.cursor
}

// LastMove returns the move that produced the live position. ok is false at
// the start of the recorded history.
func (s *Session) LastMove() (move chess.Move, ok bool) {
	e := s.history[s.cursor]
	return e.move, e.moved
}

// Moves returns the recorded moves leading to the live position, oldest
// first. Moves evicted from the history are not included.
func (s *Session) Moves() []chess.Move {
	var moves []chess.Move
	for _, e := range s.history[1 : s.cursor+1] {
		moves = append(moves, e.move)
	}
	return moves
}

// Records is Moves with each move's class and its effect on the opposing
// king.
func (s *Session) Records() []Record {
	var records []Record
	for _, e := range s.history[1 : s.cursor+1] {
		records = append(records, Record{Move: e.move, Class: e.class, Check: e.check})
	}
	return records
}

// CanUndo reports whether Undo would change the position.
func (s *Session) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether Redo would change the position.
func (s *Session) CanRedo() bool {
	return s.cursor < len(s.history)-1
}

// AttemptMove plays move if it is legal in the live position.
//
// It returns (true, nil) when the move was played, and (false, nil) when the
// move is well-formed but illegal. A move with an off-board square, or whose
// promotion piece is missing, unexpected or not a valid choice, is rejected
// with an error wrapping errors.ErrMalformedMove. The position is unchanged
// unless the move is played.
func (s *Session) AttemptMove(move chess.Move) (bool, error) {
	board := s.current()

	if err := s.checkWellFormed(board, move); err != nil {
		s.logger.Debug("move_malformed", zap.String("move", move.String()), zap.Error(err))
		return false, err
	}

	if !engine.IsLegal(board, move) {
		s.logger.Debug("move_rejected",
			zap.String("move", move.String()),
			zap.String("fen", engine.BoardToFEN(board)),
		)
		return false, nil
	}

	e := entry{
		board: *board,
		move:  move,
		moved: true,
		class: engine.Classify(board, move),
		check: engine.CheckStatusAfter(board, move),
	}
	engine.ForceMove(&e.board, move)
	s.push(e)

	s.logger.Debug("move_played",
		zap.String("move", move.String()),
		zap.Stringer("class", e.class),
		zap.Stringer("check", e.check),
		zap.Int("ply", s.Ply()),
		zap.String("fen", engine.BoardToFEN(&e.board)),
	)
	return true, nil
}

// checkWellFormed rejects moves no legal move could ever match.
func (s *Session) checkWellFormed(board *chess.Board, move chess.Move) error {
	malformed := func(reason string) error {
		return &errors.MoveError{
			Err:      fmt.Errorf("%s: %w", reason, errors.ErrMalformedMove),
			PlyNum:   s.Ply() + 1,
			MoveText: move.String(),
			FEN:      engine.BoardToFEN(board),
		}
	}

	if !move.InBounds() {
		return malformed("square off the board")
	}
	needs := engine.NeedsPromotion(board, move)
	switch {
	case needs && !move.IsPromotion():
		return malformed("promotion piece missing")
	case !needs && move.IsPromotion():
		return malformed("unexpected promotion piece")
	case needs && !chess.ValidPromotion(move.Promotion):
		return malformed("invalid promotion piece")
	}
	return nil
}

// push records a new live position, dropping any redo entries and evicting
// the oldest entry when the history is full.
func (s *Session) push(e entry) {
	s.history = append(s.history[:s.cursor+1], e)
	s.cursor++

	if s.capacity > 0 && len(s.history) > s.capacity {
		drop := len(s.history) - s.capacity
		s.history = append(s.history[:0:0], s.history[drop:]...)
		s.cursor -= drop
		s.evicted += drop
		s.logger.Debug("history_evict", zap.Int("dropped", drop), zap.Int("evicted_total", s.evicted))
	}
}

// Undo steps back one position. It returns false, changing nothing, at the
// oldest recorded position.
func (s *Session) Undo() bool {
	if !s.CanUndo() {
		s.logger.Debug("undo_at_start")
		return false
	}
	s.cursor--
	s.logger.Debug("undo", zap.Int("ply", s.Ply()))
	return true
}

// Redo steps forward one position. It returns false, changing nothing, at the
// newest recorded position.
func (s *Session) Redo() bool {
	if !s.CanRedo() {
		s.logger.Debug("redo_at_end")
		return false
	}
	s.cursor++
	s.logger.Debug("redo", zap.Int("ply", s.Ply()))
	return true
}

// Reset returns to the start position and clears the history.
func (s *Session) Reset() {
	s.history = []entry{{board: s.start}}
	s.cursor = 0
	s.evicted = 0
	s.logger.Debug("session_reset")
}

// Status returns the state of the game at the live position. Checkmate and
// stalemate take precedence over the draw rules, which are checked in the
// order halfmove limit, insufficient material, threefold repetition.
func (s *Session) Status() engine.GameStatus {
	board := s.current()
	if status := engine.Status(board); status.IsOver() {
		return status
	}
	if engine.HalfmoveLimitExceeded(board, s.halfmoveLimit) {
		return engine.StatusDrawByHalfmoveLimit
	}
	if engine.HasInsufficientMaterial(board) {
		return engine.StatusDrawByInsufficientMaterial
	}
	if s.repetitions() >= 3 {
		return engine.StatusDrawByRepetition
	}
	return engine.StatusOngoing
}

// repetitions counts how often the live position occurs in the recorded
// history up to and including the cursor.
func (s *Session) repetitions() int {
	tracker := hashing.NewRepetitionTracker()
	for i := 0; i <= s.cursor; i++ {
		tracker.Add(&s.history[i].board)
	}
	return tracker.Count(s.current())
}

// DrawRules replays the recorded moves from the oldest retained position
// and reports every draw condition that arose along the way.
func (s *Session) DrawRules() (engine.DrawRuleResult, error) {
	return engine.AnalyzeDrawRules(&s.history[0].board, s.Moves(), s.halfmoveLimit)
}
