// Package errors defines the sentinel errors of the rules core and the
// structured errors that carry move and parse context around them. Both
// structured types unwrap, so callers test them with errors.Is and
// errors.As.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFEN marks a position string that cannot be parsed.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove marks a well-formed move the rules do not allow.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMalformedMove marks a move no position could allow: an off-board
	// square, or a promotion piece that is missing, unexpected or invalid.
	ErrMalformedMove = errors.New("malformed move")

	// ErrNoKing marks a position missing a king. engine.ValidatePosition
	// returns it for supplied positions; inside the rules it is a panic
	// value, as a validated position cannot lose a king.
	ErrNoKing = errors.New("no king on board")

	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEngine marks a failure talking to an external UCI engine.
	ErrEngine = errors.New("engine protocol error")

	ErrParseFailure = errors.New("parse failure")
)

// MoveError is a failure tied to one attempted move.
type MoveError struct {
	Err      error
	PlyNum   int    // ply the move would have been; 0 if unknown
	MoveText string // the move as given
	FEN      string // position the move was tried in
}

func (e *MoveError) Error() string {
	var where []string
	if e.PlyNum > 0 {
		where = append(where, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		where = append(where, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		where = append(where, fmt.Sprintf("position %q", e.FEN))
	}
	return describe(strings.Join(where, ", "), e.Err, "move error")
}

func (e *MoveError) Unwrap() error { return e.Err }

// ParseError locates a failure in a piece of text: move notation, a FEN
// field or a configuration value.
type ParseError struct {
	Err      error
	Input    string
	Column   int // 1-based; 0 if unknown
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var where []string
	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, e.Column)
		}
		where = append(where, loc)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		where = append(where, "expected "+e.Expected+", got "+e.Got)
	case e.Expected != "":
		where = append(where, "expected "+e.Expected)
	case e.Got != "":
		where = append(where, "unexpected "+e.Got)
	}
	return describe(strings.Join(where, ": "), e.Err, "parse error")
}

func (e *ParseError) Unwrap() error { return e.Err }

// describe joins a context prefix and a cause, falling back to fallback when
// both are empty.
func describe(prefix string, cause error, fallback string) string {
	switch {
	case prefix != "" && cause != nil:
		return prefix + ": " + cause.Error()
	case cause != nil:
		return cause.Error()
	case prefix != "":
		return prefix
	}
	return fallback
}

// Wrap prefixes err with context. It returns nil for a nil err.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
