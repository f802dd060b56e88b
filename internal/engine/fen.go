package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// whiteLetters holds the upper-case FEN letter of each piece kind.
const whiteLetters = "PNBRQK"

var fenKinds = [...]chess.Piece{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}

// castlingLetters lists the castling field letters in canonical order.
var castlingLetters = []struct {
	letter byte
	right  func(*chess.CastlingRights) *bool
}{
	{'K', func(cr *chess.CastlingRights) *bool { return &cr.WhiteKingside }},
	{'Q', func(cr *chess.CastlingRights) *bool { return &cr.WhiteQueenside }},
	{'k', func(cr *chess.CastlingRights) *bool { return &cr.BlackKingside }},
	{'q', func(cr *chess.CastlingRights) *bool { return &cr.BlackQueenside }},
}

// PieceLetter returns the FEN letter of a piece, upper case for White and
// lower case for Black. An empty square gives 0.
func PieceLetter(piece chess.ColouredPiece) byte {
	i := strings.IndexByte(whiteLetters, piece.Piece.Letter())
	if piece.IsEmpty() || i < 0 {
		return 0
	}
	letter := whiteLetters[i]
	if piece.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter is the inverse of PieceLetter.
func PieceFromLetter(c byte) (chess.ColouredPiece, bool) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour, c = chess.Black, c-('a'-'A')
	}
	i := strings.IndexByte(whiteLetters, c)
	if i < 0 {
		return chess.NoPiece, false
	}
	return chess.MakeColouredPiece(colour, fenKinds[i]), true
}

func invalidFEN(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidFEN)
}

// fenFieldParsers parse the fields after the piece placement, in order.
// Missing trailing fields keep the defaults of chess.NewBoard.
var fenFieldParsers = []func(*chess.Board, string) error{
	parseSideToMove,
	parseCastlingRights,
	parseEnPassant,
	parseHalfmoveClock,
	parseMoveNumber,
}

// NewBoardFromFEN parses a FEN string. Parsing is structural: each field
// must be well-formed, but the position is not checked for legality or
// reachability; see ValidatePosition. Fields after the piece placement are
// optional and extra fields are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, invalidFEN("empty FEN string")
	}

	board := chess.NewBoard()
	if err := parsePlacement(board, fields[0]); err != nil {
		return nil, err
	}
	for i, parse := range fenFieldParsers {
		if i+1 >= len(fields) {
			break
		}
		if err := parse(board, fields[i+1]); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// MustBoardFromFEN is NewBoardFromFEN for positions known to be valid; it
// panics on error.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

func parsePlacement(board *chess.Board, field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != chess.BoardSize {
		return invalidFEN("%d ranks in piece placement", len(rows))
	}

	for row, text := range rows {
		rank := chess.BoardSize - row
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := PieceFromLetter(c)
			if !ok {
				return invalidFEN("invalid piece character: %c", c)
			}
			if file >= chess.BoardSize {
				return invalidFEN("rank %d overflows", rank)
			}
			board.Set(chess.SquareAt(file, row), piece)
			file++
		}
		if file != chess.BoardSize {
			return invalidFEN("rank %d has %d files", rank, file)
		}
	}
	return nil
}

func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return invalidFEN("invalid side to move: %s", field)
	}
	return nil
}

func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}
next:
	for i := 0; i < len(field); i++ {
		for _, cl := range castlingLetters {
			if cl.letter == field[i] {
				*cl.right(&board.Castling) = true
				continue next
			}
		}
		return invalidFEN("invalid castling character: %c", field[i])
	}
	return nil
}

func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	if len(field) == 2 {
		if sq := chess.NewSquare(chess.Col(field[0]), chess.Rank(field[1])); sq.Valid() {
			board.EnPassant = sq
			return nil
		}
	}
	return invalidFEN("invalid en passant square: %s", field)
}

func parseHalfmoveClock(board *chess.Board, field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return invalidFEN("invalid halfmove clock: %s", field)
	}
	board.HalfmoveClock = n
	return nil
}

func parseMoveNumber(board *chess.Board, field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 {
		return invalidFEN("invalid fullmove number: %s", field)
	}
	board.MoveNumber = n
	return nil
}

// BoardToFEN returns the canonical FEN of board: all six fields, castling
// letters in KQkq order, and the en passant square whenever one is set.
func BoardToFEN(board *chess.Board) string {
	side := "w"
	if board.ToMove == chess.Black {
		side = "b"
	}
	return strings.Join([]string{
		placementField(board),
		side,
		castlingField(board.Castling),
		board.EnPassant.String(),
		strconv.Itoa(board.HalfmoveClock),
		strconv.Itoa(board.MoveNumber),
	}, " ")
}

func placementField(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		run := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.SquareAt(file, row))
			if piece.IsEmpty() {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
	}
	return sb.String()
}

func castlingField(cr chess.CastlingRights) string {
	var letters []byte
	for _, cl := range castlingLetters {
		if *cl.right(&cr) {
			letters = append(letters, cl.letter)
		}
	}
	if len(letters) == 0 {
		return "-"
	}
	return string(letters)
}
