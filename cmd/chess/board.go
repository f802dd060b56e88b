package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// writeBoard prints board as a grid with rank numbers on the right and file
// letters below, White at the bottom.
func writeBoard(w io.Writer, board *chess.Board) {
	separator := "+" + strings.Repeat("---+", chess.BoardSize)

	fmt.Fprintln(w, "================")
	fmt.Fprintln(w, separator)
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		sb.WriteString("|")
		for file := 0; file < chess.BoardSize; file++ {
			letter := byte(' ')
			if piece := board.Get(chess.SquareAt(file, row)); !piece.IsEmpty() {
				letter = engine.PieceLetter(piece)
			}
			fmt.Fprintf(&sb, " %c |", letter)
		}
		fmt.Fprintf(&sb, " %d", chess.BoardSize-row)
		fmt.Fprintln(w, sb.String())
		fmt.Fprintln(w, separator)
	}

	var files strings.Builder
	files.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(&files, "%c   ", 'a'+file)
	}
	fmt.Fprintln(w, strings.TrimRight(files.String(), " "))
	fmt.Fprintln(w, "================")
}
