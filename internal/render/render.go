// Package render draws board positions as PNG images, with optional
// last-move highlighting and arrows for an analysis line.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

const (
	// DefaultSquareSize is used when Options.SquareSize is zero.
	DefaultSquareSize = 72

	MinSquareSize = 16
	MaxSquareSize = 512

	minMargin = 16
)

// Options controls what is drawn on top of the position.
type Options struct {
	// SquareSize is the side of one square in pixels.
	SquareSize int

	// Coordinates adds file letters and rank digits around the board.
	Coordinates bool

	// Flip draws the board from Black's side.
	Flip bool

	// Highlight marks the origin and destination of a move, usually the
	// last one played.
	Highlight *chess.Move

	// Overlay draws an arrow per move, e.g. an engine's principal variation.
	Overlay []chess.Move
}

var (
	lightSquare          = color.RGBA{233, 207, 163, 255}
	darkSquare           = color.RGBA{187, 136, 96, 255}
	frameColor           = color.RGBA{48, 46, 43, 255}
	coordinateTextColor  = color.NRGBA{R: 236, G: 239, B: 255, A: 255}
	moveHighlightFill    = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	primaryArrowColor    = color.NRGBA{R: 148, G: 207, B: 255, A: 190}
	continuationArrowClr = color.NRGBA{R: 182, G: 184, B: 190, A: 140}
)

// layout positions the board inside the image.
type layout struct {
	squareSize int
	origin     image.Point
	flip       bool
}

// squareRect returns the pixel rectangle of sq.
func (l layout) squareRect(sq chess.Square) image.Rectangle {
	col, row := sq.File(), sq.Row()
	if l.flip {
		col, row = 7-col, 7-row
	}
	x := l.origin.X + col*l.squareSize
	y := l.origin.Y + row*l.squareSize
	return image.Rect(x, y, x+l.squareSize, y+l.squareSize)
}

// squareCenter returns the centre of sq in pixels.
func (l layout) squareCenter(sq chess.Square) (float64, float64) {
	r := l.squareRect(sq)
	return float64(r.Min.X) + float64(l.squareSize)/2, float64(r.Min.Y) + float64(l.squareSize)/2
}

// margin returns the frame width used for coordinates.
func margin(squareSize int) int {
	if m := squareSize / 3; m > minMargin {
		return m
	}
	return minMargin
}

// Render draws board according to opts.
func Render(ctx context.Context, board *chess.Board, opts Options) (*image.RGBA, error) {
	if board == nil {
		return nil, fmt.Errorf("board is nil")
	}
	size := opts.SquareSize
	if size == 0 {
		size = DefaultSquareSize
	}
	if size < MinSquareSize || size > MaxSquareSize {
		return nil, fmt.Errorf("square size %d outside %d-%d: %w", size, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	l := layout{squareSize: size, flip: opts.Flip}
	boardSize := size * chess.BoardSize
	total := boardSize
	if opts.Coordinates {
		m := margin(size)
		l.origin = image.Point{X: m, Y: m}
		total += 2 * m
	}

	img := image.NewRGBA(image.Rect(0, 0, total, total))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(frameColor), image.Point{}, imagedraw.Src)

	drawSquares(img, l)
	drawHighlight(img, l, opts.Highlight)
	if err := drawPieces(img, board, l); err != nil {
		return nil, err
	}
	drawOverlay(img, l, opts.Overlay)
	if opts.Coordinates {
		drawCoordinates(img, l)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return img, nil
}

// RenderPNG draws board and encodes it as PNG.
func RenderPNG(ctx context.Context, board *chess.Board, opts Options) ([]byte, error) {
	img, err := Render(ctx, board, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SquareColor returns the base colour of sq.
func SquareColor(sq chess.Square) color.RGBA {
	if (sq.File()+sq.Row())%2 == 0 {
		return lightSquare
	}
	return darkSquare
}

func drawSquares(dst *image.RGBA, l layout) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		imagedraw.Draw(dst, l.squareRect(sq), image.NewUniform(SquareColor(sq)), image.Point{}, imagedraw.Src)
	}
}

func drawPieces(dst *image.RGBA, board *chess.Board, l layout) error {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		glyph, err := pieceImage(piece, l.squareSize)
		if err != nil {
			return err
		}
		imagedraw.Draw(dst, l.squareRect(sq), glyph, image.Point{}, imagedraw.Over)
	}
	return nil
}

func drawHighlight(dst *image.RGBA, l layout, move *chess.Move) {
	if move == nil || !move.InBounds() {
		return
	}
	fill := image.NewUniform(moveHighlightFill)
	imagedraw.Draw(dst, l.squareRect(move.From), fill, image.Point{}, imagedraw.Over)
	imagedraw.Draw(dst, l.squareRect(move.To), fill, image.Point{}, imagedraw.Over)
}

func drawOverlay(dst *image.RGBA, l layout, moves []chess.Move) {
	for i, move := range moves {
		if !move.InBounds() {
			continue
		}
		clr := continuationArrowClr
		if i == 0 {
			clr = primaryArrowColor
		}
		drawArrow(dst, l, move.From, move.To, clr)
	}
}

// drawArrow fills an arrow from the centre of from to the centre of to.
func drawArrow(dst *image.RGBA, l layout, from, to chess.Square, clr color.Color) {
	if from == to {
		return
	}
	x0, y0 := l.squareCenter(from)
	x1, y1 := l.squareCenter(to)
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)

	size := float64(l.squareSize)
	dirX, dirY := dx/length, dy/length
	perpX, perpY := -dirY, dirX

	baseLength := length - size*0.45
	if baseLength < size*0.35 {
		baseLength = length * 0.6
	}
	halfWidth := size * 0.12
	headHalf := size * 0.26

	baseX, baseY := x0+dirX*baseLength, y0+dirY*baseLength

	outline := [][2]float64{
		{x0 - perpX*halfWidth, y0 - perpY*halfWidth},
		{baseX - perpX*halfWidth, baseY - perpY*halfWidth},
		{baseX - perpX*headHalf, baseY - perpY*headHalf},
		{x1, y1},
		{baseX + perpX*headHalf, baseY + perpY*headHalf},
		{baseX + perpX*halfWidth, baseY + perpY*halfWidth},
		{x0 + perpX*halfWidth, y0 + perpY*halfWidth},
	}

	bounds := dst.Bounds()
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), dst, bounds)
	filler := rasterx.NewFiller(bounds.Dx(), bounds.Dy(), scanner)
	filler.SetColor(clr)
	filler.Start(rasterx.ToFixedP(outline[0][0], outline[0][1]))
	for _, p := range outline[1:] {
		filler.Line(rasterx.ToFixedP(p[0], p[1]))
	}
	filler.Stop(true)
	filler.Draw()
}

// drawCoordinates labels files below the board and ranks to its left.
func drawCoordinates(dst *image.RGBA, l layout) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(coordinateTextColor),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	boardEnd := l.origin.Y + chess.BoardSize*l.squareSize

	for i := 0; i < chess.BoardSize; i++ {
		// Bottom row and left column as displayed.
		bottom := l.squareRect(chess.SquareAt(i, 7))
		if l.flip {
			bottom = l.squareRect(chess.SquareAt(7-i, 0))
		}
		file := string(rune('a' + i))
		if l.flip {
			file = string(rune('h' - i))
		}
		drawCenteredText(drawer, file, (bottom.Min.X+bottom.Max.X)/2, boardEnd+(l.origin.Y+ascent)/2)

		left := l.squareRect(chess.SquareAt(0, i))
		if l.flip {
			left = l.squareRect(chess.SquareAt(7, 7-i))
		}
		rank := string(rune('8' - i))
		if l.flip {
			rank = string(rune('1' + i))
		}
		drawCenteredText(drawer, rank, l.origin.X/2, (left.Min.Y+left.Max.Y)/2+ascent/2)
	}
}

func drawCenteredText(drawer *font.Drawer, text string, centerX, baseline int) {
	width := drawer.MeasureString(text).Round()
	drawer.Dot = fixed.P(centerX-width/2, baseline)
	drawer.DrawString(text)
}
