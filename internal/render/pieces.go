package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// pieceViewBox is the side of the square every glyph is drawn in.
const pieceViewBox = 45

// pieceShapes holds the SVG elements of each glyph, without the closing
// slash and paint attributes.
var pieceShapes = map[chess.Piece][]string{
	chess.Pawn: {
		`circle cx="22.5" cy="14" r="6"`,
		`path d="M 16 20 L 29 20 L 31 24 L 27 24 L 30 34 L 34 38 L 11 38 L 15 34 L 18 24 L 14 24 Z"`,
	},
	chess.Knight: {
		`path d="M 14 38 L 32 38 L 32 32 C 32 22 30 14 24 9 L 21 7 L 19 11 L 15 14 L 10 24 L 12 27 L 16 25 L 20 22 L 19 28 L 14 33 Z"`,
		`circle cx="18" cy="15" r="1.2"`,
	},
	chess.Bishop: {
		`circle cx="22.5" cy="8" r="2.5"`,
		`path d="M 22.5 11 C 15 16 14 24 17 29 L 28 29 C 31 24 30 16 22.5 11 Z"`,
		`rect x="16" y="29" width="13" height="4"`,
		`rect x="12" y="33" width="21" height="5"`,
	},
	chess.Rook: {
		`path d="M 11 9 L 15 9 L 15 12 L 20 12 L 20 9 L 25 9 L 25 12 L 30 12 L 30 9 L 34 9 L 34 15 L 31 17 L 31 31 L 34 33 L 34 38 L 11 38 L 11 33 L 14 31 L 14 17 L 11 15 Z"`,
	},
	chess.Queen: {
		`path d="M 9 13 L 14 26 L 15 12 L 20 25 L 22.5 10 L 25 25 L 30 12 L 31 26 L 36 13 L 33 31 L 12 31 Z"`,
		`rect x="11" y="31" width="23" height="7"`,
		`circle cx="9" cy="12" r="2"`,
		`circle cx="15" cy="11" r="2"`,
		`circle cx="22.5" cy="9" r="2"`,
		`circle cx="30" cy="11" r="2"`,
		`circle cx="36" cy="12" r="2"`,
	},
	chess.King: {
		`rect x="21" y="3" width="3" height="10"`,
		`rect x="17.5" y="6" width="10" height="3"`,
		`path d="M 22.5 13 C 15 13 10 18 12 26 L 14 31 L 31 31 L 33 26 C 35 18 30 13 22.5 13 Z"`,
		`rect x="12" y="31" width="21" height="7"`,
	},
}

// pieceSVG returns the glyph for piece as a standalone SVG document.
func pieceSVG(piece chess.ColouredPiece) (string, error) {
	shapes, ok := pieceShapes[piece.Piece]
	if !ok {
		return "", fmt.Errorf("no glyph for %v", piece)
	}
	fill, stroke := "#ffffff", "#000000"
	if piece.Colour == chess.Black {
		fill, stroke = "#000000", "#606060"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		pieceViewBox, pieceViewBox, pieceViewBox, pieceViewBox)
	for _, shape := range shapes {
		fmt.Fprintf(&sb, `<%s fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round"/>`, shape, fill, stroke)
	}
	sb.WriteString(`</svg>`)
	return sb.String(), nil
}

type pieceCacheKey struct {
	piece chess.ColouredPiece
	size  int
}

var (
	pieceCache   = map[pieceCacheKey]*image.RGBA{}
	pieceCacheMu sync.RWMutex
)

// pieceImage rasterises the glyph for piece at size pixels square. Results
// are cached and must not be modified.
func pieceImage(piece chess.ColouredPiece, size int) (*image.RGBA, error) {
	key := pieceCacheKey{piece: piece, size: size}

	pieceCacheMu.RLock()
	if img, ok := pieceCache[key]; ok {
		pieceCacheMu.RUnlock()
		return img, nil
	}
	pieceCacheMu.RUnlock()

	svg, err := pieceSVG(piece)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse %v glyph: %w", piece, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	pieceCacheMu.Lock()
	pieceCache[key] = img
	pieceCacheMu.Unlock()

	return img, nil
}
