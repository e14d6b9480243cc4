package snapshot

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hailam/chessrules/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// kindMarks are the inner shapes drawn on a piece disc, in a 100x100 viewBox.
var kindMarks = map[board.PieceType]string{
	board.Rook:   "M30 70 L30 32 L38 32 L38 40 L46 40 L46 32 L54 32 L54 40 L62 40 L62 32 L70 32 L70 70 Z",
	board.Knight: "M34 72 L34 52 L46 28 L68 38 L62 48 L52 46 L60 72 Z",
	board.Bishop: "M50 24 L66 58 L58 72 L42 72 L34 58 Z",
	board.King:   "M45 24 L55 24 L55 38 L70 38 L70 48 L55 48 L55 72 L45 72 L45 48 L30 48 L30 38 L45 38 Z",
	board.Queen:  "M28 70 L32 32 L42 52 L50 28 L58 52 L68 32 L72 70 Z",
	board.Pawn:   "M40 72 L44 52 L38 46 L50 28 L62 46 L56 52 L60 72 Z",
}

// pieceSVG returns the SVG document for a piece: a disc in the side's color
// with the kind's mark in the contrasting color.
func pieceSVG(p board.Piece) string {
	fill, ink := "#f4efe1", "#1f1f1f"
	if p.Color() == board.Black {
		fill, ink = "#262626", "#efe9da"
	}

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">`)
	fmt.Fprintf(&sb, `<circle cx="50" cy="50" r="42" fill="%s" stroke="%s" stroke-width="5"/>`, fill, ink)
	fmt.Fprintf(&sb, `<path d="%s" fill="%s"/>`, kindMarks[p.Type()], ink)
	sb.WriteString(`</svg>`)
	return sb.String()
}

// rasterize renders the piece SVG into a size x size RGBA image.
func rasterize(p board.Piece, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(p)))
	if err != nil {
		return nil, fmt.Errorf("parse %s sprite: %w", p.DebugString(), err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// loadSprites renders every piece at renderSize. Pieces that fail to render
// are logged and skipped; the snapshot then shows only their glyph text.
func loadSprites(renderSize int) map[board.Piece]*image.RGBA {
	sprites := make(map[board.Piece]*image.RGBA, 12)
	for pt := board.Pawn; pt <= board.King; pt++ {
		for _, c := range []board.Color{board.White, board.Black} {
			p := board.NewPiece(pt, c)
			img, err := rasterize(p, renderSize)
			if err != nil {
				log.Printf("snapshot: %v", err)
				continue
			}
			sprites[p] = img
		}
	}
	return sprites
}
