// Package snapshot renders a board to a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hailam/chessrules/internal/board"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultCellSize is the square size in pixels when Options leaves it unset.
	DefaultCellSize = 48
	// MinCellSize is the smallest square size; smaller values are raised to it.
	MinCellSize = 16

	// margin holds the file and rank labels.
	margin = 16
	// Sprites are rendered larger and scaled down for smoother edges.
	renderScale = 3
)

var (
	lightSquare = color.RGBA{0xee, 0xee, 0xd2, 0xff}
	darkSquare  = color.RGBA{0x76, 0x96, 0x56, 0xff}
	background  = color.RGBA{0x30, 0x2e, 0x2b, 0xff}
	labelColor  = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// Options controls the snapshot layout.
type Options struct {
	CellSize int // pixels per square; DefaultCellSize when zero
}

func (o Options) cellSize() int {
	switch {
	case o.CellSize == 0:
		return DefaultCellSize
	case o.CellSize < MinCellSize:
		return MinCellSize
	default:
		return o.CellSize
	}
}

// Renderer draws boards with pre-rasterized piece sprites.
type Renderer struct {
	cell    int
	sprites map[board.Piece]*image.RGBA
}

// NewRenderer rasterizes the piece sprites for the given options.
func NewRenderer(opts Options) *Renderer {
	cell := opts.cellSize()
	return &Renderer{
		cell:    cell,
		sprites: loadSprites(cell * renderScale),
	}
}

// Bounds returns the size of the images this renderer produces.
func (r *Renderer) Bounds() image.Rectangle {
	side := margin + 8*r.cell
	return image.Rect(0, 0, side, side)
}

// CellRect returns the pixel rectangle of a square. Rank 0 is the top row,
// matching the text rendering.
func (r *Renderer) CellRect(sq board.Square) image.Rectangle {
	x := margin + sq.File()*r.cell
	y := margin + sq.Rank()*r.cell
	return image.Rect(x, y, x+r.cell, y+r.cell)
}

// Render draws the board.
func (r *Renderer) Render(b *board.Board) *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	r.drawLabels(img)

	for sq := board.A1; sq <= board.H8; sq++ {
		rect := r.CellRect(sq)
		fill := lightSquare
		if isDark(sq) {
			fill = darkSquare
		}
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)

		p := b.At(sq)
		if p.IsEmpty() {
			continue
		}
		if sprite, ok := r.sprites[p]; ok {
			xdraw.CatmullRom.Scale(img, rect, sprite, sprite.Bounds(), xdraw.Over, nil)
		}
		r.drawGlyphs(img, sq, p)
	}
	return img
}

func (r *Renderer) drawLabels(img *image.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	for i := 0; i < 8; i++ {
		label := strconv.Itoa(i)
		center := margin + i*r.cell + r.cell/2

		d.Dot = fixed.P(center-3, margin-3)
		d.DrawString(label)

		d.Dot = fixed.P(4, center+5)
		d.DrawString(label)
	}
}

// drawGlyphs writes the two display characters of the piece into the
// bottom-right corner of its cell.
func (r *Renderer) drawGlyphs(img *image.RGBA, sq board.Square, p board.Piece) {
	rect := r.CellRect(sq)
	side, kind := p.Glyphs()
	ink := color.RGBA{0x10, 0x10, 0x10, 0xff}
	if isDark(sq) {
		ink = color.RGBA{0xf8, 0xf8, 0xf8, 0xff}
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(rect.Max.X-15, rect.Max.Y-2),
	}
	d.DrawString(string([]rune{side, kind}))
}

func isDark(sq board.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// Render draws the board with a one-off renderer.
func Render(b *board.Board, opts Options) *image.RGBA {
	return NewRenderer(opts).Render(b)
}

// WritePNG encodes a snapshot of the board as PNG.
func WritePNG(w io.Writer, b *board.Board, opts Options) error {
	if err := png.Encode(w, Render(b, opts)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// SaveFile writes a PNG snapshot to path, creating parent directories.
func SaveFile(path string, b *board.Board, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, b, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
