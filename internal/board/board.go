package board

import (
	"bufio"
	"io"
	"strings"
)

// Board is the 8x8 grid of pieces. Every cell always holds a Piece; empty
// cells hold NoPiece. The zero value is an empty board, and copying a Board
// copies every cell.
type Board struct {
	squares [64]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// At returns the piece at sq, or NoPiece for an empty or invalid square.
func (b *Board) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Set places p on sq, replacing whatever was there. Invalid squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	if p.IsEmpty() {
		p = NoPiece
	}
	b.squares[sq] = p
}

// Remove empties sq and returns the piece that was there.
func (b *Board) Remove(sq Square) Piece {
	p := b.At(sq)
	b.Set(sq, NoPiece)
	return p
}

// IsEmpty returns true if the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq).IsEmpty()
}

// Clear resets the board to all empty cells.
func (b *Board) Clear() {
	*b = Board{}
}

// Occupancy returns the set of occupied squares, optionally limited to one
// color. Passing NoColor returns both sides.
func (b *Board) Occupancy(c Color) Bitboard {
	var bb Bitboard
	for sq, p := range b.squares {
		if p.IsEmpty() {
			continue
		}
		if c == NoColor || p.Color() == c {
			bb |= SquareBB(Square(sq))
		}
	}
	return bb
}

const borderLine = "|---|---|---|---|---|---|---|---|"

// Render writes the board as text: a border line, then one row per rank
// (rank 0 on top) with a two-character cell per file, each row followed by
// another border line.
func (b *Board) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(borderLine)
	bw.WriteByte('\n')
	for rank := 0; rank < 8; rank++ {
		bw.WriteByte('|')
		for file := 0; file < 8; file++ {
			side, kind := b.At(NewSquare(file, rank)).Glyphs()
			bw.WriteRune(side)
			bw.WriteRune(kind)
			bw.WriteString(" |")
		}
		bw.WriteByte('\n')
		bw.WriteString(borderLine)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String returns the text rendering of the board.
func (b *Board) String() string {
	var sb strings.Builder
	b.Render(&sb)
	return sb.String()
}
