// Package board implements the 8x8 board and piece model.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCoordinate is returned for a file or rank outside [0,7].
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Square represents a square on the board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Coords returns the square as "(file, rank)".
func (sq Square) Coords() string {
	if sq >= NoSquare {
		return "(-, -)"
	}
	return fmt.Sprintf("(%d, %d)", sq.File(), sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
// The caller guarantees both are in range; use SquareAt for untrusted input.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// SquareAt creates a square from file and rank, rejecting values outside [0,7].
func SquareAt(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, file, rank)
	}
	return NewSquare(file, rank), nil
}

// ParseSquare parses a square in algebraic notation ("e4") or as a
// numeric "file,rank" pair ("4,3" or "(4, 3)").
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, ',') {
		return parseCoords(s)
	}
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	return NewSquare(file, rank), nil
}

func parseCoords(s string) (Square, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	file, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	rank, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return SquareAt(file, rank)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Offset returns the square shifted by df files and dr ranks, and false
// if the result falls off the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	f, r := sq.File()+df, sq.Rank()+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}
