package board

import (
	"errors"
	"fmt"
)

// ErrInvalidPiece is returned when a piece description cannot be parsed.
var ErrInvalidPiece = errors.New("invalid piece")

// Color represents the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Blank"
	}
}

// PieceType represents the kind of a piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name. The empty kind reads as "Piece",
// so an empty square prints as "Blank Piece".
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Piece"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// Glyph returns the display character for the piece type.
func (pt PieceType) Glyph() rune {
	glyphs := []rune{'P', 'Z', 'T', 'I', 'Q', 'K', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return glyphs[pt]
}

// Piece combines PieceType and Color into a single value.
// Encoded as: 1 + pieceType + color*6, so the zero value is NoPiece
// and a zero Board is an empty board.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1 + Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = 1 + Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = 1 + Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = 1 + Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = 1 + Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = 1 + Piece(King) + Piece(White)*6
	BlackPawn   Piece = 1 + Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = 1 + Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = 1 + Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = 1 + Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = 1 + Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = 1 + Piece(King) + Piece(Black)*6
)

// NewPiece creates a Piece from PieceType and Color.
// If either half is a sentinel the result is NoPiece: an empty square never
// carries a color and a colored square never carries the empty kind.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return 1 + Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p == NoPiece || p > BlackKing {
		return NoPieceType
	}
	return PieceType((p - 1) % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece || p > BlackKing {
		return NoColor
	}
	return Color((p - 1) / 6)
}

// IsEmpty reports whether p is the empty-square sentinel.
func (p Piece) IsEmpty() bool {
	return p.Type() == NoPieceType
}

// DebugString returns a human readable label such as "White Bishop".
func (p Piece) DebugString() string {
	return p.Color().String() + " " + p.Type().String()
}

// Glyphs returns the two display characters for the piece: one for the side
// (',' White, '\'' Black, ' ' empty) and one for the kind.
func (p Piece) Glyphs() (side, kind rune) {
	switch p.Color() {
	case White:
		side = ','
	case Black:
		side = '\''
	default:
		side = ' '
	}
	return side, p.Type().Glyph()
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black, "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	chars := "PNBRQKpnbrqk"
	return string(chars[p-1])
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// ParsePiece parses a two-letter piece description: side ('w' or 'b')
// followed by the FEN letter of the kind, e.g. "wR" or "bn".
// A single FEN letter ("R", "n") is accepted too.
func ParsePiece(s string) (Piece, error) {
	switch len(s) {
	case 1:
		if p := PieceFromChar(s[0]); p != NoPiece {
			return p, nil
		}
	case 2:
		var c Color
		switch s[0] {
		case 'w', 'W':
			c = White
		case 'b', 'B':
			c = Black
		default:
			return NoPiece, fmt.Errorf("%w: %q", ErrInvalidPiece, s)
		}
		p := PieceFromChar(s[1] | 0x20) // lowercase
		if p != NoPiece {
			return NewPiece(p.Type(), c), nil
		}
	}
	return NoPiece, fmt.Errorf("%w: %q", ErrInvalidPiece, s)
}
