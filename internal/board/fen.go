package board

import (
	"fmt"
	"strings"
)

// StartPlacement is the FEN piece placement of the standard starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParseFEN parses a FEN string and returns its board. Only the piece
// placement field is used; side to move, castling and clocks are accepted
// but carry no meaning for this board.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("invalid FEN: empty string")
	}
	return ParsePlacement(parts[0])
}

// ParsePlacement parses the piece placement section of a FEN string.
// Rank 8 comes first, files a through h within each rank.
func ParsePlacement(placement string) (*Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	b := NewBoard()
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return nil, fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidPiece, c)
			}
			b.Set(NewSquare(file, rank), piece)
			file++
		}

		if file != 8 {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return b, nil
}

// Placement returns the FEN piece placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.At(NewSquare(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
