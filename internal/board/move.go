package board

import "fmt"

// Move encodes a move in 12 bits:
// bits 0-5:  from square (0-63)
// bits 6-11: to square (0-63)
type Move uint16

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a move between two valid squares.
func NewMove(from, to Square) Move {
	return Move(from&0x3F) | Move(to&0x3F)<<6
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// String returns the move in coordinate notation (e.g., "a1a5").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From().String() + m.To().String()
}

// ParseMove parses coordinate notation ("a1a5").
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	return NewMove(from, to), nil
}
