package rules

import (
	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/bounds"
)

// rook moves any distance along its rank or file over empty squares.
type rook struct{}

func (rook) Check(b *board.Board, from, to board.Square) Verdict {
	if from.File() != to.File() && from.Rank() != to.Rank() {
		return Illegal
	}
	if _, blocked := Blocker(b, from, to); blocked {
		return Blocked
	}
	if b.At(to).Color() == b.At(from).Color() {
		return Illegal
	}
	return Legal
}

// knightOffsets are the eight (file, rank) jumps of a knight.
var knightOffsets = [8][2]int{
	{-1, -2}, {1, -2}, {2, -1}, {2, 1},
	{1, 2}, {-1, 2}, {-2, 1}, {-2, -1},
}

// knight jumps to one of knightOffsets regardless of what lies between.
type knight struct{}

func (knight) Check(b *board.Board, from, to board.Square) Verdict {
	jump := false
	for _, off := range knightOffsets {
		if sq, ok := from.Offset(off[0], off[1]); ok && sq == to {
			jump = true
			break
		}
	}
	if !jump {
		return Illegal
	}
	if b.At(to).Color() == b.At(from).Color() {
		return Illegal
	}
	return Legal
}

// unsupported stands in for kinds whose movement is not implemented:
// bishop, queen, king and pawn never move.
type unsupported struct{}

func (unsupported) Check(*board.Board, board.Square, board.Square) Verdict {
	return Unsupported
}

// vacant is the rule for an empty origin square.
type vacant struct{}

func (vacant) Check(*board.Board, board.Square, board.Square) Verdict {
	return Vacant
}

// Blocker returns the first occupied square strictly between from and to,
// scanning from the lower file (or rank) upward. It only looks along a shared
// rank or file and reports false for squares that are not aligned.
func Blocker(b *board.Board, from, to board.Square) (board.Square, bool) {
	switch {
	case from.Rank() == to.Rank():
		lo, hi := bounds.MinMax(from.File(), to.File())
		for f := lo + 1; f < hi; f++ {
			sq := board.NewSquare(f, from.Rank())
			if !b.IsEmpty(sq) {
				return sq, true
			}
		}
	case from.File() == to.File():
		lo, hi := bounds.MinMax(from.Rank(), to.Rank())
		for r := lo + 1; r < hi; r++ {
			sq := board.NewSquare(from.File(), r)
			if !b.IsEmpty(sq) {
				return sq, true
			}
		}
	}
	return board.NoSquare, false
}
