package rules

import "github.com/hailam/chessrules/internal/board"

// InCheck reports whether the king on king is attacked.
//
// Always false for now. Once every piece kind has a rule this becomes: some
// piece of the other color gets a Legal verdict onto king from an Engine's
// Judge. It has to take that Engine, since the package-level Judge uses the
// default engine and would miss rules added with SetRule.
func InCheck(b *board.Board, king board.Square) bool {
	return false
}

// InCheckmate reports whether the king on king is in check with no move of
// its side that ends the check. Always false until InCheck is implemented.
func InCheckmate(b *board.Board, king board.Square) bool {
	return false
}
