package rules

import (
	"testing"

	"github.com/hailam/chessrules/internal/board"
	"github.com/notnil/chess"
)

// TestTargetsMatchOracle compares rook and knight destinations with a full
// chess move generator. The positions have no pins, no checks and no captures
// of a king, so pseudo-legal and legal moves coincide.
func TestTargetsMatchOracle(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from board.Square
	}{
		{"rook with captures and own blocker", "k7/3p4/8/8/1P1R2p1/8/8/7K w - - 0 1", board.D4},
		{"rook in the corner", "k7/8/8/8/8/8/P7/R3K3 w - - 0 1", board.A1},
		{"knight in the center", "7k/8/2P5/4N3/6p1/8/8/K7 w - - 0 1", board.E5},
		{"knight in the corner", "7k/8/8/8/8/8/8/N6K w - - 0 1", board.A1},
		{"black knight", "n6k/8/1P6/8/8/8/8/K7 b - - 0 1", board.A8},
	}

	e := quietEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}

			opt, err := chess.FEN(tc.fen)
			if err != nil {
				t.Fatalf("oracle FEN: %v", err)
			}
			game := chess.NewGame(opt)

			var want board.Bitboard
			for _, m := range game.ValidMoves() {
				if m.S1() == chess.Square(tc.from) {
					want = want.Set(board.Square(m.S2()))
				}
			}

			got := e.Targets(b, tc.from)
			if got != want {
				t.Errorf("targets from %v:\n got %v\nwant %v", tc.from, got.Squares(), want.Squares())
			}
		})
	}
}
