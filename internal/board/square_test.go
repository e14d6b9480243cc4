package board

import (
	"errors"
	"testing"
)

func TestSquareAt(t *testing.T) {
	sq, err := SquareAt(4, 3)
	if err != nil {
		t.Fatalf("SquareAt(4, 3): %v", err)
	}
	if sq != E4 || sq.File() != 4 || sq.Rank() != 3 {
		t.Errorf("SquareAt(4, 3) = %v", sq)
	}

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		if _, err := SquareAt(c[0], c[1]); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("SquareAt(%d, %d) error = %v, want ErrInvalidCoordinate", c[0], c[1], err)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", A1},
		{"h8", H8},
		{"e4", E4},
		{"0,3", A4},
		{"(2, 5)", C6},
		{" 7,0 ", H1},
	}

	for _, tc := range tests {
		got, err := ParseSquare(tc.in)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "i1", "a9", "a", "8,0", "1,2,3", "x,1", "e44"} {
		if _, err := ParseSquare(in); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidCoordinate", in, err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	if sq, ok := A1.Offset(2, 1); !ok || sq != C2 {
		t.Errorf("A1.Offset(2, 1) = %v, %v", sq, ok)
	}
	if _, ok := A1.Offset(-1, 2); ok {
		t.Error("A1.Offset(-1, 2) should fall off the board")
	}
	if _, ok := H8.Offset(0, 1); ok {
		t.Error("H8.Offset(0, 1) should fall off the board")
	}
}

func TestSquareStrings(t *testing.T) {
	if E4.String() != "e4" {
		t.Errorf("E4.String() = %q", E4.String())
	}
	if E4.Coords() != "(4, 3)" {
		t.Errorf("E4.Coords() = %q", E4.Coords())
	}
	if NoSquare.String() != "-" || NoSquare.IsValid() {
		t.Error("NoSquare should print as - and be invalid")
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("a1a5")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.From() != A1 || m.To() != A5 || m.String() != "a1a5" {
		t.Errorf("ParseMove(a1a5) = %v (%v -> %v)", m, m.From(), m.To())
	}
	if _, err := ParseMove("a1"); err == nil {
		t.Error("expected error for short move")
	}
	if _, err := ParseMove("a1z9"); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("ParseMove(a1z9) error = %v", err)
	}
}
