package console

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
	"github.com/hailam/chessrules/internal/snapshot"
)

func run(t *testing.T, c *Console, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := c.Run(strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func newConsole(opts ...Option) *Console {
	return New(rules.New(log.New(io.Discard, "", 0)), opts...)
}

func TestBishopDemo(t *testing.T) {
	c := newConsole()
	out := run(t, c, `
place 0,3 wB
place 2,5 bP
move 0,3 2,5
`)
	if !strings.Contains(out, "Can move: false, Game over: false") {
		t.Errorf("output = %q", out)
	}
	if c.Board().At(board.NewSquare(0, 3)) != board.WhiteBishop {
		t.Error("bishop should not have moved")
	}
}

func TestParenthesizedSquares(t *testing.T) {
	c := newConsole()
	out := run(t, c, `
place (4, 3) wR
move ( 4 , 3 ) (4, 6)
`)
	if strings.Contains(out, "error") {
		t.Fatalf("output = %q", out)
	}
	if !strings.Contains(out, "Can move: true, Game over: false") {
		t.Errorf("output = %q", out)
	}
	if c.Board().At(board.E7) != board.WhiteRook || !c.Board().IsEmpty(board.E4) {
		t.Errorf("board after move:\n%v", c.Board())
	}
}

func TestRookCapturesKing(t *testing.T) {
	c := newConsole()
	out := run(t, c, `
place d1 wR
place d6 bK
can d1 d6
move d1d6
placement
`)
	if !strings.Contains(out, "White Rook d1 -> d6: legal") {
		t.Errorf("missing verdict in %q", out)
	}
	if !strings.Contains(out, "Can move: true, Game over: true") {
		t.Errorf("missing outcome in %q", out)
	}
	if !strings.Contains(out, "8/8/3R4/8/8/8/8/8") {
		t.Errorf("missing placement in %q", out)
	}
}

func TestTargetsAndBlocked(t *testing.T) {
	c := newConsole()
	out := run(t, c, `
fen 8/8/8/8/8/8/8/N7 w - - 0 1
targets a1
place a4 wP
place a1 wR
can a1 a6
`)
	if !strings.Contains(out, "White Knight a1: c2 b3") {
		t.Errorf("knight targets missing in %q", out)
	}
	if !strings.Contains(out, "White Rook a1 -> a6: blocked") {
		t.Errorf("blocked verdict missing in %q", out)
	}
}

func TestErrorsDoNotStopLoop(t *testing.T) {
	c := newConsole()
	out := run(t, c, `
bogus
place z9 wR
place a1 xx
move a1
fen 8/8
place a1 wR
quit
place a2 wR
`)
	if n := strings.Count(out, "error:"); n != 5 {
		t.Errorf("got %d errors in %q", n, out)
	}
	if c.Board().At(board.A1) != board.WhiteRook {
		t.Error("place after errors was not applied")
	}
	if !c.Board().IsEmpty(board.A2) {
		t.Error("commands after quit were applied")
	}
}

func TestDrawAndNew(t *testing.T) {
	c := newConsole(WithBoard(mustBoard(t, board.StartPlacement)))
	out := run(t, c, "d\nnew\nplacement\n")
	if !strings.Contains(out, "|,I |,Z |,T |,Q |,K |,T |,Z |,I |") {
		t.Errorf("rank 0 row missing in %q", out)
	}
	if !strings.HasSuffix(out, "8/8/8/8/8/8/8/8\n") {
		t.Errorf("board not cleared: %q", out)
	}
}

func TestPNG(t *testing.T) {
	dir := t.TempDir()
	c := newConsole(WithSnapshot(snapshot.Options{CellSize: 16}, dir))
	out := run(t, c, "start\npng\n")

	path := filepath.Join(dir, "board.png")
	if !strings.Contains(out, "wrote "+path) {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
}

func mustBoard(t *testing.T, placement string) *board.Board {
	t.Helper()
	b, err := board.ParsePlacement(placement)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
