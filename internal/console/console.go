// Package console implements a line-oriented command driver around one board.
package console

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
	"github.com/hailam/chessrules/internal/snapshot"
)

// Console owns a single board and applies commands to it. It is not safe
// for concurrent use.
type Console struct {
	engine      *rules.Engine
	board       *board.Board
	snapshot    snapshot.Options
	snapshotDir string

	out io.Writer
}

// Option configures a Console.
type Option func(*Console)

// WithSnapshot sets the PNG layout and the directory used by "png" without a path.
func WithSnapshot(opts snapshot.Options, dir string) Option {
	return func(c *Console) {
		c.snapshot = opts
		c.snapshotDir = dir
	}
}

// WithBoard starts the console on b instead of an empty board.
func WithBoard(b *board.Board) Option {
	return func(c *Console) {
		if b != nil {
			c.board = b
		}
	}
}

// New creates a console driving eng. A nil engine uses the package default.
func New(eng *rules.Engine, opts ...Option) *Console {
	if eng == nil {
		eng = rules.Default()
	}
	c := &Console{
		engine:      eng,
		board:       board.NewBoard(),
		snapshotDir: ".",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Board returns the console's board.
func (c *Console) Board() *board.Board {
	return c.board
}

// Run reads commands from r until "quit" or end of input, writing replies to w.
// Bad commands are reported on w and do not stop the loop.
func (c *Console) Run(r io.Reader, w io.Writer) error {
	c.out = w
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(joinCoords(line))
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			c.handleHelp()
		case "new":
			c.board.Clear()
		case "start":
			err = c.handleFEN([]string{board.StartPlacement})
		case "fen":
			err = c.handleFEN(args)
		case "placement":
			fmt.Fprintln(w, c.board.Placement())
		case "place":
			err = c.handlePlace(args)
		case "remove":
			err = c.handleRemove(args)
		case "move":
			err = c.handleMove(args)
		case "can":
			err = c.handleCan(args)
		case "targets":
			err = c.handleTargets(args)
		case "d", "draw":
			err = c.board.Render(w)
		case "png":
			err = c.handlePNG(args)
		default:
			err = fmt.Errorf("unknown command %q (try help)", cmd)
		}
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (c *Console) handleHelp() {
	fmt.Fprintln(c.out, "commands:")
	fmt.Fprintln(c.out, "  new                    clear the board")
	fmt.Fprintln(c.out, "  start                  standard starting placement")
	fmt.Fprintln(c.out, "  fen <fen>              load a FEN piece placement")
	fmt.Fprintln(c.out, "  placement              print the FEN piece placement")
	fmt.Fprintln(c.out, "  place <sq> <piece>     put a piece, e.g. place d4 wR")
	fmt.Fprintln(c.out, "  remove <sq>            empty a square")
	fmt.Fprintln(c.out, "  move <from> <to>       apply a move if legal")
	fmt.Fprintln(c.out, "  can <from> <to>        check a move without applying it")
	fmt.Fprintln(c.out, "  targets <sq>           list legal destinations")
	fmt.Fprintln(c.out, "  d                      draw the board")
	fmt.Fprintln(c.out, "  png [path]             write a PNG snapshot")
	fmt.Fprintln(c.out, "  quit")
	fmt.Fprintln(c.out, "squares are algebraic (e4) or file,rank (4,3 or (4, 3))")
}

func (c *Console) handleFEN(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("fen: missing placement")
	}
	b, err := board.ParseFEN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	*c.board = *b
	return nil
}

func (c *Console) handlePlace(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: place <sq> <piece>")
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	p, err := board.ParsePiece(args[1])
	if err != nil {
		return err
	}
	c.board.Set(sq, p)
	return nil
}

func (c *Console) handleRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: remove <sq>")
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	c.board.Remove(sq)
	return nil
}

// joinCoords drops whitespace inside parentheses so a square written as
// "(4, 3)" stays one argument.
func joinCoords(line string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range line {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth > 0 && unicode.IsSpace(r):
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// parseFromTo accepts "<from> <to>" or a single coordinate move like "a1a5".
func parseFromTo(args []string) (board.Square, board.Square, error) {
	switch len(args) {
	case 1:
		m, err := board.ParseMove(args[0])
		if err != nil {
			return board.NoSquare, board.NoSquare, err
		}
		return m.From(), m.To(), nil
	case 2:
		from, err := board.ParseSquare(args[0])
		if err != nil {
			return board.NoSquare, board.NoSquare, err
		}
		to, err := board.ParseSquare(args[1])
		if err != nil {
			return board.NoSquare, board.NoSquare, err
		}
		return from, to, nil
	default:
		return board.NoSquare, board.NoSquare, fmt.Errorf("expected <from> <to>")
	}
}

func (c *Console) handleMove(args []string) error {
	from, to, err := parseFromTo(args)
	if err != nil {
		return err
	}
	out, err := c.engine.ApplyMove(c.board, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Can move: %v, Game over: %v\n", out.Moved, out.GameOver)
	return nil
}

func (c *Console) handleCan(args []string) error {
	from, to, err := parseFromTo(args)
	if err != nil {
		return err
	}
	v, err := c.engine.Judge(c.board, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s %s -> %s: %s\n", c.board.At(from).DebugString(), from, to, v)
	return nil
}

func (c *Console) handleTargets(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: targets <sq>")
	}
	from, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	squares := c.engine.Targets(c.board, from).Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	fmt.Fprintf(c.out, "%s %s: %s\n", c.board.At(from).DebugString(), from, strings.Join(names, " "))
	return nil
}

func (c *Console) handlePNG(args []string) error {
	path := filepath.Join(c.snapshotDir, "board.png")
	if len(args) > 0 {
		path = args[0]
	}
	if err := snapshot.SaveFile(path, c.board, c.snapshot); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "wrote %s\n", path)
	return nil
}
