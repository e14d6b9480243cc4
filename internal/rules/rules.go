// Package rules decides move legality on a board and applies legal moves.
package rules

import (
	"fmt"
	"log"

	"github.com/hailam/chessrules/internal/board"
)

// Verdict is the result of checking one move against its piece's rule.
type Verdict uint8

const (
	Illegal     Verdict = iota // the piece cannot move there
	Legal                      // the move may be applied
	Blocked                    // a piece stands on the path
	Unsupported                // no movement rule exists yet for the piece kind
	Vacant                     // there is no piece on the origin square
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Illegal:
		return "illegal"
	case Legal:
		return "legal"
	case Blocked:
		return "blocked"
	case Unsupported:
		return "unsupported"
	case Vacant:
		return "vacant"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Outcome reports what ApplyMove did.
type Outcome struct {
	Moved    bool // the move was legal and applied
	GameOver bool // the move captured a king
}

// Rule is the movement rule of one piece kind. Check must not modify the board.
type Rule interface {
	Check(b *board.Board, from, to board.Square) Verdict
}

// Engine checks and applies moves. It holds no board state; the only thing
// it carries is the per-kind rule table and the logger for diagnostics.
type Engine struct {
	rules  [board.NoPieceType + 1]Rule
	logger *log.Logger
}

// New creates an engine with the built-in rules. Diagnostics go to logger,
// or to the standard logger when logger is nil.
func New(logger *log.Logger) *Engine {
	e := &Engine{logger: logger}
	e.rules[board.Pawn] = unsupported{}
	e.rules[board.Knight] = knight{}
	e.rules[board.Bishop] = unsupported{}
	e.rules[board.Rook] = rook{}
	e.rules[board.Queen] = unsupported{}
	e.rules[board.King] = unsupported{}
	e.rules[board.NoPieceType] = vacant{}
	return e
}

// SetRule replaces the rule used for pieces of type pt.
func (e *Engine) SetRule(pt board.PieceType, r Rule) {
	if pt >= board.NoPieceType || r == nil {
		return
	}
	e.rules[pt] = r
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (e *Engine) check(b *board.Board, from, to board.Square) Verdict {
	return e.rules[b.At(from).Type()].Check(b, from, to)
}

// Judge returns the verdict for moving the piece on from to to.
// It fails only for squares outside the board.
func (e *Engine) Judge(b *board.Board, from, to board.Square) (Verdict, error) {
	if err := validate(from, to); err != nil {
		return Illegal, err
	}
	v := e.check(b, from, to)
	if v == Blocked {
		if sq, ok := Blocker(b, from, to); ok {
			e.logf("Piece in the way! %s %s", sq.Coords(), sq)
		}
	}
	return v, nil
}

// CanMoveTo reports whether the piece on from may move to to.
// Squares off the board are never legal.
func (e *Engine) CanMoveTo(b *board.Board, from, to board.Square) bool {
	v, err := e.Judge(b, from, to)
	return err == nil && v == Legal
}

// ApplyMove moves the piece on from to to if the move is legal. Illegal moves
// leave the board untouched and return a zero Outcome. GameOver is set when
// the captured piece was a king of either color.
func (e *Engine) ApplyMove(b *board.Board, from, to board.Square) (Outcome, error) {
	v, err := e.Judge(b, from, to)
	if err != nil {
		return Outcome{}, err
	}
	if v != Legal {
		return Outcome{}, nil
	}

	piece := b.At(from)
	gameOver := b.At(to).Type() == board.King

	b.Set(from, board.NoPiece)
	b.Set(to, piece)

	return Outcome{Moved: true, GameOver: gameOver}, nil
}

// Targets returns every square the piece on from may legally move to.
// No diagnostics are emitted while probing.
func (e *Engine) Targets(b *board.Board, from board.Square) board.Bitboard {
	var bb board.Bitboard
	if !from.IsValid() {
		return bb
	}
	for to := board.A1; to <= board.H8; to++ {
		if e.check(b, from, to) == Legal {
			bb = bb.Set(to)
		}
	}
	return bb
}

func validate(from, to board.Square) error {
	if !from.IsValid() {
		return fmt.Errorf("from square %d: %w", uint8(from), board.ErrInvalidCoordinate)
	}
	if !to.IsValid() {
		return fmt.Errorf("to square %d: %w", uint8(to), board.ErrInvalidCoordinate)
	}
	return nil
}

var std = New(nil)

// Default returns the engine used by the package-level functions.
func Default() *Engine { return std }

// CanMoveTo reports whether the piece on from may move to to, using the default engine.
func CanMoveTo(b *board.Board, from, to board.Square) bool {
	return std.CanMoveTo(b, from, to)
}

// ApplyMove applies a move using the default engine.
func ApplyMove(b *board.Board, from, to board.Square) (Outcome, error) {
	return std.ApplyMove(b, from, to)
}

// Judge returns the verdict for a move using the default engine.
func Judge(b *board.Board, from, to board.Square) (Verdict, error) {
	return std.Judge(b, from, to)
}

// Targets returns the legal destinations from a square using the default engine.
func Targets(b *board.Board, from board.Square) board.Bitboard {
	return std.Targets(b, from)
}
