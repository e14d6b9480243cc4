// chessrules demo: place two pieces, try a move, show the board before and after.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/rules"
)

func main() {
	b := board.NewBoard()
	b.Set(board.NewSquare(0, 3), board.WhiteBishop)
	b.Set(board.NewSquare(2, 5), board.BlackPawn)

	draw(b)

	out, err := rules.ApplyMove(b, board.NewSquare(0, 3), board.NewSquare(2, 5))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Can move: %v, Game over: %v\n", out.Moved, out.GameOver)

	draw(b)
}

func draw(b *board.Board) {
	if err := b.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
}
