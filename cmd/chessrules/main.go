package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/console"
	"github.com/hailam/chessrules/internal/rules"
	"github.com/hailam/chessrules/internal/snapshot"
)

var (
	envFile  = flag.String("env", "", "load settings from this .env file (default .env)")
	quiet    = flag.Bool("quiet", false, "silence blocked-path diagnostics")
	fen      = flag.String("fen", "", "start from this FEN piece placement")
	snapPath = flag.String("snapshot", "", "write a PNG snapshot of the final board to this file")
)

func main() {
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		log.Fatal(err)
	}
	if *quiet {
		cfg.Quiet = true
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if cfg.Quiet {
		logger = log.New(io.Discard, "", 0)
	}
	eng := rules.New(logger)

	b := board.NewBoard()
	if *fen != "" {
		b, err = board.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("invalid -fen: %v", err)
		}
	}

	opts := snapshot.Options{CellSize: cfg.CellSize}
	c := console.New(eng,
		console.WithBoard(b),
		console.WithSnapshot(opts, cfg.SnapshotDir),
	)
	if err := c.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}

	if *snapPath != "" {
		if err := snapshot.SaveFile(*snapPath, c.Board(), opts); err != nil {
			log.Fatal(err)
		}
		log.Printf("Snapshot written to %s", *snapPath)
	}
}
