package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/skewer-chess/skewer/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	playRun   = flag.Bool("play", false, "run interactive play mode (default)")
	playDepth = flag.Int("play.depth", 4, "engine search depth in play mode")
	saveDir   = flag.String("play.savedir", ".skewer", "directory for the saved game store")

	selfplayRun   = flag.Bool("selfplay", false, "run engine vs engine mode")
	selfplaySteps = flag.Int("selfplay.steps", 100, "maximum full moves in selfplay mode")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 5, "perft depth")
)

func main() {
	flag.Parse()

	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	switch {
	case *movegenRun:
		return movegen(fen)
	case *perftRun:
		return perft(fen, *perftDepth)
	case *selfplayRun:
		return selfplay(fen, *playDepth, *selfplaySteps)
	default:
		_ = *playRun
		return play(fen, *playDepth, *saveDir)
	}
}
