package main

import (
	"fmt"
	"log"

	"github.com/skewer-chess/skewer/board"
	"github.com/skewer-chess/skewer/engine"
)

func selfplay(fen string, depth, steps int) error {
	log.Println("============ selfplay")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	e := engine.NewEngine(&engine.EngineConfig{})
	fmt.Println(b.Draw())
	fmt.Println(b.FEN())

	var history []board.Move
	for step := 0; step < 2*steps; step++ {
		if !b.State().IsRunning() {
			break
		}
		mv, err := e.Search(b, depth)
		if err != nil {
			return err
		}
		b.Apply(mv)
		history = append(history, mv)

		fmt.Printf("\n>>> %s: %s\n", mv.IsTurn, mv)
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
	}

	log.Println("=============== game ended:", b.State())
	dumpGameHistory(history)
	return nil
}

func dumpGameHistory(mvs []board.Move) {
	for i, mv := range mvs {
		if mv.IsTurn == board.SideWhite {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
