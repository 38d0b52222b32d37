package main

import (
	"log"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skewer-chess/skewer/board"
)

func perft(fen string, depth int) error {
	log.Printf("============ perft(%d)\n", depth)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	start := time.Now()
	div := board.PerftDivide(b, depth)
	elapsed := time.Since(start)

	var nodes uint64
	keys := make([]string, 0, len(div))
	for uci, child := range div {
		nodes += child
		keys = append(keys, uci)
	}
	sort.Strings(keys)
	for _, uci := range keys {
		log.Printf("%s: %d\n", uci, div[uci])
	}

	log.Println(message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/(elapsed+1).Seconds()), elapsed.Seconds()))
	return nil
}
