// Command perft runs the move generator's perft node counter from the
// command line, either against a single FEN or against the built-in
// reference corpus, grounded on the teacher's flag-driven perft CLI
// (-fen/-depth/-divide/-repeat) with an added -suite flag for regression
// runs against corpus.Positions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"chessgen/board"
	"chessgen/corpus"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "report per-root-move node counts")
	repeat := flag.Int("repeat", 1, "repeat the run this many times (for timing)")
	suite := flag.Bool("suite", false, "run every position in the built-in reference corpus instead of -fen")
	flag.Parse()

	if *suite {
		runSuite()
		return
	}

	b := board.ParseFen(*fen)
	if err := b.Validate(); err != nil {
		log.Fatalf("perft: invalid position %q: %v", *fen, err)
	}

	for i := 0; i < *repeat; i++ {
		start := time.Now()
		if *divide {
			entries := b.PerftDivide(*depth)
			sort.Slice(entries, func(i, j int) bool { return entries[i].Move.String() < entries[j].Move.String() })
			var total uint64
			for _, e := range entries {
				fmt.Printf("%s: %d\n", e.Move, e.Nodes)
				total += e.Nodes
			}
			elapsed := time.Since(start)
			fmt.Printf("\nTotal: %d nodes in %s (%.0f nps)\n", total, elapsed, nps(total, elapsed))
		} else {
			nodes := b.Perft(*depth)
			elapsed := time.Since(start)
			fmt.Printf("Nodes: %d in %s (%.0f nps)\n", nodes, elapsed, nps(nodes, elapsed))
		}
	}
}

func runSuite() {
	failures := 0
	for _, pos := range corpus.Positions() {
		for _, depth := range pos.MaxDepths() {
			want := pos.Depths[depth]
			if depth > 6 {
				// Depths beyond 6 run long enough that a CLI smoke-run
				// should skip them; use -fen/-depth directly for those.
				continue
			}
			b := board.ParseFen(pos.FEN)
			start := time.Now()
			got := b.Perft(depth)
			elapsed := time.Since(start)
			status := "ok"
			if got != want {
				status = "MISMATCH"
				failures++
			}
			fmt.Printf("%-10s depth=%d got=%-12d want=%-12d %-8s %s\n", pos.Name, depth, got, want, elapsed, status)
		}
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d mismatch(es)\n", failures)
		os.Exit(1)
	}
}

func nps(nodes uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}
