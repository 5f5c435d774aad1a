// Command uci is a minimal UCI-style command loop exposing position setup
// and perft-based search replacement (spec.md §6), grounded on the
// teacher's uci.go token-scanning dispatch (bufio.Scanner + strings.Fields
// + switch) with the search/evaluation commands it supports removed, since
// this repository has no search engine behind it.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"chessgen/board"
)

func main() {
	b := board.ParseFen(board.StartFEN)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "uci":
			fmt.Println("id name chessgen")
			fmt.Println("id author the chessgen contributors")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			b = board.ParseFen(board.StartFEN)
		case "position":
			b = handlePosition(fields[1:])
		case "go":
			handleGo(b, fields[1:])
		case "quit":
			return
		default:
			fmt.Printf("Unknown command: '%s'.\n", line)
		}
	}
}

func handlePosition(args []string) *board.Board {
	if len(args) == 0 {
		return board.ParseFen(board.StartFEN)
	}

	var b *board.Board
	rest := args
	switch args[0] {
	case "startpos":
		b = board.ParseFen(board.StartFEN)
		rest = args[1:]
	case "fen":
		movesIdx := indexOf(args, "moves")
		end := len(args)
		if movesIdx >= 0 {
			end = movesIdx
		}
		b = board.ParseFen(strings.Join(args[1:end], " "))
		if movesIdx >= 0 {
			rest = args[movesIdx:]
		} else {
			rest = nil
		}
	default:
		return board.ParseFen(board.StartFEN)
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, uciMove := range rest[1:] {
			m := findMove(b, uciMove)
			if m == board.NoMove {
				break
			}
			b.MakeMove(m)
		}
	}
	return b
}

func indexOf(fields []string, s string) int {
	for i, f := range fields {
		if f == s {
			return i
		}
	}
	return -1
}

// findMove resolves a UCI long-algebraic move string (e.g. "e2e4", "e7e8q")
// against the position's legal moves, since Move's packed encoding cannot
// be parsed back out without knowing which flag the position requires.
func findMove(b *board.Board, uciMove string) board.Move {
	var list board.MoveList
	board.GenerateLegalMoves(b, &list)
	for _, m := range list.Slice() {
		if m.String() == uciMove {
			return m
		}
	}
	return board.NoMove
}

func handleGo(b *board.Board, args []string) {
	if len(args) >= 2 && args[0] == "perft" {
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("Unknown command: 'go %s'.\n", strings.Join(args, " "))
			return
		}
		runDividePerft(b, depth)
		return
	}
	fmt.Printf("Unknown command: 'go %s'.\n", strings.Join(args, " "))
}

func runDividePerft(b *board.Board, depth int) {
	start := time.Now()
	entries := b.PerftDivide(depth)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move.String() < entries[j].Move.String() })

	var total uint64
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Printf("Total: %d nodes in %d ms\n", total, time.Since(start).Milliseconds())
}
