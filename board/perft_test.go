package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chessgen/board"
	"chessgen/corpus"
)

// TestPerftAgainstReferenceCorpus walks the embedded standard-position
// corpus and checks the generator's leaf-node counts against chess
// programming's widely-published perft results. Depths are capped per
// position to keep the suite fast; cmd/perft's -suite flag exercises the
// deeper values the embedded corpus also carries.
func TestPerftAgainstReferenceCorpus(t *testing.T) {
	const maxDepthInSuite = 4

	for _, pos := range corpus.Positions() {
		pos := pos
		t.Run(pos.Name, func(t *testing.T) {
			b := board.ParseFen(pos.FEN)
			assert.NoError(t, b.Validate(), "position %s fails Validate()", pos.Name)

			for _, depth := range pos.MaxDepths() {
				if depth > maxDepthInSuite {
					continue
				}
				want := pos.Depths[depth]
				got := b.Perft(depth)
				assert.Equalf(t, want, got, "%s depth %d", pos.Name, depth)
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := board.ParseFen(board.StartFEN)
	entries := b.PerftDivide(3)

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	assert.Equal(t, b.Perft(3), total)
}

func TestPerftZeroDepthCountsCurrentPosition(t *testing.T) {
	b := board.ParseFen(board.StartFEN)
	assert.Equal(t, uint64(1), b.Perft(0))
}
