// Package corpus exposes the embedded set of standard perft reference
// positions used as the move generator's conformance oracle, grounded on
// the FEN/analysis fixture loaders in judwhite-lichess-bot's epd and
// yamlbook packages (both parse a checked-in YAML document with
// gopkg.in/yaml.v3 rather than hand-typing fixtures as Go literals).
package corpus

import (
	_ "embed"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed positions.yaml
var positionsYAML []byte

// Position is one reference position: a FEN string plus the expected perft
// leaf-node count at each depth that has been verified against it.
type Position struct {
	Name   string
	FEN    string
	Depths map[int]uint64
}

type document struct {
	Positions []struct {
		Name   string         `yaml:"name"`
		FEN    string         `yaml:"fen"`
		Depths map[int]uint64 `yaml:"depths"`
	} `yaml:"positions"`
}

// Positions returns the embedded reference corpus. It panics if the
// embedded YAML fails to parse, which would indicate a corrupted build
// rather than a reachable runtime condition.
func Positions() []Position {
	var doc document
	if err := yaml.Unmarshal(positionsYAML, &doc); err != nil {
		panic("corpus: malformed embedded positions.yaml: " + err.Error())
	}

	out := make([]Position, 0, len(doc.Positions))
	for _, p := range doc.Positions {
		out = append(out, Position{Name: p.Name, FEN: p.FEN, Depths: p.Depths})
	}
	return out
}

// MaxDepths returns the sorted depths present for a position, smallest
// first, so callers can iterate without re-sorting map keys themselves.
func (p Position) MaxDepths() []int {
	depths := make([]int, 0, len(p.Depths))
	for d := range p.Depths {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	return depths
}
