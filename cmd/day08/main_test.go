package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrhodes/aoc"
	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d8p1, d8p2)
}

func TestAntinodes(t *testing.T) {
	c := city{
		maxX:     9,
		maxY:     9,
		antennas: map[rune][]aoc.Pt{'a': {{X: 4, Y: 3}, {X: 5, Y: 5}}},
	}
	got := c.antinodes(1, 1)
	assert.Equal(t, 2, got.Len())
	_, ok := got.Lookup(aoc.Pt{X: 3, Y: 1})
	assert.True(t, ok)
	_, ok = got.Lookup(aoc.Pt{X: 6, Y: 7})
	assert.True(t, ok)
}

func TestHarmonics(t *testing.T) {
	assert.Equal(t, "9", aoctest.Solve(d8p2, "T.........\n...T......\n.T........\n..........\n..........\n..........\n..........\n..........\n..........\n..........\n"))
}
