package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrhodes/aoc"
	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d14p1)
}

func TestAfter(t *testing.T) {
	size := aoc.Pt{X: 11, Y: 7}
	r := robot{p: aoc.Pt{X: 2, Y: 4}, v: aoc.Pt{X: 2, Y: -3}}
	assert.Equal(t, aoc.Pt{X: 4, Y: 1}, r.after(1, size))
	assert.Equal(t, aoc.Pt{X: 6, Y: 5}, r.after(2, size))
	assert.Equal(t, aoc.Pt{X: 1, Y: 3}, r.after(5, size))
}

func TestEasterEgg(t *testing.T) {
	size := aoc.Pt{X: 11, Y: 7}
	target := aoc.Pt{X: 5, Y: 3}
	var rs []robot
	for _, v := range []aoc.Pt{{X: 1}, {X: 2}, {X: 3}, {Y: 1}, {Y: 2}} {
		// Start each robot so that they all meet at target after 5 seconds.
		rs = append(rs, robot{p: target.Sub(v.Mul(5)).Mod(size), v: v})
	}
	assert.Equal(t, 5, easterEgg(rs, size))
	assert.Zero(t, spread(rs, size, 5))

	pic := picture(rs, size, 5)
	assert.Equal(t, 1, pic.Count('#'))
	tile, _ := pic.At(target)
	assert.Equal(t, byte('#'), tile)
}
