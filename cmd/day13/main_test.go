package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrhodes/aoc"
	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d13p1)
}

func TestTokens(t *testing.T) {
	aoc.ExtractSamples(src)
	in, _, ok := aoc.SampleFor("d13p1")
	require.True(t, ok)
	var ms []machine
	aoc.Solve(func() any {
		ms = readMachines()
		return nil
	}, []byte(in))
	require.Len(t, ms, 4)

	n, ok := ms[0].tokens(0, 100)
	assert.True(t, ok)
	assert.Equal(t, 280, n)
	_, ok = ms[1].tokens(0, 100)
	assert.False(t, ok)

	// Only the second and fourth machines are winnable once the prizes move.
	const offset = 10000000000000
	for i, want := range []bool{false, true, false, true} {
		_, ok := ms[i].tokens(offset, 0)
		assert.Equal(t, want, ok, "machine %d", i)
	}
}

func TestPressLimit(t *testing.T) {
	m := machine{a: aoc.Pt{X: 1, Y: 0}, b: aoc.Pt{X: 0, Y: 1}, prize: aoc.Pt{X: 101, Y: 5}}
	_, ok := m.tokens(0, 100)
	assert.False(t, ok)
	n, ok := m.tokens(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 3*101+5, n)
}
