package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrhodes/aoc"
	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d15p1, d15p2)
}

func TestWiden(t *testing.T) {
	m, err := aoc.NewMapCache([]byte("####\n#O@#\n####\n"))
	require.NoError(t, err)
	assert.Equal(t, "########\n##[]@.##\n########\n", widen(m).String())
}

func TestWideRun(t *testing.T) {
	aoc.ExtractSamples(src)
	in, _, ok := aoc.SampleFor("d15p2")
	require.True(t, ok)
	var w warehouse
	aoc.Solve(func() any {
		w = readWarehouse()
		return nil
	}, []byte(in))
	w.m = widen(w.m)
	assert.Equal(t, 618, w.run())
	assert.Equal(t, ""+
		"##############\n"+
		"##...[].##..##\n"+
		"##...@.[]...##\n"+
		"##....[]....##\n"+
		"##..........##\n"+
		"##..........##\n"+
		"##############\n", w.m.String())
}

func TestPushBlocked(t *testing.T) {
	m, err := aoc.NewMapCache([]byte("#####\n#@OO#\n#####\n"))
	require.NoError(t, err)
	require.True(t, m.Find('@'))
	push(m, aoc.Right)
	assert.Equal(t, "#####\n#@OO#\n#####\n", m.String())
	assert.Equal(t, aoc.Pt{X: 1, Y: 1}, m.Pos())
}
