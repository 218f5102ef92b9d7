package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d16p1, d16p2)
}

const secondMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

func TestSecondMaze(t *testing.T) {
	assert.Equal(t, "11048", aoctest.Solve(d16p1, secondMaze))
	assert.Equal(t, "64", aoctest.Solve(d16p2, secondMaze))
}

func TestCorridor(t *testing.T) {
	cases := []struct {
		name        string
		maze        string
		score, seat string
	}{
		{"Ahead", "#####\n#S.E#\n#####\n", "2", "3"},
		{"Behind", "#####\n#E.S#\n#####\n", "2002", "3"},
		{"Corner", "####\n#.E#\n#S##\n####\n", "2002", "3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.score, aoctest.Solve(d16p1, tc.maze))
			assert.Equal(t, tc.seat, aoctest.Solve(d16p2, tc.maze))
		})
	}
}

func TestMissingTiles(t *testing.T) {
	for name, maze := range map[string]string{
		"NoStart": "#####\n#..E#\n#####\n",
		"NoEnd":   "#####\n#S..#\n#####\n",
	} {
		t.Run(name, func(t *testing.T) {
			status, died := aoctest.Dies(func() { aoctest.Solve(d16p1, maze) })
			assert.True(t, died)
			assert.Equal(t, -1, status)
		})
	}
}
