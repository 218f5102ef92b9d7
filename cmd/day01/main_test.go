package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d1p1, d1p2)
}

func TestCountTree(t *testing.T) {
	var tree countTree[int]
	for _, n := range []int{4, 3, 5, 3, 9, 3} {
		tree.Add(n)
	}
	assert.Equal(t, 3, tree.Count(3))
	assert.Equal(t, 1, tree.Count(4))
	assert.Equal(t, 1, tree.Count(9))
	assert.Equal(t, 0, tree.Count(2))
}

func TestCountTreeStaysBalanced(t *testing.T) {
	cases := []struct {
		name string
		keys func(i int) int
	}{
		{"Ascending", func(i int) int { return i }},
		{"Descending", func(i int) int { return 1023 - i }},
		{"ZigZag", func(i int) int {
			if i%2 == 0 {
				return i
			}
			return 2048 - i
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tree countTree[int]
			for i := 0; i < 1024; i++ {
				tree.Add(tc.keys(i))
			}
			// 1024 distinct keys: a perfect tree has height 11, AVL allows 1.44x.
			assert.LessOrEqual(t, tree.Height(), 15)
			for i := 0; i < 1024; i++ {
				assert.Equal(t, 1, tree.Count(tc.keys(i)))
			}
		})
	}
}
