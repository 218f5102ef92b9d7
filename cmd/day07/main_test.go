package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d7p1, d7p2)
}

func TestConcat(t *testing.T) {
	assert.Equal(t, 156, concat(15, 6))
	assert.Equal(t, 1210, concat(12, 10))
	assert.Equal(t, 486, concat(48, 6))
	assert.Equal(t, 70, concat(7, 0))
}

func TestSolvable(t *testing.T) {
	cases := []struct {
		eq         equation
		plain, all bool
	}{
		{equation{190, []int{10, 19}}, true, true},
		{equation{156, []int{15, 6}}, false, true},
		{equation{7290, []int{6, 8, 6, 15}}, false, true},
		{equation{21037, []int{9, 7, 18, 13}}, false, false},
		{equation{1, []int{1, 1}}, true, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.plain, tc.eq.solvable(false), "%v", tc.eq)
		assert.Equal(t, tc.all, tc.eq.solvable(true), "%v", tc.eq)
	}
}
