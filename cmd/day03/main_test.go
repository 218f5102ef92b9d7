package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrhodes/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, src, d3p1, d3p2)
}

func TestScan(t *testing.T) {
	cases := []struct {
		memory       string
		plain, gated int
	}{
		{"mul(44,46)", 2024, 2024},
		{"mul(123,4)", 492, 492},
		{"mul(4*", 0, 0},
		{"mul(6,9!", 0, 0},
		{"?(12,34)", 0, 0},
		{"mul ( 2 , 4 )", 0, 0},
		{"mul(1234,5)", 0, 0},
		{"don't()mul(2,3)do()mul(4,5)", 26, 20},
		{"don'tmul(2,3)", 6, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.plain, scan(tc.memory, false), "scan(%q, false)", tc.memory)
		assert.Equal(t, tc.gated, scan(tc.memory, true), "scan(%q, true)", tc.memory)
	}
}
