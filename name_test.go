package aoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrhodes/aoc"
)

func d0p1() any { return 0 }

func TestFuncName(t *testing.T) {
	// This package is github.com/nrhodes/aoc_test, not main.
	assert.Equal(t, "d0p1", aoc.FuncName(d0p1))
}
