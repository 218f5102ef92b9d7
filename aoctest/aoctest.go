// Package aoctest checks puzzle funcs against the samples recorded in
// their doc comments.
package aoctest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrhodes/aoc"
)

// CheckSamples extracts the samples from src and runs each of funcs
// against its sample. Every func must have one.
func CheckSamples(t *testing.T, src []byte, funcs ...func() any) {
	t.Helper()
	aoc.ExtractSamples(src)
	for _, f := range funcs {
		name := aoc.FuncName(f)
		t.Run(name, func(t *testing.T) {
			in, want, ok := aoc.SampleFor(name)
			require.True(t, ok, "no sample for %s", name)
			got := fmt.Sprint(aoc.Solve(f, []byte(in)))
			assert.Equal(t, want, got)
		})
	}
}

// Solve runs f against in and returns its answer formatted the way Main
// prints it.
func Solve(f func() any, in string) string {
	return fmt.Sprint(aoc.Solve(f, []byte(in)))
}

type exitStatus int

// Dies runs f and reports the status f passed to aoc.Die, if it did.
func Dies(f func()) (status int, died bool) {
	prev := aoc.SwapExit(func(status int) { panic(exitStatus(status)) })
	defer aoc.SwapExit(prev)
	defer func() {
		if r := recover(); r != nil {
			s, ok := r.(exitStatus)
			if !ok {
				panic(r)
			}
			status, died = int(s), true
		}
	}()
	f()
	return 0, false
}
