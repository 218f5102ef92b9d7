// Day 7: Bridge Repair.
package main

import (
	_ "embed"
	"fmt"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d7p1, d7p2)
	aoc.Main()
}

type equation struct {
	test    int
	numbers []int
}

func readEquations() []equation {
	var eqs []equation
	aoc.ForLines(func(line string) {
		if line == "" {
			return
		}
		nums := aoc.Ints(line)
		if len(nums) < 2 {
			panic(fmt.Sprintf("bogus equation %q", line))
		}
		eqs = append(eqs, equation{test: nums[0], numbers: nums[1:]})
	})
	return eqs
}

// concat returns the digits of a followed by the digits of b.
func concat(a, b int) int {
	shift := 10
	for shift <= b {
		shift *= 10
	}
	return a*shift + b
}

// solvable reports whether the operators can be placed between the
// numbers, evaluated left to right, to produce the test value.
func (eq equation) solvable(withConcat bool) bool {
	var try func(acc int, rest []int) bool
	try = func(acc int, rest []int) bool {
		if len(rest) == 0 {
			return acc == eq.test
		}
		// Every operator only grows the value.
		if acc > eq.test {
			return false
		}
		n, rest := rest[0], rest[1:]
		return try(acc+n, rest) ||
			try(acc*n, rest) ||
			withConcat && try(concat(acc, n), rest)
	}
	return try(eq.numbers[0], eq.numbers[1:])
}

func calibrate(withConcat bool) int {
	total := 0
	for _, eq := range readEquations() {
		if eq.solvable(withConcat) {
			total += eq.test
		}
	}
	return total
}

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func d7p1() any {
	return calibrate(false)
}

// want=11387
func d7p2() any {
	return calibrate(true)
}
