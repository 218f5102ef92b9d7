// Day 2: Red-Nosed Reports.
package main

import (
	_ "embed"
	"slices"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d2p1, d2p2)
	aoc.Main()
}

func readReports() [][]int {
	var reports [][]int
	aoc.ForLines(func(line string) {
		if levels := aoc.Ints(line); len(levels) > 0 {
			reports = append(reports, levels)
		}
	})
	return reports
}

// safe reports whether levels all increase or all decrease, by 1 to 3
// at each step.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		if (levels[i] > levels[i-1]) != increasing {
			return false
		}
		if d := aoc.AbsInt(levels[i], levels[i-1]); d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// dampenedSafe is safe, but tolerates removing any single level.
func dampenedSafe(levels []int) bool {
	if safe(levels) {
		return true
	}
	for i := range levels {
		if safe(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func d2p1() any {
	n := 0
	for _, r := range readReports() {
		if safe(r) {
			n++
		}
	}
	return n
}

// want=4
func d2p2() any {
	n := 0
	for _, r := range readReports() {
		if dampenedSafe(r) {
			n++
		}
	}
	return n
}
