// Day 1: Historian Hysteria.
package main

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d1p1, d1p2)
	aoc.Main()
}

func readLists() (left, right []int) {
	aoc.ForLines(func(line string) {
		if line == "" {
			return
		}
		nums := aoc.Ints(line)
		if len(nums) != 2 {
			panic(fmt.Sprintf("bogus location pair %q", line))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	})
	return left, right
}

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func d1p1() any {
	left, right := readLists()
	slices.Sort(left)
	slices.Sort(right)
	distance := 0
	for i := range left {
		distance += aoc.AbsInt(left[i], right[i])
	}
	return distance
}

// want=31
func d1p2() any {
	left, right := readLists()
	var counts countTree[int]
	for _, n := range right {
		counts.Add(n)
	}
	score := 0
	for _, n := range left {
		score += n * counts.Count(n)
	}
	return score
}
