// Day 5: Print Queue.
package main

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d5p1, d5p2)
	aoc.Main()
}

// rules holds the page ordering rules: {x, y} means x prints before y.
type rules = aoc.LUT[[2]int, struct{}]

func readQueue() (*rules, [][]int) {
	r := aoc.NewLUT[[2]int, struct{}](1 << 12)
	var updates [][]int
	aoc.ForLines(func(line string) {
		switch {
		case line == "":
		case strings.Contains(line, "|"):
			pages := aoc.Ints(strings.ReplaceAll(line, "|", " "))
			if len(pages) != 2 {
				panic(fmt.Sprintf("bogus rule %q", line))
			}
			if _, added := r.Add([2]int{pages[0], pages[1]}); !added {
				panic(fmt.Sprintf("duplicate rule %q", line))
			}
		default:
			updates = append(updates, aoc.Ints(line))
		}
	})
	return r, updates
}

func compare(r *rules) func(a, b int) int {
	return func(a, b int) int {
		if _, ok := r.Lookup([2]int{a, b}); ok {
			return -1
		}
		if _, ok := r.Lookup([2]int{b, a}); ok {
			return 1
		}
		return 0
	}
}

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func d5p1() any {
	r, updates := readQueue()
	cmp := compare(r)
	sum := 0
	for _, u := range updates {
		if slices.IsSortedFunc(u, cmp) {
			sum += u[len(u)/2]
		}
	}
	return sum
}

// want=123
func d5p2() any {
	r, updates := readQueue()
	cmp := compare(r)
	sum := 0
	for _, u := range updates {
		if !slices.IsSortedFunc(u, cmp) {
			slices.SortFunc(u, cmp)
			sum += u[len(u)/2]
		}
	}
	return sum
}
