// Day 3: Mull It Over.
package main

import (
	_ "embed"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d3p1, d3p2)
	aoc.Main()
}

var instRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// scan sums the products of the mul instructions in memory. With
// conditionals set, don't() disables the following muls until the next
// do().
func scan(memory string, conditionals bool) int {
	sum := 0
	enabled := true
	for _, m := range instRx.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !conditionals {
				sum += aoc.Int(m[1]) * aoc.Int(m[2])
			}
		}
	}
	log.Debug().Bool("enabled", enabled).Int("sum", sum).Msg("scanned memory")
	return sum
}

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func d3p1() any {
	return scan(string(aoc.Input()), false)
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func d3p2() any {
	return scan(string(aoc.Input()), true)
}
