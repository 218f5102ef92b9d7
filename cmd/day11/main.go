// Day 11: Plutonian Pebbles.
package main

import (
	_ "embed"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d11p1, d11p2)
	aoc.Main()
}

// stones counts the stones engraved with each number. Stones never
// interact, so order doesn't matter.
type stones = aoc.LUT[int, int]

func readStones() *stones {
	s := aoc.NewLUT[int, int](1 << 6)
	for _, n := range aoc.Ints(string(aoc.Input())) {
		count, _ := s.Add(n)
		*count++
	}
	return s
}

// split cuts n in two if it has an even number of digits.
func split(n int) (left, right int, ok bool) {
	digits := strconv.Itoa(n)
	if len(digits)%2 != 0 {
		return 0, 0, false
	}
	half := len(digits) / 2
	return aoc.Int(digits[:half]), aoc.Int(digits[half:]), true
}

func blink(s *stones) *stones {
	next := aoc.NewLUT[int, int](s.Len() * 2)
	add := func(n, count int) {
		c, _ := next.Add(n)
		*c += count
	}
	s.Do(func(n int, count *int) {
		if n == 0 {
			add(1, *count)
		} else if l, r, ok := split(n); ok {
			add(l, *count)
			add(r, *count)
		} else {
			add(n*2024, *count)
		}
	})
	return next
}

func total(s *stones) int {
	sum := 0
	s.Do(func(_ int, count *int) { sum += *count })
	return sum
}

func blinks(s *stones, times int) int {
	for range times {
		s = blink(s)
	}
	log.Debug().Int("blinks", times).Int("distinct", s.Len()).Msg("stones")
	return total(s)
}

/*
want=55312

125 17
*/
func d11p1() any {
	return blinks(readStones(), 25)
}

func d11p2() any {
	return blinks(readStones(), 75)
}
