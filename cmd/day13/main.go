// Day 13: Claw Contraption.
package main

import (
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d13p1, d13p2)
	aoc.Main()
}

type machine struct {
	a, b  aoc.Pt // claw movement per press
	prize aoc.Pt
}

func readMachines() []machine {
	lines := aoc.ReadLineCache().Lines()
	if len(lines)%3 != 0 {
		panic(fmt.Sprintf("%d lines is not a whole number of machines", len(lines)))
	}
	var ms []machine
	pt := func(line string) aoc.Pt {
		v := aoc.Ints(line)
		if len(v) != 2 {
			panic(fmt.Sprintf("bogus line %q", line))
		}
		return aoc.Pt{X: v[0], Y: v[1]}
	}
	for i := 0; i < len(lines); i += 3 {
		ms = append(ms, machine{
			a:     pt(lines[i]),
			b:     pt(lines[i+1]),
			prize: pt(lines[i+2]),
		})
	}
	return ms
}

// tokens returns the cost of winning m's prize, moved by offset on both
// axes, with at most limit presses per button (no limit if zero).
// The two button vectors fix a single way to reach the prize, so it
// is either winnable in whole presses or not at all.
func (m machine) tokens(offset, limit int) (int, bool) {
	px, py := m.prize.X+offset, m.prize.Y+offset
	det := m.a.X*m.b.Y - m.a.Y*m.b.X
	if det == 0 {
		log.Warn().Interface("a", m.a).Interface("b", m.b).Msg("parallel buttons")
		return 0, false
	}
	na := px*m.b.Y - py*m.b.X
	nb := m.a.X*py - m.a.Y*px
	if na%det != 0 || nb%det != 0 {
		return 0, false
	}
	a, b := na/det, nb/det
	if a < 0 || b < 0 || limit > 0 && (a > limit || b > limit) {
		return 0, false
	}
	return 3*a + b, true
}

func fewestTokens(offset, limit int) int {
	total := 0
	for _, m := range readMachines() {
		if n, ok := m.tokens(offset, limit); ok {
			total += n
		}
	}
	return total
}

/*
want=480

Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
*/
func d13p1() any {
	return fewestTokens(0, 100)
}

func d13p2() any {
	return fewestTokens(10000000000000, 0)
}
