// Day 10: Hoof It.
package main

import (
	_ "embed"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d10p1, d10p2)
	aoc.Main()
}

// climb follows every hiking trail up from p, one height at a time, and
// calls reached with the tile ID of the 9 that ends each trail.
func climb(m *aoc.MapCache, p aoc.Pt, reached func(peak int)) {
	h, _ := m.At(p)
	if h == '9' {
		id, _ := m.ID(p)
		reached(id)
		return
	}
	for d := aoc.Up; d <= aoc.Left; d++ {
		q := p.Move(d)
		if next, ok := m.At(q); ok && next == h+1 {
			climb(m, q, reached)
		}
	}
}

// trailheads calls f with the position of every 0 on m.
func trailheads(m *aoc.MapCache, f func(p aoc.Pt)) {
	m.Each(func(id int, tile byte) {
		if tile == '0' {
			f(m.PtOf(id))
		}
	})
}

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func d10p1() any {
	m := aoc.ReadMapCache()
	score := 0
	trailheads(m, func(p aoc.Pt) {
		peaks := aoc.NewLUT[int, struct{}](16)
		climb(m, p, func(peak int) { peaks.Add(peak) })
		score += peaks.Len()
	})
	return score
}

// want=81
func d10p2() any {
	m := aoc.ReadMapCache()
	rating := 0
	trailheads(m, func(p aoc.Pt) {
		climb(m, p, func(int) { rating++ })
	})
	return rating
}
