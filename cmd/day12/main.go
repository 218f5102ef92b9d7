// Day 12: Garden Groups.
package main

import (
	_ "embed"

	"github.com/rs/zerolog/log"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d12p1, d12p2)
	aoc.Main()
}

type region struct {
	plant     byte
	area      int
	perimeter int
	sides     int
}

// regions flood-fills the garden into regions of touching plots
// growing the same plant.
func regions(garden *aoc.MapCache) []region {
	seen := make([]bool, garden.Width()*garden.Height())
	var out []region
	garden.Each(func(id int, plant byte) {
		if seen[id] {
			return
		}
		same := func(p aoc.Pt) bool {
			t, ok := garden.At(p)
			return ok && t == plant
		}
		r := region{plant: plant}
		seen[id] = true
		queue := []aoc.Pt{garden.PtOf(id)}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			r.area++
			for d := aoc.Up; d <= aoc.Left; d++ {
				q := p.Move(d)
				if !same(q) {
					r.perimeter++
				} else if qid, _ := garden.ID(q); !seen[qid] {
					seen[qid] = true
					queue = append(queue, q)
				}
				// A region has as many sides as corners. Count the
				// corner of p between d and the next direction clockwise.
				e := d.TurnRight()
				a, b := same(q), same(p.Move(e))
				if !a && !b || a && b && !same(q.Move(e)) {
					r.sides++
				}
			}
		}
		out = append(out, r)
	})
	log.Debug().Int("regions", len(out)).Msg("mapped garden")
	return out
}

/*
want=140

AAAA
BBCD
BBCC
EEEC
*/
func d12p1() any {
	price := 0
	for _, r := range regions(aoc.ReadMapCache()) {
		price += r.area * r.perimeter
	}
	return price
}

// want=80
func d12p2() any {
	price := 0
	for _, r := range regions(aoc.ReadMapCache()) {
		price += r.area * r.sides
	}
	return price
}
