// Day 8: Resonant Collinearity.
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
	aoc.Add(d8p1, d8p2)
	aoc.Main()
}

type city struct {
	maxX, maxY int
	antennas   map[rune][]aoc.Pt // by frequency
}

func readCity() city {
	g := aoc.ReadGrid()
	c := city{antennas: map[rune][]aoc.Pt{}}
	_, _, c.maxX, c.maxY = g.Bounds()
	for p, r := range g {
		if r != '.' {
			c.antennas[r] = append(c.antennas[r], p)
		}
	}
	log.Debug().Int("frequencies", len(c.antennas)).Msg("read city")
	return c
}

func (c city) in(p aoc.Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= c.maxX && p.Y <= c.maxY
}

// antinodes returns the distinct in-bounds antinode positions. Each
// ordered pair of same-frequency antennas a, b projects antinodes at
// b + k*(b-a) for k from first to last; a negative last runs to the
// edge of the map.
func (c city) antinodes(first, last int) *aoc.LUT[aoc.Pt, struct{}] {
	found := aoc.NewLUT[aoc.Pt, struct{}](1 << 10)
	for _, ants := range c.antennas {
		for _, a := range ants {
			for _, b := range ants {
				if a == b {
					continue
				}
				d := b.Sub(a)
				for k := first; last < 0 || k <= last; k++ {
					p := b.Add(d.Mul(k))
					if !c.in(p) {
						break
					}
					found.Add(p)
				}
			}
		}
	}
	return found
}

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func d8p1() any {
	return readCity().antinodes(1, 1).Len()
}

// want=34
func d8p2() any {
	return readCity().antinodes(0, -1).Len()
}
