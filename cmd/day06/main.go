// Day 6: Guard Gallivant.
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
	aoc.Add(d6p1, d6p2)
	aoc.Main()
}

// readLab loads the lab map with its start set to the guard's tile.
func readLab() *aoc.MapCache {
	lab := aoc.ReadMapCache()
	if !lab.Find('^') {
		panic("no guard on the map")
	}
	lab.SetStart()
	return lab
}

type turn struct {
	tile int
	dir  aoc.Direction
}

// patrol walks the guard from the start tile until it steps off the
// lab or turns the same way on the same tile twice, calling visit with
// every tile it stands on. It reports whether the guard got out.
func patrol(lab *aoc.MapCache, visit func(tile int)) bool {
	lab.Reset()
	guard := aoc.NewBot(aoc.Up)
	turns := aoc.NewLUT[turn, struct{}](1 << 8)
	for {
		if visit != nil {
			visit(lab.TileID())
		}
		tile, ok := lab.Peek(guard.Front())
		if !ok {
			return true
		}
		if tile == '#' {
			guard.TurnRight()
			if _, added := turns.Add(turn{lab.TileID(), guard.Front()}); !added {
				return false
			}
			continue
		}
		lab.Step(guard.Front())
	}
}

// visited returns the tiles the guard covers on an unobstructed patrol.
func visited(lab *aoc.MapCache) *aoc.LUT[int, struct{}] {
	seen := aoc.NewLUT[int, struct{}](1 << 12)
	if !patrol(lab, func(tile int) { seen.Add(tile) }) {
		panic("guard is trapped without help")
	}
	return seen
}

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func d6p1() any {
	return visited(readLab()).Len()
}

// want=6
func d6p2() any {
	lab := readLab()
	start := lab.TileID()
	// An obstruction off the guard's path changes nothing.
	path := visited(lab)
	log.Debug().Int("candidates", path.Len()).Msg("guard path")

	trapped := 0
	path.Do(func(tile int, _ *struct{}) {
		if tile == start {
			return
		}
		p := lab.PtOf(tile)
		lab.Set(p, '#')
		if !patrol(lab, nil) {
			trapped++
		}
		lab.Set(p, '.')
	})
	return trapped
}
