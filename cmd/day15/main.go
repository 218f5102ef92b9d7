// Day 15: Warehouse Woes.
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d15p1, d15p2)
	aoc.Main()
}

type warehouse struct {
	m     *aoc.MapCache
	moves string
}

// readWarehouse splits the input into the map, whose rows all start
// with a wall, and the robot's moves, joined into one string.
func readWarehouse() warehouse {
	var grid bytes.Buffer
	var moves strings.Builder
	aoc.ReadLineCache().Do(func(line string) bool {
		if strings.HasPrefix(line, "#") {
			grid.WriteString(line)
			grid.WriteByte('\n')
		} else {
			moves.WriteString(line)
		}
		return true
	})
	return warehouse{m: aoc.MustGet(aoc.NewMapCache(grid.Bytes())), moves: moves.String()}
}

var wider = map[byte]string{
	'#': "##",
	'O': "[]",
	'.': "..",
	'@': "@.",
}

// widen doubles the width of everything on m except the robot.
func widen(m *aoc.MapCache) *aoc.MapCache {
	var buf bytes.Buffer
	m.Each(func(id int, tile byte) {
		w, ok := wider[tile]
		if !ok {
			panic(fmt.Sprintf("bogus warehouse tile %q", tile))
		}
		buf.WriteString(w)
		if (id+1)%m.Width() == 0 {
			buf.WriteByte('\n')
		}
	})
	return aoc.MustGet(aoc.NewMapCache(buf.Bytes()))
}

// push moves the robot under m's cursor one step in direction d,
// shoving every box in the way. Nothing moves if any of them would hit
// a wall. The map is walled in, so nothing is pushed off it.
func push(m *aoc.MapCache, d aoc.Direction) {
	robot := m.Pos()
	seen := map[aoc.Pt]bool{robot: true}
	queue := []aoc.Pt{robot}
	var moving []aoc.Pt
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		moving = append(moving, p)
		q := p.Move(d)
		tile, _ := m.At(q)
		var next []aoc.Pt
		switch tile {
		case '#':
			return
		case 'O':
			next = []aoc.Pt{q}
		case '[':
			next = []aoc.Pt{q, q.East()}
		case ']':
			next = []aoc.Pt{q, q.West()}
		}
		for _, n := range next {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	// The queue is ordered by distance from the robot, so moving the
	// far end first never overwrites a tile that has yet to move.
	for i := len(moving) - 1; i >= 0; i-- {
		p := moving[i]
		tile, _ := m.At(p)
		m.Set(p.Move(d), tile)
		m.Set(p, '.')
	}
	m.GotoPt(robot.Move(d))
}

func gps(m *aoc.MapCache) int {
	sum := 0
	m.Each(func(id int, tile byte) {
		if tile == 'O' || tile == '[' {
			p := m.PtOf(id)
			sum += 100*p.Y + p.X
		}
	})
	return sum
}

// run follows all of the robot's moves and returns the final GPS sum.
func (w warehouse) run() int {
	if !w.m.Find('@') {
		aoc.Die(-1, "warehouse has no robot")
	}
	for i := 0; i < len(w.moves); i++ {
		d, ok := aoc.ParseDirection(w.moves[i])
		if !ok {
			panic(fmt.Sprintf("bogus move %q", w.moves[i]))
		}
		push(w.m, d)
	}
	log.Debug().Msgf("warehouse after %d moves\n%v", len(w.moves), w.m)
	return gps(w.m)
}

/*
want=2028

########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
*/
func d15p1() any {
	return readWarehouse().run()
}

/*
want=618

#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
*/
func d15p2() any {
	w := readWarehouse()
	w.m = widen(w.m)
	return w.run()
}
