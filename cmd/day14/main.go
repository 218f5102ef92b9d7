// Day 14: Restroom Redoubt.
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
	aoc.Add(d14p1, d14p2)
	aoc.Main()
}

type robot struct {
	p, v aoc.Pt
}

// after returns where r is t seconds from now. Robots teleport across
// the edges of the space.
func (r robot) after(t int, size aoc.Pt) aoc.Pt {
	return r.p.Add(r.v.Mul(t)).Mod(size)
}

// readRobots returns the robots and the size of the space they patrol.
// The samples use a smaller space than the real input.
func readRobots() ([]robot, aoc.Pt) {
	size := aoc.Pt{X: 101, Y: 103}
	if aoc.Sample() {
		size = aoc.Pt{X: 11, Y: 7}
	}
	var rs []robot
	aoc.ReadLineCache().Do(func(line string) bool {
		v := aoc.Ints(line)
		if len(v) != 4 {
			panic("bogus robot " + line)
		}
		rs = append(rs, robot{p: aoc.Pt{X: v[0], Y: v[1]}, v: aoc.Pt{X: v[2], Y: v[3]}})
		return true
	})
	return rs, size
}

func safetyFactor(rs []robot, size aoc.Pt, t int) int {
	var quad [4]int
	mid := aoc.Pt{X: size.X / 2, Y: size.Y / 2}
	for _, r := range rs {
		p := r.after(t, size)
		if p.X == mid.X || p.Y == mid.Y {
			continue
		}
		i := 0
		if p.X > mid.X {
			i |= 1
		}
		if p.Y > mid.Y {
			i |= 2
		}
		quad[i]++
	}
	return quad[0] * quad[1] * quad[2] * quad[3]
}

// spread is the variance of the robots' positions at time t, scaled by
// the square of the robot count to stay in integers.
func spread(rs []robot, size aoc.Pt, t int) int {
	var sx, sxx, sy, syy int
	for _, r := range rs {
		p := r.after(t, size)
		sx += p.X
		sxx += p.X * p.X
		sy += p.Y
		syy += p.Y * p.Y
	}
	n := len(rs)
	return n*sxx - sx*sx + n*syy - sy*sy
}

// easterEgg returns the time at which the robots huddle closest
// together. Positions repeat after size.X*size.Y seconds.
func easterEgg(rs []robot, size aoc.Pt) int {
	best, bestT := -1, 0
	for t := 0; t < size.X*size.Y; t++ {
		if s := spread(rs, size, t); best < 0 || s < best {
			best, bestT = s, t
		}
	}
	return bestT
}

// picture draws the robots at time t.
func picture(rs []robot, size aoc.Pt, t int) *aoc.MapCache {
	m := aoc.NewMapCacheGrid(size.Y, size.X, '.')
	for _, r := range rs {
		m.Set(r.after(t, size), '#')
	}
	return m
}

/*
want=12

p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
*/
func d14p1() any {
	rs, size := readRobots()
	return safetyFactor(rs, size, 100)
}

func d14p2() any {
	rs, size := readRobots()
	t := easterEgg(rs, size)
	if e := log.Debug(); e.Enabled() {
		e.Int("second", t).Msgf("robots huddled\n%v", picture(rs, size, t))
	}
	return t
}
