// Day 4: Ceres Search.
package main

import (
	_ "embed"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d4p1, d4p2)
	aoc.Main()
}

// spells reports whether word can be read on m starting at p and
// moving by dir.
func spells(m *aoc.MapCache, p, dir aoc.Pt, word string) bool {
	for i := 0; i < len(word); i++ {
		if tile, ok := m.At(p.Add(dir.Mul(i))); !ok || tile != word[i] {
			return false
		}
	}
	return true
}

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func d4p1() any {
	m := aoc.ReadMapCache()
	count := 0
	for ok := true; ok; _, ok = m.WalkForward() {
		if m.Tile() != 'X' {
			continue
		}
		p := m.Pos()
		aoc.Pt{}.ForNeighbors(func(dir aoc.Pt) bool {
			if spells(m, p, dir, "XMAS") {
				count++
			}
			return true
		})
	}
	return count
}

// crossed reports whether the A at p is the middle of two diagonal MAS.
func crossed(m *aoc.MapCache, p aoc.Pt) bool {
	diag := func(a, b aoc.Pt) bool {
		x, _ := m.At(a)
		y, _ := m.At(b)
		return x == 'M' && y == 'S' || x == 'S' && y == 'M'
	}
	return diag(p.North().West(), p.South().East()) &&
		diag(p.North().East(), p.South().West())
}

// want=9
func d4p2() any {
	m := aoc.ReadMapCache()
	count := 0
	for ok := true; ok; _, ok = m.WalkForward() {
		if m.Tile() == 'A' && crossed(m, m.Pos()) {
			count++
		}
	}
	return count
}
