// Day 16: Reindeer Maze.
package main

import (
	_ "embed"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d16p1, d16p2)
	aoc.Main()
}

const (
	stepCost = 1
	turnCost = 1000

	unreached = math.MaxInt
)

// state is a reindeer standing on a tile, facing dir.
type state struct {
	tile int
	dir  aoc.Direction
}

func (s state) index() int { return s.tile*4 + int(s.dir) }

func readMaze() (maze *aoc.MapCache, start, end int) {
	maze = aoc.ReadMapCache()
	find := func(b byte) int {
		maze.Goto(0)
		if !maze.Find(b) {
			aoc.Die(-1, "maze has no %c tile", b)
		}
		return maze.TileID()
	}
	return maze, find('S'), find('E')
}

// lowestScores returns the lowest score with which the reindeer can
// reach every state from any of from, indexed by state.index.
func lowestScores(maze *aoc.MapCache, from ...state) []int {
	score := make([]int, maze.Width()*maze.Height()*4)
	for i := range score {
		score[i] = unreached
	}
	q := aoc.NewMinHeap[state](len(score) / 4)
	reach := func(s state, cost int) {
		if cost < score[s.index()] {
			score[s.index()] = cost
			q.Push(cost, s)
		}
	}
	for _, s := range from {
		reach(s, 0)
	}
	for {
		cost, s, ok := q.Pop()
		if !ok {
			break
		}
		if cost > score[s.index()] {
			continue // stale
		}
		ahead := maze.PtOf(s.tile).Move(s.dir)
		if tile, ok := maze.At(ahead); ok && tile != '#' {
			id, _ := maze.ID(ahead)
			reach(state{id, s.dir}, cost+stepCost)
		}
		reach(state{s.tile, s.dir.TurnLeft()}, cost+turnCost)
		reach(state{s.tile, s.dir.TurnRight()}, cost+turnCost)
	}
	return score
}

func bestAt(score []int, tile int) int {
	best := unreached
	for d := aoc.Up; d <= aoc.Left; d++ {
		best = min(best, score[state{tile, d}.index()])
	}
	return best
}

// The reindeer starts facing east.
func startState(start int) state {
	return state{start, aoc.Right}
}

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func d16p1() any {
	maze, start, end := readMaze()
	return bestAt(lowestScores(maze, startState(start)), end)
}

// want=45
func d16p2() any {
	maze, start, end := readMaze()
	fromStart := lowestScores(maze, startState(start))
	best := bestAt(fromStart, end)

	var ends []state
	for d := aoc.Up; d <= aoc.Left; d++ {
		ends = append(ends, state{end, d})
	}
	// Walking a best path backwards from the end, facing the other way,
	// costs the same.
	fromEnd := lowestScores(maze, ends...)

	seats := 0
	maze.Each(func(id int, _ byte) {
		for d := aoc.Up; d <= aoc.Left; d++ {
			there := fromStart[state{id, d}.index()]
			back := fromEnd[state{id, d.Reverse()}.index()]
			if there != unreached && back != unreached && there+back == best {
				seats++
				return
			}
		}
	})
	log.Debug().Int("best", best).Int("seats", seats).Msg("best paths")
	return seats
}
