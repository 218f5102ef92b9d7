package aoc

import "fmt"

// Direction is a cardinal direction on a map, clockwise from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) TurnRight() Direction { return (d + 1) % 4 }
func (d Direction) TurnLeft() Direction  { return (d + 3) % 4 }
func (d Direction) Reverse() Direction   { return (d + 2) % 4 }

// Delta is the offset of a single step in direction d.
func (d Direction) Delta() Pt {
	return NorthClockwise[d](Pt{})
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps an arrow tile (^ > v <) to its Direction.
func ParseDirection(b byte) (Direction, bool) {
	switch b {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// Bot is a cursor that only knows which way it faces. Pair it with a
// MapCache to move it around.
type Bot struct {
	front Direction
}

func NewBot(front Direction) *Bot {
	return &Bot{front: front}
}

func (b *Bot) Front() Direction { return b.front }
func (b *Bot) TurnRight()       { b.front = b.front.TurnRight() }
func (b *Bot) TurnLeft()        { b.front = b.front.TurnLeft() }
func (b *Bot) Face(d Direction) { b.front = d }
