package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrEmptyMap  = errors.New("aoc: map has no rows")
	ErrRaggedMap = errors.New("aoc: map rows differ in width")
)

// MapCache is a rectangular character map kept as one flat buffer, with
// a cursor that can be stepped around it. A tile's ID is its offset in
// the buffer; it stays valid for the life of the map.
type MapCache struct {
	data   []byte
	width  int
	height int
	pos    int
	start  int
}

// NewMapCache builds a map from raw rows separated by newlines. Blank
// rows are skipped.
func NewMapCache(raw []byte) (*MapCache, error) {
	m := &MapCache{data: make([]byte, 0, len(raw))}
	for _, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		if m.height == 0 {
			m.width = len(line)
		} else if len(line) != m.width {
			return nil, fmt.Errorf("%w: row %d is %d wide, want %d", ErrRaggedMap, m.height, len(line), m.width)
		}
		m.data = append(m.data, line...)
		m.height++
	}
	if m.height == 0 {
		return nil, ErrEmptyMap
	}
	return m, nil
}

// ReadMapCache builds a map from the puzzle input.
func ReadMapCache() *MapCache {
	return MustGet(NewMapCache(Input()))
}

// NewMapCacheGrid returns a rows x cols map with every tile set to fill.
func NewMapCacheGrid(rows, cols int, fill byte) *MapCache {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("bogus map size %dx%d", cols, rows))
	}
	return &MapCache{
		data:   bytes.Repeat([]byte{fill}, rows*cols),
		width:  cols,
		height: rows,
	}
}

func (m *MapCache) Width() int  { return m.width }
func (m *MapCache) Height() int { return m.height }

// Tile returns the tile under the cursor.
func (m *MapCache) Tile() byte { return m.data[m.pos] }

// TileID returns the ID of the tile under the cursor.
func (m *MapCache) TileID() int { return m.pos }

// Pos returns the cursor position.
func (m *MapCache) Pos() Pt { return m.PtOf(m.pos) }

// SetTile overwrites the tile under the cursor.
func (m *MapCache) SetTile(b byte) { m.data[m.pos] = b }

func (m *MapCache) In(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// ID returns the tile ID of p.
func (m *MapCache) ID(p Pt) (int, bool) {
	if !m.In(p) {
		return -1, false
	}
	return p.Y*m.width + p.X, true
}

func (m *MapCache) PtOf(id int) Pt {
	return Pt{id % m.width, id / m.width}
}

func (m *MapCache) At(p Pt) (byte, bool) {
	id, ok := m.ID(p)
	if !ok {
		return 0, false
	}
	return m.data[id], true
}

func (m *MapCache) Set(p Pt, b byte) {
	id, ok := m.ID(p)
	if !ok {
		panic(fmt.Sprintf("set %v outside %dx%d map", p, m.width, m.height))
	}
	m.data[id] = b
}

// Goto moves the cursor to tile id.
func (m *MapCache) Goto(id int) {
	if id < 0 || id >= len(m.data) {
		panic(fmt.Sprintf("tile %d outside map of %d tiles", id, len(m.data)))
	}
	m.pos = id
}

// GotoPt moves the cursor to p. It reports false, leaving the cursor
// alone, if p is off the map.
func (m *MapCache) GotoPt(p Pt) bool {
	id, ok := m.ID(p)
	if ok {
		m.pos = id
	}
	return ok
}

// SetStart remembers the cursor position for Reset.
func (m *MapCache) SetStart() { m.start = m.pos }

// Reset moves the cursor back to the start position.
func (m *MapCache) Reset() { m.pos = m.start }

// Peek returns the tile one step from the cursor in direction d without
// moving. It reports false if that step leaves the map.
func (m *MapCache) Peek(d Direction) (byte, bool) {
	return m.At(m.Pos().Move(d))
}

// Step moves the cursor one tile in direction d and returns the new
// tile. It reports false, leaving the cursor alone, if that step leaves
// the map.
func (m *MapCache) Step(d Direction) (byte, bool) {
	if !m.GotoPt(m.Pos().Move(d)) {
		return 0, false
	}
	return m.Tile(), true
}

func (m *MapCache) walk(offset int) (byte, bool) {
	np := m.pos + offset
	if np < 0 || np >= len(m.data) {
		return 0, false
	}
	m.pos = np
	return m.data[np], true
}

// WalkForward moves the cursor to the next tile in reading order,
// continuing onto the next row at the end of a row. It reports false at
// the last tile.
func (m *MapCache) WalkForward() (byte, bool) { return m.walk(1) }

// WalkBackward is WalkForward in reverse.
func (m *MapCache) WalkBackward() (byte, bool) { return m.walk(-1) }

// Find walks forward from the cursor, inclusive, to the first tile
// equal to b. If there is none, the cursor is left on the last tile and
// Find reports false.
func (m *MapCache) Find(b byte) bool {
	for {
		if m.Tile() == b {
			return true
		}
		if _, ok := m.WalkForward(); !ok {
			return false
		}
	}
}

// Count returns the number of tiles equal to b.
func (m *MapCache) Count(b byte) int {
	return bytes.Count(m.data, []byte{b})
}

// Each calls f for every tile in reading order.
func (m *MapCache) Each(f func(id int, tile byte)) {
	for id, tile := range m.data {
		f(id, tile)
	}
}

// Dup returns an independent copy of m, cursor included.
func (m *MapCache) Dup() *MapCache {
	dup := *m
	dup.data = bytes.Clone(m.data)
	return &dup
}

// Show writes the map to w, one row per line.
func (m *MapCache) Show(w io.Writer) error {
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		if _, err := fmt.Fprintf(w, "%s\n", row); err != nil {
			return err
		}
	}
	return nil
}

func (m *MapCache) String() string {
	var buf bytes.Buffer
	m.Show(&buf)
	return buf.String()
}
