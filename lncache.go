package aoc

import (
	"bytes"
	"fmt"
	"io"
)

// LineCache holds the non-empty lines of an input, in order.
type LineCache struct {
	lines DList[string]
}

func NewLineCache(raw []byte) *LineCache {
	lc := new(LineCache)
	for _, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		lc.lines.PushBack(string(line))
	}
	return lc
}

// ReadLineCache splits the puzzle input into lines.
func ReadLineCache() *LineCache {
	return NewLineCache(Input())
}

func (lc *LineCache) Len() int { return lc.lines.Len() }

// Do calls f on each line until f returns false.
func (lc *LineCache) Do(f func(line string) (keepGoing bool)) {
	lc.lines.Do(func(n *Node[string]) bool { return f(n.Value) })
}

func (lc *LineCache) Lines() []string {
	lines := make([]string, 0, lc.Len())
	lc.Do(func(line string) bool {
		lines = append(lines, line)
		return true
	})
	return lines
}

func (lc *LineCache) Print(w io.Writer) error {
	var err error
	lc.Do(func(line string) bool {
		_, err = fmt.Fprintln(w, line)
		return err == nil
	})
	return err
}

func (lc *LineCache) String() string {
	var buf bytes.Buffer
	lc.Print(&buf)
	return buf.String()
}
