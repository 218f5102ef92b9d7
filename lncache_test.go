package aoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCache(t *testing.T) {
	lc := NewLineCache([]byte("a\r\n\nb b\nc"))
	assert.Equal(t, 3, lc.Len())
	assert.Equal(t, []string{"a", "b b", "c"}, lc.Lines())
	assert.Equal(t, "a\nb b\nc\n", lc.String())

	var first string
	lc.Do(func(line string) bool {
		first = line
		return false
	})
	assert.Equal(t, "a", first)

	var sb strings.Builder
	require.NoError(t, lc.Print(&sb))
	assert.Equal(t, lc.String(), sb.String())
}

func TestReadLineCache(t *testing.T) {
	lc := Solve(func() any { return ReadLineCache() }, []byte("x\n\ny\n")).(*LineCache)
	assert.Equal(t, []string{"x", "y"}, lc.Lines())
	assert.Equal(t, 0, NewLineCache(nil).Len())
}
