package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func values[T any](l *DList[T]) []T {
	var vs []T
	l.Do(func(n *Node[T]) bool {
		vs = append(vs, n.Value)
		return true
	})
	return vs
}

func TestDList_ZeroValue(t *testing.T) {
	var l DList[int]
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)
	assert.Equal(t, []int{0, 1, 2}, values(&l))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 0, l.Front().Value)
	assert.Equal(t, 2, l.Back().Value)
	assert.Nil(t, l.Front().Prev())
	assert.Nil(t, l.Back().Next())
}

func TestDList_Insert(t *testing.T) {
	l := NewDList[string]()
	b := l.PushBack("b")
	l.InsertBefore("a", b)
	d := l.InsertAfter("d", b)
	l.InsertBefore("c", d)
	assert.Equal(t, []string{"a", "b", "c", "d"}, values(l))
	assert.Equal(t, "c", b.Next().Value)
	assert.Equal(t, "a", b.Prev().Value)

	other := NewDList[string]()
	assert.Panics(t, func() { other.InsertBefore("x", b) })
	assert.Panics(t, func() { other.InsertAfter("x", b) })
	assert.Panics(t, func() { other.Remove(b) })
}

func TestDList_Remove(t *testing.T) {
	l := NewDList[int]()
	for i := range 6 {
		l.PushBack(i)
	}
	mid := l.Front().Next()
	assert.Equal(t, 1, l.Remove(mid))
	assert.Nil(t, mid.Next())
	assert.Equal(t, 5, l.Len())

	// Removing the current node during Do is fine.
	l.Do(func(n *Node[int]) bool {
		if n.Value%2 == 0 {
			l.Remove(n)
		}
		return true
	})
	assert.Equal(t, []int{3, 5}, values(l))

	l.Remove(l.Front())
	l.Remove(l.Back())
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
}

func TestDList_DoStops(t *testing.T) {
	l := NewDList[int]()
	for i := range 5 {
		l.PushBack(i)
	}
	var seen []int
	l.Do(func(n *Node[int]) bool {
		seen = append(seen, n.Value)
		return n.Value < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}
