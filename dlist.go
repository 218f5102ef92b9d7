package aoc

// Node is an element of a DList.
type Node[T any] struct {
	Value T

	next, prev *Node[T]
	list       *DList[T]
}

// Next returns the following node, or nil at the back of the list.
func (n *Node[T]) Next() *Node[T] {
	if p := n.next; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

// Prev returns the preceding node, or nil at the front of the list.
func (n *Node[T]) Prev() *Node[T] {
	if p := n.prev; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

// DList is a doubly-linked list. The zero value is an empty list ready
// to use.
type DList[T any] struct {
	root Node[T] // sentinel; root.next is the front, root.prev the back
	len  int
}

func NewDList[T any]() *DList[T] {
	return new(DList[T]).lazyInit()
}

func (l *DList[T]) lazyInit() *DList[T] {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
	return l
}

func (l *DList[T]) Len() int { return l.len }

func (l *DList[T]) Front() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *DList[T]) Back() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *DList[T]) insert(v T, at *Node[T]) *Node[T] {
	n := &Node[T]{Value: v, list: l}
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
	l.len++
	return n
}

func (l *DList[T]) PushFront(v T) *Node[T] {
	l.lazyInit()
	return l.insert(v, &l.root)
}

func (l *DList[T]) PushBack(v T) *Node[T] {
	l.lazyInit()
	return l.insert(v, l.root.prev)
}

// InsertBefore inserts v immediately before mark, which must be in l.
func (l *DList[T]) InsertBefore(v T, mark *Node[T]) *Node[T] {
	if mark.list != l {
		panic("dlist: mark not in list")
	}
	return l.insert(v, mark.prev)
}

// InsertAfter inserts v immediately after mark, which must be in l.
func (l *DList[T]) InsertAfter(v T, mark *Node[T]) *Node[T] {
	if mark.list != l {
		panic("dlist: mark not in list")
	}
	return l.insert(v, mark)
}

// Remove unlinks n from l and returns its value.
func (l *DList[T]) Remove(n *Node[T]) T {
	if n.list != l {
		panic("dlist: node not in list")
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev, n.list = nil, nil, nil
	l.len--
	return n.Value
}

// Do calls f on each node from front to back until f returns false.
// f may remove the node it is given.
func (l *DList[T]) Do(f func(n *Node[T]) (keepGoing bool)) {
	for n := l.Front(); n != nil; {
		next := n.Next()
		if !f(n) {
			return
		}
		n = next
	}
}
