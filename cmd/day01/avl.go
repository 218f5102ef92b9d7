package main

import "cmp"

// countTree is an AVL tree that counts how many times each key was
// added.
type countTree[K cmp.Ordered] struct {
	root *avlNode[K]
}

type avlNode[K cmp.Ordered] struct {
	key         K
	count       int
	height      int
	left, right *avlNode[K]
}

func (t *countTree[K]) Add(k K) {
	t.root = t.root.insert(k)
}

// Count returns the number of times k was added.
func (t *countTree[K]) Count(k K) int {
	n := t.root
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

func (t *countTree[K]) Height() int { return t.root.h() }

func (n *avlNode[K]) h() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *avlNode[K]) fix() {
	n.height = 1 + max(n.left.h(), n.right.h())
}

func (n *avlNode[K]) balance() int {
	return n.left.h() - n.right.h()
}

func (n *avlNode[K]) insert(k K) *avlNode[K] {
	if n == nil {
		return &avlNode[K]{key: k, count: 1, height: 1}
	}
	switch {
	case k < n.key:
		n.left = n.left.insert(k)
	case k > n.key:
		n.right = n.right.insert(k)
	default:
		n.count++
		return n
	}
	n.fix()
	return n.rebalance()
}

func (n *avlNode[K]) rebalance() *avlNode[K] {
	switch b := n.balance(); {
	case b > 1:
		if n.left.balance() < 0 {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	case b < -1:
		if n.right.balance() > 0 {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}
	return n
}

func (n *avlNode[K]) rotateRight() *avlNode[K] {
	l := n.left
	n.left = l.right
	l.right = n
	n.fix()
	l.fix()
	return l
}

func (n *avlNode[K]) rotateLeft() *avlNode[K] {
	r := n.right
	n.right = r.left
	r.left = n
	n.fix()
	r.fix()
	return r
}
