package set

import (
	"fmt"
	"strings"
)

type (
	// subtree is a slot that is either empty or owns exactly one node.
	subtree[T any] struct {
		node *node[T]
	}

	node[T any] struct {
		value T
		left  subtree[T]
		right subtree[T]
	}
)

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// insert places value at the first empty slot found by search.
// Equal values are discarded.
func (s *subtree[T]) insert(value T, cmp CompareFn[T]) (modified bool) {
	slot := s
	for slot.node != nil {
		c := cmp(value, slot.node.value)
		switch {
		case c < 0:
			slot = &slot.node.left
		case c > 0:
			slot = &slot.node.right
		default:
			return false
		}
	}

	slot.node = newNode(value)
	return true
}

// len walks the whole subtree, no count is cached.
func (s *subtree[T]) len() int {
	if s.node == nil {
		return 0
	}

	return 1 + s.node.left.len() + s.node.right.len()
}

func (s *subtree[T]) has(value T, cmp CompareFn[T]) bool {
	curr := s.node
	for curr != nil {
		c := cmp(value, curr.value)
		switch {
		case c < 0:
			curr = curr.left.node
		case c > 0:
			curr = curr.right.node
		default:
			return true
		}
	}

	return false
}

func (s *subtree[T]) writeTo(b *strings.Builder) {
	if s.node == nil {
		b.WriteString("()")
		return
	}

	fmt.Fprintf(b, "(%v ", s.node.value)
	s.node.left.writeTo(b)
	b.WriteByte(' ')
	s.node.right.writeTo(b)
	b.WriteByte(')')
}
