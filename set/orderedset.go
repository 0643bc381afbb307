package set

import (
	"cmp"
	"strings"

	"golang.org/x/exp/constraints"
)

// CompareFn returns a negative number when a < b, zero when a == b
// and a positive number when a > b.
type CompareFn[T any] func(a, b T) int

// OrderedSet is a set of unique values kept in an unbalanced binary search tree.
// It is not safe for concurrent use.
type OrderedSet[T any] struct {
	root subtree[T]
	cmp  CompareFn[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

// New creates an empty set ordered by the natural order of T.
func New[T constraints.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{cmp: cmp.Compare[T]}
}

// NewWithCompare creates an empty set ordered by fn.
func NewWithCompare[T any](fn CompareFn[T]) *OrderedSet[T] {
	if fn == nil {
		panic("set.NewWithCompare: nil compare function")
	}

	return &OrderedSet[T]{cmp: fn}
}

// Insert adds item to the set. Inserting a value that is
// already present is a no-op and reports modified == false.
func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	return s.root.insert(item, s.cmp)
}

func (s *OrderedSet[T]) InsertSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Has(item T) bool {
	return s.root.has(item, s.cmp)
}

// Len counts the stored values by walking the tree, O(n).
func (s *OrderedSet[T]) Len() int {
	return s.root.len()
}

// String renders the tree shape as (value left right), pre-order.
func (s *OrderedSet[T]) String() string {
	var b strings.Builder
	s.root.writeTo(&b)
	return b.String()
}
