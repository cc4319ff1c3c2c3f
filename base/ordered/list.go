// Package ordered provides ordered data structures.
package ordered

// List is a mutable, insertion-ordered sequence. The grammar uses it
// for every form of repetition: argument lists, port lists, case
// items, concatenation items, if/else-if chains, generate items.
// Elements are never deduplicated or reordered.
type List[T any] struct {
	items []T
}

// NewList returns a new empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Append adds an element at the tail of the list.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Prepend adds an element at the head of the list.
func (l *List[T]) Prepend(v T) {
	l.items = append(l.items, v)
	copy(l.items[1:], l.items)
	l.items[0] = v
}

// Concat appends all elements of src after the tail of l.
// src is consumed: it is left empty.
func (l *List[T]) Concat(src *List[T]) {
	if src == nil {
		return
	}
	l.items = append(l.items, src.items...)
	src.items = nil
}

// At returns the element at index i, or false if i is out of range.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Iter returns an iterator to range over the elements of the list
// in insertion order.
func (l *List[T]) Iter() func(func(T) bool) {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				break
			}
		}
	}
}
