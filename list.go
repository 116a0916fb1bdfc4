package dlist

import (
	"fmt"
	"strings"
)

// element is a single node in the ring.
type element[T any] struct {
	prev, next *element[T]

	value T
}

// List is a doubly linked list with a sentinel element.
// Use New or NewFunc to create one; the zero value is not ready for use.
// A List must not be copied after first use.
type List[T any] struct {
	// root is the sentinel. root.next is the first element and root.prev the last one,
	// or &root itself when the list is empty. root.value is never read.
	root element[T]
	len  int

	eq func(a, b T) bool
	// gen is incremented on every structural modification.
	gen    uint64
	config listConfig
}

// New creates an empty list whose Contains and IndexOf compare elements with ==.
func New[T comparable](options ...ListOption) *List[T] {
	return NewFunc[T](func(a, b T) bool { return a == b }, options...)
}

// NewFunc creates an empty list whose Contains and IndexOf compare elements with eq.
// eq is called with the stored element as a and the searched value as b.
// A panic inside eq propagates to the caller of Contains or IndexOf.
func NewFunc[T any](eq func(a, b T) bool, options ...ListOption) *List[T] {
	if eq == nil {
		panic("dlist: eq cannot be nil")
	}

	config := defaultConfig()
	for _, option := range options {
		option(&config)
	}

	l := &List[T]{
		eq:     eq,
		config: config,
	}
	l.root.prev = &l.root
	l.root.next = &l.root
	return l
}

// Len is the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// insertAfter links a new element holding v right after at.
func (l *List[T]) insertAfter(v T, at *element[T]) {
	e := &element[T]{value: v}
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	l.len++
	l.gen++
}

// AddFirst inserts v at the front of the list.
func (l *List[T]) AddFirst(v T) {
	l.insertAfter(v, &l.root)
}

// AddLast inserts v at the back of the list.
func (l *List[T]) AddLast(v T) {
	l.insertAfter(v, l.root.prev)
}

// First returns the first element without removing it.
func (l *List[T]) First() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, fmt.Errorf("First: %w", ErrEmpty)
	}
	return l.root.next.value, nil
}

// Last returns the last element without removing it.
func (l *List[T]) Last() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, fmt.Errorf("Last: %w", ErrEmpty)
	}
	return l.root.prev.value, nil
}

// RemoveFirst removes and returns the first element.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, fmt.Errorf("RemoveFirst: %w", ErrEmpty)
	}

	old := l.root.next
	// With a single element old.next is the root, so this leaves root pointing at itself.
	l.root.next = old.next
	l.root.next.prev = &l.root
	return l.unlinked(old), nil
}

// RemoveLast removes and returns the last element.
func (l *List[T]) RemoveLast() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, fmt.Errorf("RemoveLast: %w", ErrEmpty)
	}

	old := l.root.prev
	l.root.prev = old.prev
	l.root.prev.next = &l.root
	return l.unlinked(old), nil
}

// unlinked finishes the removal of e, which the caller has already cut out of the ring.
func (l *List[T]) unlinked(e *element[T]) T {
	e.next = nil
	e.prev = nil
	l.len--
	l.gen++
	return e.value
}

// at walks forward from the first element to index i.
// i must be in [0, l.len).
func (l *List[T]) at(i int) *element[T] {
	e := l.root.next
	for ; i > 0; i-- {
		e = e.next
	}
	return e
}

func (l *List[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= l.len {
		return fmt.Errorf("%s: %w: index %d, length %d", op, ErrIndexOutOfRange, i, l.len)
	}
	return nil
}

// Get returns the element at the 0-based index i.
func (l *List[T]) Get(i int) (T, error) {
	if err := l.checkIndex("Get", i); err != nil {
		var zero T
		return zero, err
	}
	return l.at(i).value, nil
}

// Set replaces the element at the 0-based index i with v and returns the previous element.
// The list is left untouched if i is out of range.
func (l *List[T]) Set(i int, v T) (T, error) {
	if err := l.checkIndex("Set", i); err != nil {
		var zero T
		return zero, err
	}
	e := l.at(i)
	old := e.value
	e.value = v
	return old, nil
}

// IndexOf returns the index of the first element equal to v, or -1 if there is none.
func (l *List[T]) IndexOf(v T) int {
	i := 0
	for e := l.root.next; e != &l.root; e = e.next {
		if l.eq(e.value, v) {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether any element is equal to v.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// String formats the list as "[e0, e1, ..., en-1]", each element with the %v verb.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := l.root.next; e != &l.root; e = e.next {
		if e != l.root.next {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
