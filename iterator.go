package dlist

import (
	"iter"
)

// Iterator is a forward-only cursor over a List, from the first element to the last.
// It cannot be restarted; call List.Iterator again for a new traversal.
//
//	it := l.Iterator()
//	for it.Next() {
//		fmt.Println(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// only possible with EnableStrictIteration
//	}
type Iterator[T any] struct {
	l *List[T]
	// next is the element Next moves onto; &l.root once the traversal is exhausted.
	next *element[T]
	cur  T
	gen  uint64
	err  error
}

// Iterator returns a new cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		l:    l,
		next: l.root.next,
		gen:  l.gen,
	}
}

// Next advances to the next element and reports whether there was one.
// It returns false at the end of the list, or after the iterator has gone stale.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.l.config.strictIteration && it.gen != it.l.gen {
		it.err = ErrStaleIterator
		return false
	}
	if it.next == &it.l.root {
		return false
	}
	it.cur = it.next.value
	it.next = it.next.next
	return true
}

// Value returns the element the last successful call to Next moved onto.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns ErrStaleIterator if the iteration was stopped by a structural modification, or nil.
func (it *Iterator[T]) Err() error {
	return it.err
}

// All returns a sequence of the elements from first to last.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for e := l.root.next; e != &l.root; e = e.next {
			if !yield(e.value) {
				return
			}
			l.checkGen(gen)
		}
	}
}

// Backward returns a sequence of the elements from last to first.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for e := l.root.prev; e != &l.root; e = e.prev {
			if !yield(e.value) {
				return
			}
			l.checkGen(gen)
		}
	}
}

func (l *List[T]) checkGen(gen uint64) {
	if l.config.strictIteration && gen != l.gen {
		panic(ErrStaleIterator)
	}
}
