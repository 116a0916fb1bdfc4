package dlist

import (
	"errors"
)

var (
	// ErrEmpty is returned by First, Last, RemoveFirst and RemoveLast on an empty list.
	ErrEmpty = errors.New("dlist: list is empty")
	// ErrIndexOutOfRange is returned by Get and Set when the index is negative or not less than Len.
	ErrIndexOutOfRange = errors.New("dlist: index out of range")
	// ErrStaleIterator is reported when a list created with EnableStrictIteration is structurally modified
	// while an iteration is in progress.
	ErrStaleIterator = errors.New("dlist: list modified during iteration")
)
