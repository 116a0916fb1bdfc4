// Package dlist provides a generic doubly linked list built around a single sentinel element.
//
// The list is a ring: the sentinel sits between the last and the first element, so an empty list is just the
// sentinel pointing at itself. Insertion and removal at either end never need to check for a missing neighbour.
//
// A List is not safe for concurrent use. Callers sharing one between goroutines must serialize every call,
// and must not modify the list while an iteration over it is in progress.
package dlist
