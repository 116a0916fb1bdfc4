package dlist_test

import (
	"errors"
	"fmt"

	"github.com/motoki317/dlist"
)

func Example() {
	l := dlist.New[string]()
	l.AddLast("a")
	l.AddLast("b")
	l.AddFirst("z")

	fmt.Println(l, l.Len())
	fmt.Println(l.Get(1))
	fmt.Println(l.IndexOf("b"), l.Contains("q"))
	// Output:
	// [z, a, b] 3
	// a <nil>
	// 2 false
}

func ExampleList_RemoveFirst() {
	l := dlist.New[int]()
	for i := 1; i <= 3; i++ {
		l.AddLast(i)
	}

	for !l.IsEmpty() {
		v, _ := l.RemoveFirst()
		fmt.Println(v, l)
	}

	_, err := l.RemoveFirst()
	fmt.Println(errors.Is(err, dlist.ErrEmpty))
	// Output:
	// 1 [2, 3]
	// 2 [3]
	// 3 []
	// true
}

func ExampleList_Iterator() {
	l := dlist.New[int](dlist.EnableStrictIteration())
	l.AddLast(1)
	l.AddLast(2)

	it := l.Iterator()
	for it.Next() {
		fmt.Println(it.Value())
		if it.Value() == 1 {
			l.AddLast(3)
		}
	}
	fmt.Println(it.Err())
	// Output:
	// 1
	// dlist: list modified during iteration
}

func ExampleList_All() {
	l := dlist.New[string]()
	l.AddLast("x")
	l.AddLast("y")

	for v := range l.All() {
		fmt.Print(v, " ")
	}
	for v := range l.Backward() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// x y y x
}
