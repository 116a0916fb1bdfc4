package dlist

import (
	"strconv"
	"testing"

	"github.com/samber/lo"
)

func BenchmarkList_AddRemove(b *testing.B) {
	l := New[int]()
	for i := 0; i < b.N; i++ {
		l.AddLast(i)
		l.AddFirst(i)
		_, _ = l.RemoveLast()
		_, _ = l.RemoveFirst()
	}
}

func BenchmarkList_Get(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			l := newIntList(lo.Range(size)...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = l.Get(i % size)
			}
		})
	}
}

func BenchmarkList_Iterate(b *testing.B) {
	const size = 1000
	l := newIntList(lo.Range(size)...)

	b.Run("Iterator", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			it := l.Iterator()
			for it.Next() {
				_ = it.Value()
			}
		}
	})
	b.Run("All", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for v := range l.All() {
				_ = v
			}
		}
	})
}
