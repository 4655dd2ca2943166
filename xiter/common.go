package xiter

import (
	"golang.org/x/exp/constraints"
	"iter"
)

func All[Slice ~[]E, E any](s Slice) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func Map[T any, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Max returns the first occurrence of the largest value in seq.
// The second return is false if seq yielded nothing.
func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var (
		r  T
		ok bool
	)

	for v := range seq {
		if !ok || v > r {
			r = v
			ok = true
		}
	}

	return r, ok
}

func MaxFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) (T, bool) {
	var (
		r  T
		ok bool
	)

	for v := range seq {
		if !ok || cmp(v, r) > 0 {
			r = v
			ok = true
		}
	}

	return r, ok
}
