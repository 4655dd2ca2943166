package generics

import (
	"errors"
	"github.com/gfolker/generics/xiter"
	"golang.org/x/exp/constraints"
	"iter"
)

var ErrEmptyInput = errors.New("empty input: no extremum")

type SelfComparator[T any] interface {
	Compare(other T) int
}

// ExtremumOf returns a pointer to the largest element of s. When the maximum
// occurs more than once the first occurrence is returned.
func ExtremumOf[S ~[]E, E constraints.Ordered](s S) (*E, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	r := &s[0]
	for i := 1; i < len(s); i++ {
		if s[i] > *r {
			r = &s[i]
		}
	}

	return r, nil
}

func ExtremumOfFunc[S ~[]E, E any](s S, cmp func(a, b E) int) (*E, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	r := &s[0]
	for i := 1; i < len(s); i++ {
		if cmp(s[i], *r) > 0 {
			r = &s[i]
		}
	}

	return r, nil
}

func ExtremumOfComparator[S ~[]E, E SelfComparator[E]](s S) (*E, error) {
	return ExtremumOfFunc(s, func(a, b E) int {
		return a.Compare(b)
	})
}

// ExtremumOfSeq returns the largest value yielded by seq by value, since
// iterator elements are not addressable.
func ExtremumOfSeq[E constraints.Ordered](seq iter.Seq[E]) (E, error) {
	v, ok := xiter.Max(seq)
	if !ok {
		return v, ErrEmptyInput
	}

	return v, nil
}

// LargestInt32 is ExtremumOf without type parameters.
func LargestInt32(list []int32) (*int32, error) {
	if len(list) == 0 {
		return nil, ErrEmptyInput
	}

	n := &list[0]
	for i := range list {
		if list[i] > *n {
			n = &list[i]
		}
	}

	return n, nil
}
