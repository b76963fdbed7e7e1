// Package inputs lets call sites pass either a single value or an ordered
// collection of values through the same code path.
package inputs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var ErrLengthMismatch = errors.New("paired inputs have different lengths")

// OneOrMany holds either a single value or an ordered list of values. The zero
// value is an empty list.
type OneOrMany[T any] struct {
	values []T
	many   bool
}

func One[T any](v T) OneOrMany[T] {
	return OneOrMany[T]{values: []T{v}}
}

func Many[T any](vs ...T) OneOrMany[T] {
	return OneOrMany[T]{values: slices.Clone(vs), many: true}
}

// Values returns a copy of the held values in order. A single value comes back
// as a one element slice.
func (o OneOrMany[T]) Values() []T {
	return slices.Clone(o.values)
}

func (o OneOrMany[T]) Len() int {
	return len(o.values)
}

// IsMany reports whether o was built from a list, even a one element list.
func (o OneOrMany[T]) IsMany() bool {
	return o.many || o.values == nil
}

// Pair zips a and b by position.
func Pair[A any, B any](a OneOrMany[A], b OneOrMany[B]) ([]lo.Tuple2[A, B], error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	return lo.Zip2(a.Values(), b.Values()), nil
}
