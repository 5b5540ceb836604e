package planar

import (
	"cmp"

	"github.com/pkg/errors"
)

// Minimizer keeps the n smallest values inserted so far, in ascending
// order. The nearest-neighbor style aggregations use it to track the best
// few candidate distances without holding everything seen.
type Minimizer[T cmp.Ordered] struct {
	n      int
	values []T
}

// NewMinimizer builds a tracker for the n smallest values. A capacity below
// one is ErrInvalidConfiguration; it would retain nothing.
func NewMinimizer[T cmp.Ordered](n int) (*Minimizer[T], error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "minimizer capacity %d", n)
	}
	return &Minimizer[T]{n: n, values: make([]T, 0, n)}, nil
}

// Insert offers a value. Once the tracker is full, a value not strictly
// smaller than the current largest retained one is discarded in O(1);
// otherwise it displaces that largest value, keeping the retained set
// sorted.
func (m *Minimizer[T]) Insert(v T) {
	if len(m.values) == m.n {
		if v >= m.values[len(m.values)-1] {
			return
		}
		m.values = m.values[:len(m.values)-1]
	}
	// Walk back from the end to the insertion point. The retained set is
	// small by construction, so a linear shift beats anything cleverer.
	i := len(m.values)
	m.values = append(m.values, v)
	for i > 0 && m.values[i-1] > v {
		m.values[i] = m.values[i-1]
		i--
	}
	m.values[i] = v
}

// Get returns the i-th smallest value retained so far; the second return is
// false when fewer than i+1 values are held.
func (m *Minimizer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(m.values) {
		var zero T
		return zero, false
	}
	return m.values[i], true
}

func (m *Minimizer[T]) Len() int {
	return len(m.values)
}

// Values returns a copy of the retained values, ascending.
func (m *Minimizer[T]) Values() []T {
	out := make([]T, len(m.values))
	copy(out, m.values)
	return out
}
