package source

import "iter"

// Source supplies the scheduler with items to dispatch, a batch at a time,
// without pre-materializing the whole collection.
//
// A Source is consumed by a single goroutine (the scheduler) and its cursor
// only moves forward: every item is handed out exactly once, in input order.
//
// Usage Example:
//
//	src := source.FromSlice([]string{"a", "b", "c"})
//	for src.HasMore() {
//	    batch := src.Take(2)
//	    // ...
//	}
type Source[T any] interface {
	// HasMore reports whether the source still has items to hand out.
	HasMore() bool

	// Take returns up to n next items, advancing past them. It returns
	// fewer than n items only when the source is exhausted, and nil
	// when n is not positive or nothing is left.
	Take(n int) []T
}

type sliceSource[T any] struct {
	items  []T
	cursor int
}

var _ Source[int] = &sliceSource[int]{}

// FromSlice returns a zero-allocation source over items. Take returns
// sub-slice windows of the original backing array; the capacity of each
// window is clipped so a processing function that appends cannot reach
// into the next window.
func FromSlice[T any](items []T) Source[T] {
	return &sliceSource[T]{items: items}
}

func (s *sliceSource[T]) HasMore() bool {
	return s.cursor < len(s.items)
}

func (s *sliceSource[T]) Take(n int) []T {
	if n <= 0 || s.cursor >= len(s.items) {
		return nil
	}

	end := s.cursor + n
	if end > len(s.items) {
		end = len(s.items)
	}

	batch := s.items[s.cursor:end:end]
	s.cursor = end
	return batch
}

type seqSource[T any] struct {
	next func() (T, bool)
	stop func()

	// one-item lookahead so HasMore can answer without losing an item
	head    T
	hasHead bool
}

var _ Source[int] = &seqSource[int]{}

// FromSeq returns a source over a lazy, single-pass sequence. Take collects
// up to n items into a freshly allocated slice that the worker owns. Each
// item is pulled from the sequence exactly once.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	s := &seqSource[T]{next: next, stop: stop}
	s.advance()
	return s
}

func (s *seqSource[T]) advance() {
	s.head, s.hasHead = s.next()
	if !s.hasHead {
		s.stop()
	}
}

func (s *seqSource[T]) HasMore() bool {
	return s.hasHead
}

func (s *seqSource[T]) Take(n int) []T {
	if n <= 0 || !s.hasHead {
		return nil
	}

	batch := make([]T, 0, n)
	for len(batch) < n && s.hasHead {
		batch = append(batch, s.head)
		s.advance()
	}
	return batch
}
