package iterutil

import (
	"iter"
)

// Range is a begin/end pair of iterators over storage owned by the caller,
// who must keep it alive while the range is in use.
type Range[C Cursor[C, R], R any] struct {
	begin Iterator[C, R]
	end   Iterator[C, R]
}

func newRange[C Cursor[C, R], R any](begin, end C, o options) Range[C, R] {
	return Range[C, R]{
		begin: newIterator[C, R](begin, o.start, o.step),
		end:   newIterator[C, R](end, o.start, o.step),
	}
}

func (r Range[C, R]) Begin() Iterator[C, R] {
	return r.begin
}

func (r Range[C, R]) End() Iterator[C, R] {
	return r.end
}

// All yields count and element reference for every position from begin up to
// end. Each call starts over from begin.
func (r Range[C, R]) All() iter.Seq2[uint, R] {
	return func(yield func(uint, R) bool) {
		for it := r.begin; !it.Equal(r.end); it.Advance() {
			p := it.Deref()
			if !yield(p.Count, p.Value) {
				return
			}
		}
	}
}

func (r Range[C, R]) Pairs() iter.Seq[Pair[R]] {
	return func(yield func(Pair[R]) bool) {
		for it := r.begin; !it.Equal(r.end); it.Advance() {
			if !yield(it.Deref()) {
				return
			}
		}
	}
}

// Len returns the number of records the range yields. Random access cursors
// answer directly, others are walked.
func (r Range[C, R]) Len() int {
	if r.begin.pos.Category() == RandomAccess {
		if d, ok := any(r.begin.pos).(Distancer[C]); ok {
			return d.Distance(r.end.pos)
		}
	}
	var n int
	for it := r.begin; !it.Equal(r.end); it.Advance() {
		n++
	}
	return n
}

// Owned is a range that keeps the sequence it iterates. The iterators are
// anchored to the stored slice, never to the argument it was built from.
//
// Owned must not be copied; use the pointer returned by CountedOwn or
// CountedLiteral.
type Owned[T any] struct {
	_    noCopy
	data []T
	opts options
	Range[ConstSliceCursor[T], View[T]]
}

func adopt[T any](data []T, o options) *Owned[T] {
	own := &Owned[T]{data: data, opts: o}
	b, e := ConstBounds(own.data)
	own.Range = newRange[ConstSliceCursor[T], View[T]](b, e, o)
	return own
}

// Backward returns a range over the stored sequence in reverse order. The
// counter starts over from the owning range's settings unless opts override
// them.
func (o *Owned[T]) Backward(opts ...Option) Range[ConstReverseCursor[T], View[T]] {
	cfg := o.opts
	for _, opt := range opts {
		opt(&cfg)
	}
	b, e := ConstBackward(o.data)
	return newRange[ConstReverseCursor[T], View[T]](b, e, cfg)
}

// Data returns read-only references to the stored elements, in order.
func (o *Owned[T]) Data() iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for i := range o.data {
			if !yield(ViewOf(&o.data[i])) {
				return
			}
		}
	}
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
