package iterutil

// Iterator walks an underlying cursor while tracking a count. It is a plain
// value: copying it forks the walk.
//
// An Iterator is not safe for concurrent use.
type Iterator[C Cursor[C, R], R any] struct {
	pos   C
	count uint
	step  int
}

func newIterator[C Cursor[C, R], R any](pos C, start uint, step int) Iterator[C, R] {
	return Iterator[C, R]{pos: pos, count: start, step: step}
}

// Deref returns the record for the current position. Calling it on an
// iterator that equals its range's end is a contract violation.
func (it *Iterator[C, R]) Deref() Pair[R] {
	return Pair[R]{Count: it.count, Value: it.pos.Ref()}
}

// Advance moves to the next position and shifts the count by the step. The
// count uses unsigned wrapping arithmetic.
func (it *Iterator[C, R]) Advance() {
	it.pos = it.pos.Next()
	it.count += uint(it.step) //nolint:gosec
}

// Equal compares positions only; counts are ignored.
func (it Iterator[C, R]) Equal(other Iterator[C, R]) bool {
	return it.pos.Equal(other.pos)
}

func (it Iterator[C, R]) Count() uint {
	return it.count
}

func (it Iterator[C, R]) Step() int {
	return it.step
}

func (it Iterator[C, R]) Position() C {
	return it.pos
}

// Category is always Forward: counts only ever advance along with the cursor,
// whatever the cursor itself supports.
func (Iterator[C, R]) Category() Category {
	return Forward
}
