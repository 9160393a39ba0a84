package iterutil

// Counted counts over the caller's slice and hands out mutable references
// into it. Fixed-size arrays are adapted through arr[:].
func Counted[T any](s []T, opts ...Option) Range[SliceCursor[T], Ref[T]] {
	b, e := Bounds(s)
	return CountedBetween[SliceCursor[T], Ref[T]](b, e, opts...)
}

// CountedConst is Counted with read-only references.
func CountedConst[T any](s []T, opts ...Option) Range[ConstSliceCursor[T], View[T]] {
	b, e := ConstBounds(s)
	return CountedBetween[ConstSliceCursor[T], View[T]](b, e, opts...)
}

// CountedBetween counts over exactly the positions from begin up to, not
// including, end. Passing reversed positions (see Backward) walks backwards.
func CountedBetween[C Cursor[C, R], R any](begin, end C, opts ...Option) Range[C, R] {
	return newRange[C, R](begin, end, newOptions(opts))
}

// CountedOwn adopts s. The caller gives up s and must not use it afterwards.
func CountedOwn[T any](s []T, opts ...Option) *Owned[T] {
	return adopt(s, newOptions(opts))
}

// CountedLiteral copies values into newly owned storage before adopting it,
// so the result never aliases the argument.
func CountedLiteral[T any](values []T, opts ...Option) *Owned[T] {
	data := make([]T, len(values))
	copy(data, values)
	return adopt(data, newOptions(opts))
}
