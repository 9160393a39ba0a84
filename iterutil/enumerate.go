package iterutil

func Enumerate[T any](s []T, opts ...Option) Range[SliceCursor[T], Ref[T]] {
	return Counted(s, opts...)
}

func EnumerateConst[T any](s []T, opts ...Option) Range[ConstSliceCursor[T], View[T]] {
	return CountedConst(s, opts...)
}

func EnumerateBetween[C Cursor[C, R], R any](begin, end C, opts ...Option) Range[C, R] {
	return CountedBetween[C, R](begin, end, opts...)
}

func EnumerateOwn[T any](s []T, opts ...Option) *Owned[T] {
	return CountedOwn(s, opts...)
}

func EnumerateLiteral[T any](values []T, opts ...Option) *Owned[T] {
	return CountedLiteral(values, opts...)
}
