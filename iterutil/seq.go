package iterutil

import (
	"iter"
)

// CountSeq pairs every value of seq with a count, the same way a Range does
// for stored sequences. Values are passed through as seq yields them.
func CountSeq[T any](seq iter.Seq[T], opts ...Option) iter.Seq2[uint, T] {
	o := newOptions(opts)
	return func(yield func(uint, T) bool) {
		count := o.start
		for v := range seq {
			if !yield(count, v) {
				return
			}
			count += uint(o.step) //nolint:gosec
		}
	}
}
