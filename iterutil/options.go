package iterutil

type options struct {
	start uint
	step  int
}

func newOptions(opts []Option) options {
	o := options{start: 0, step: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures the counter of a range.
type Option func(*options)

// StartAt sets the count of the first record. Defaults to 0.
func StartAt(n uint) Option {
	return func(o *options) {
		o.start = n
	}
}

// StepBy sets the amount added to the count on every advance. Defaults to 1.
// Negative values count down and zero keeps the count constant; the number of
// records is always governed by the underlying sequence.
func StepBy(d int) Option {
	return func(o *options) {
		o.step = d
	}
}
