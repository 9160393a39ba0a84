package iterutil

// Pair is what an Iterator yields on each step: the running count and an
// alias to the element at the current position. Value never holds a copy of
// the element, so a Pair stays valid for as long as the storage it points into.
type Pair[R any] struct {
	Count uint
	Value R
}
