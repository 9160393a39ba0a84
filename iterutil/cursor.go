package iterutil

import (
	"unsafe"
)

// Category describes how a cursor may be moved.
type Category uint8

const (
	Forward Category = iota
	Bidirectional
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random_access"
	default:
		return "unknown"
	}
}

// Cursor is a position inside a sequence. C is the cursor type itself and R is
// the reference type its Ref method hands out, usually Ref[T] or View[T].
//
// Cursors have value semantics: Next returns the following position and leaves
// the receiver untouched. Equal must compare positions only.
type Cursor[C any, R any] interface {
	Ref() R
	Next() C
	Equal(other C) bool
	Category() Category
}

// Distancer is implemented by random access cursors that can tell how many
// steps separate them from a later position of the same sequence.
type Distancer[C any] interface {
	Distance(to C) int
}

// SliceCursor addresses an element of a slice's backing array and hands out
// mutable references to it.
type SliceCursor[T any] struct {
	s []T
	i int
}

func (c SliceCursor[T]) Ref() Ref[T] {
	return Ref[T]{p: &c.s[c.i]}
}

func (c SliceCursor[T]) Next() SliceCursor[T] {
	c.i++
	return c
}

// Equal reports whether both cursors address the same slot of the same
// backing array. Cursors over distinct arrays are never equal, whatever the
// arrays contain.
func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool {
	return c.i == other.i && unsafe.SliceData(c.s) == unsafe.SliceData(other.s)
}

func (SliceCursor[T]) Category() Category {
	return RandomAccess
}

func (c SliceCursor[T]) Distance(to SliceCursor[T]) int {
	return to.i - c.i
}

// ConstSliceCursor is SliceCursor with read-only references.
type ConstSliceCursor[T any] struct {
	c SliceCursor[T]
}

func (c ConstSliceCursor[T]) Ref() View[T] {
	return c.c.Ref().View()
}

func (c ConstSliceCursor[T]) Next() ConstSliceCursor[T] {
	return ConstSliceCursor[T]{c: c.c.Next()}
}

func (c ConstSliceCursor[T]) Equal(other ConstSliceCursor[T]) bool {
	return c.c.Equal(other.c)
}

func (ConstSliceCursor[T]) Category() Category {
	return RandomAccess
}

func (c ConstSliceCursor[T]) Distance(to ConstSliceCursor[T]) int {
	return c.c.Distance(to.c)
}

// ReverseCursor walks a slice from its last element towards its first.
type ReverseCursor[T any] struct {
	s []T
	i int
}

func (c ReverseCursor[T]) Ref() Ref[T] {
	return Ref[T]{p: &c.s[c.i]}
}

func (c ReverseCursor[T]) Next() ReverseCursor[T] {
	c.i--
	return c
}

func (c ReverseCursor[T]) Equal(other ReverseCursor[T]) bool {
	return c.i == other.i && unsafe.SliceData(c.s) == unsafe.SliceData(other.s)
}

func (ReverseCursor[T]) Category() Category {
	return RandomAccess
}

func (c ReverseCursor[T]) Distance(to ReverseCursor[T]) int {
	return c.i - to.i
}

// ConstReverseCursor is ReverseCursor with read-only references.
type ConstReverseCursor[T any] struct {
	c ReverseCursor[T]
}

func (c ConstReverseCursor[T]) Ref() View[T] {
	return c.c.Ref().View()
}

func (c ConstReverseCursor[T]) Next() ConstReverseCursor[T] {
	return ConstReverseCursor[T]{c: c.c.Next()}
}

func (c ConstReverseCursor[T]) Equal(other ConstReverseCursor[T]) bool {
	return c.c.Equal(other.c)
}

func (ConstReverseCursor[T]) Category() Category {
	return RandomAccess
}

func (c ConstReverseCursor[T]) Distance(to ConstReverseCursor[T]) int {
	return c.c.Distance(to.c)
}

// Bounds returns the first and one-past-last positions of s.
func Bounds[T any](s []T) (begin, end SliceCursor[T]) {
	return SliceCursor[T]{s: s, i: 0}, SliceCursor[T]{s: s, i: len(s)}
}

func ConstBounds[T any](s []T) (begin, end ConstSliceCursor[T]) {
	b, e := Bounds(s)
	return ConstSliceCursor[T]{c: b}, ConstSliceCursor[T]{c: e}
}

// Backward returns the positions of the last element of s and of the slot
// before its first one, so that walking from begin to end visits s in
// reverse.
func Backward[T any](s []T) (begin, end ReverseCursor[T]) {
	return ReverseCursor[T]{s: s, i: len(s) - 1}, ReverseCursor[T]{s: s, i: -1}
}

func ConstBackward[T any](s []T) (begin, end ConstReverseCursor[T]) {
	b, e := Backward(s)
	return ConstReverseCursor[T]{c: b}, ConstReverseCursor[T]{c: e}
}
