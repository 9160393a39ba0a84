package iterutil

import (
	"fmt"
)

// Ref is a mutable alias to an element stored elsewhere.
type Ref[T any] struct {
	p *T
}

func RefOf[T any](p *T) Ref[T] {
	return Ref[T]{p: p}
}

func (r Ref[T]) Get() T {
	return *r.p
}

func (r Ref[T]) Set(v T) {
	*r.p = v
}

func (r Ref[T]) Ptr() *T {
	return r.p
}

func (r Ref[T]) View() View[T] {
	return View[T]{p: r.p}
}

func (r Ref[T]) String() string {
	return fmt.Sprint(*r.p)
}

// View is a read-only alias to an element stored elsewhere. It deliberately
// has no way to write through or to leak the underlying pointer.
type View[T any] struct {
	p *T
}

func ViewOf[T any](p *T) View[T] {
	return View[T]{p: p}
}

func (v View[T]) Get() T {
	return *v.p
}

func (v View[T]) String() string {
	return fmt.Sprint(*v.p)
}
