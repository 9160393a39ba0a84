package mathutil

import (
	"golang.org/x/exp/constraints"
)

// Digits returns the number of decimal digits of n. Negative numbers count
// their sign as a digit.
func Digits[T constraints.Integer](n T) int {
	d := 1
	ten := T(10)
	if n < 0 {
		d++
		for n <= -ten {
			n /= 10
			d++
		}
		return d
	}
	for n >= ten {
		n /= 10
		d++
	}
	return d
}

func Max[T constraints.Ordered](a T, rest ...T) T {
	m := a
	for _, v := range rest {
		if v > m {
			m = v
		}
	}
	return m
}
