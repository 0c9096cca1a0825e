package config

import "fmt"

// Optional holds a value together with whether it was supplied. The zero
// value is "not supplied".
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a supplied Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// OrElse returns the supplied value, or def when nothing was supplied.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.set {
		return "unset"
	}
	return fmt.Sprint(o.value)
}
