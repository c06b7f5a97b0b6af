// Package option provides a two-case optional value used where "no data" is
// an expected outcome rather than an error.
package option

// Option holds either no value (None) or exactly one value (Some).
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v in a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}
