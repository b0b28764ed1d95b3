// Package erroror provides a result primitive: a value that is
// exclusively either a successful payload or a non-empty, ordered list
// of structured Errors. It replaces sentinel juggling on expected
// failure paths while keeping the happy path free of control flow
// noise.
//
// Domain failures are inert Error values transported by the container.
// Misusing the container itself is a programming error and panics at
// the point of the mistake: constructing a failure with zero errors,
// or reading the wrong branch without checking IsSuccess/IsError
// first.
package erroror

// ErrorOr holds exclusively either one value of type T or a non-empty,
// ordered list of Errors. Instances are immutable after construction;
// build them with FromValue, FromError, or FromErrors at the
// success/failure boundary. The zero value reads as a success holding
// the zero T.
type ErrorOr[T any] struct {
	value T
	errs  []Error
}

// FromValue wraps a successful value.
func FromValue[T any](value T) ErrorOr[T] {
	return ErrorOr[T]{value: value}
}

// FromError wraps a single failure.
func FromError[T any](err Error) ErrorOr[T] {
	return ErrorOr[T]{errs: []Error{err}}
}

// FromErrors wraps one or more failures, preserving argument order.
// The input is copied, so the caller keeps ownership of its slice.
// Panics when called with no errors: a failure state always carries at
// least one reason.
func FromErrors[T any](errs ...Error) ErrorOr[T] {
	if len(errs) == 0 {
		panic("erroror: at least one error required")
	}

	owned := make([]Error, len(errs))
	copy(owned, errs)

	return ErrorOr[T]{errs: owned}
}

// IsError reports whether the container is in the failure state.
func (r ErrorOr[T]) IsError() bool {
	return len(r.errs) > 0
}

// IsSuccess reports whether the container is in the success state.
func (r ErrorOr[T]) IsSuccess() bool {
	return !r.IsError()
}

// Value returns the wrapped value. It panics when the container is in
// the failure state; guard with IsSuccess. Returning a zero T instead
// would be indistinguishable from a forgotten state check, which is
// the bug class this type exists to catch.
func (r ErrorOr[T]) Value() T {
	if r.IsError() {
		panic("erroror: value read on a failure result")
	}

	return r.value
}

// Errors returns the failure list in construction order, as a copy the
// caller may keep. It panics when the container is in the success
// state.
func (r ErrorOr[T]) Errors() []Error {
	if r.IsSuccess() {
		panic("erroror: errors read on a success result")
	}

	out := make([]Error, len(r.errs))
	copy(out, r.errs)

	return out
}

// FirstError returns the first failure. It panics when the container
// is in the success state.
func (r ErrorOr[T]) FirstError() Error {
	if r.IsSuccess() {
		panic("erroror: errors read on a success result")
	}

	return r.errs[0]
}
