package lift

import (
	"github.com/TeturactsWill/PatrynSolutions.Utilities/pkg/maybe"
)

// Err wraps a thrown cause. The result is always in the error state, even
// for an error with an empty message.
func Err(err error) maybe.Maybe {
	return maybe.Err(err)
}

// ErrOf is the typed counterpart of Err.
func ErrOf[T any](err error) maybe.Of[T] {
	return maybe.OfErr[T](err)
}

// Errs wraps a possibly-joined error as an error aggregate, splitting
// errors.Join results into their individual causes in order.
func Errs(err error) maybe.Maybe {
	return maybe.Errs(maybe.Flatten(err)...)
}

// Message wraps a diagnostic string. The result is always in the message
// state.
func Message(text string) maybe.Maybe {
	return maybe.Message(text)
}

// Value wraps a raw value. A value that is nil, or equal to T's zero value
// under T's own equality, wraps as None: by this library's convention a
// zero-equivalent input is indistinguishable from absence. Callers that
// mean "the zero value, on purpose" must use maybe.Some directly.
func Value[T comparable](v T) maybe.Of[T] {
	var zero T
	if v == zero || maybe.IsNil(v) {
		return maybe.None[T]()
	}
	return maybe.Some(v)
}

// String wraps a string that is either the payload or a diagnostic,
// depending on isMessage. Whether the text is a value or a message is the
// caller's call; nothing about the text itself is validated.
func String[T ~string](s string, isMessage bool) maybe.Of[T] {
	if isMessage {
		return maybe.OfMessage[T](s)
	}
	return maybe.Some(T(s))
}

// All eagerly wraps every element of src with Some, preserving order. No
// element is inspected for nil or zero. The source is fully read before
// All returns; mutating it concurrently is not safe.
func All[T any](src []T) []maybe.Of[T] {
	out := make([]maybe.Of[T], 0, len(src))
	for _, v := range src {
		out = append(out, maybe.Some(v))
	}
	return out
}
