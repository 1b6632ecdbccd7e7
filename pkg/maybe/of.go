package maybe

import (
	"time"

	"github.com/google/uuid"
)

// Of is the typed container. It mirrors Maybe's side channels and, in the
// value state, additionally carries a payload of type T. The payload is
// undefined unless HasValue reports true.
type Of[T any] struct {
	id          uuid.UUID
	createdAt   time.Time
	value       T
	hasValue    bool
	message     string
	hasMessage  bool
	friendly    string
	hasFriendly bool
	err         error
	isErr       bool
	errs        []error
	code        int
	hasCode     bool
}

func None[T any]() Of[T] {
	return Of[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func Some[T any](v T) Of[T] {
	return Of[T]{
		value:     v,
		hasValue:  true,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func OfMessage[T any](text string) Of[T] {
	return Of[T]{
		message:    text,
		hasMessage: true,
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
	}
}

func OfFriendly[T any](text string) Of[T] {
	return Of[T]{
		friendly:    text,
		hasFriendly: true,
		id:          uuid.New(),
		createdAt:   time.Now().UTC(),
	}
}

func OfMessageErr[T any](text string, err error) Of[T] {
	return Of[T]{
		message:    text,
		hasMessage: true,
		err:        err,
		isErr:      true,
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
	}
}

func OfErr[T any](err error) Of[T] {
	return Of[T]{
		err:       err,
		isErr:     true,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func OfErrs[T any](errs ...error) Of[T] {
	return Of[T]{
		errs:      errs,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func OfCode[T any](code int) Of[T] {
	return Of[T]{
		code:      code,
		hasCode:   true,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func (m Of[T]) Value() T {
	return m.value
}

func (m Of[T]) HasValue() bool {
	return m.hasValue
}

func (m Of[T]) HasMessage() bool {
	return m.hasMessage
}

func (m Of[T]) Message() string {
	return m.message
}

func (m Of[T]) HasFriendlyMessage() bool {
	return m.hasFriendly
}

func (m Of[T]) FriendlyMessage() string {
	return m.friendly
}

func (m Of[T]) IsError() bool {
	return m.isErr
}

func (m Of[T]) Err() error {
	return m.err
}

// Errs never returns nil; an unset aggregate reads as an empty sequence.
func (m Of[T]) Errs() []error {
	if m.errs == nil {
		return []error{}
	}
	return m.errs
}

func (m Of[T]) HasErrorCode() bool {
	return m.hasCode
}

func (m Of[T]) ErrorCode() int {
	return m.code
}

func (m Of[T]) IsEmpty() bool {
	return !m.hasValue && !m.hasMessage && !m.hasFriendly &&
		!m.isErr && len(m.errs) == 0 && !m.hasCode
}

func (m Of[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Of[T]) Id() uuid.UUID {
	return m.id
}
