package maybe

import (
	"time"

	"github.com/google/uuid"
)

// Maybe is the untyped container. Its only value signal is the presence
// flag; every diagnostic travels in a side channel. Exactly one state is
// authoritative at read time, resolved in the priority order documented
// on Specialize.
type Maybe struct {
	id          uuid.UUID
	createdAt   time.Time
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

func Empty() Maybe {
	return Maybe{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func Value(hasValue bool) Maybe {
	return Maybe{
		hasValue:  hasValue,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func Message(text string) Maybe {
	return Maybe{
		message:    text,
		hasMessage: true,
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
	}
}

func Friendly(text string) Maybe {
	return Maybe{
		friendly:    text,
		hasFriendly: true,
		id:          uuid.New(),
		createdAt:   time.Now().UTC(),
	}
}

func MessageErr(text string, err error) Maybe {
	return Maybe{
		message:    text,
		hasMessage: true,
		err:        err,
		isErr:      true,
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
	}
}

func Err(err error) Maybe {
	return Maybe{
		err:       err,
		isErr:     true,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func Errs(errs ...error) Maybe {
	return Maybe{
		errs:      errs,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func Code(code int) Maybe {
	return Maybe{
		code:      code,
		hasCode:   true,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func (m Maybe) HasValue() bool {
	return m.hasValue
}

func (m Maybe) HasMessage() bool {
	return m.hasMessage
}

func (m Maybe) Message() string {
	return m.message
}

func (m Maybe) HasFriendlyMessage() bool {
	return m.hasFriendly
}

func (m Maybe) FriendlyMessage() string {
	return m.friendly
}

func (m Maybe) IsError() bool {
	return m.isErr
}

func (m Maybe) Err() error {
	return m.err
}

// Errs never returns nil; an unset aggregate reads as an empty sequence.
func (m Maybe) Errs() []error {
	if m.errs == nil {
		return []error{}
	}
	return m.errs
}

func (m Maybe) HasErrorCode() bool {
	return m.hasCode
}

func (m Maybe) ErrorCode() int {
	return m.code
}

func (m Maybe) IsEmpty() bool {
	return !m.hasValue && !m.hasMessage && !m.hasFriendly &&
		!m.isErr && len(m.errs) == 0 && !m.hasCode
}

func (m Maybe) CreatedAt() time.Time {
	return m.createdAt
}

func (m Maybe) Id() uuid.UUID {
	return m.id
}
