package maybe

// Conversion between the untyped and typed containers collapses the source
// into a single destination state. A container built through a
// multi-channel constructor (MessageErr and friends) can hold several
// channels at once; conversion keeps only the highest-priority one:
//
//	Value > Message+Err > Message > FriendlyMessage > Err > Errs > Code > Empty
//
// Lower-priority channels are dropped. Both directions preserve the
// container id and creation time.

// Specialize converts an untyped Maybe into Of[T].
//
// The untyped container has no payload to transfer. When T is exactly bool
// the presence flag itself becomes the payload; for every other T the
// value state carries T's zero value. Named boolean types are not
// reinterpreted. Specialize never fails: a source with no channel set
// yields None.
func Specialize[T any](m Maybe) Of[T] {
	switch {
	case m.hasValue:
		var v T
		if _, isBool := any(v).(bool); isBool {
			v, _ = any(m.hasValue).(T)
		}
		return Of[T]{id: m.id, createdAt: m.createdAt, value: v, hasValue: true}
	case m.hasMessage && m.isErr:
		return Of[T]{id: m.id, createdAt: m.createdAt, message: m.message, hasMessage: true, err: m.err, isErr: true}
	case m.hasMessage:
		return Of[T]{id: m.id, createdAt: m.createdAt, message: m.message, hasMessage: true}
	case m.hasFriendly:
		return Of[T]{id: m.id, createdAt: m.createdAt, friendly: m.friendly, hasFriendly: true}
	case m.isErr && m.err != nil:
		return Of[T]{id: m.id, createdAt: m.createdAt, err: m.err, isErr: true}
	case len(m.errs) > 0:
		return Of[T]{id: m.id, createdAt: m.createdAt, errs: m.errs}
	case m.hasCode:
		return Of[T]{id: m.id, createdAt: m.createdAt, code: m.code, hasCode: true}
	default:
		return Of[T]{id: m.id, createdAt: m.createdAt}
	}
}

// Generalize converts Of[T] into an untyped Maybe. The value state keeps
// only the presence flag; the payload is discarded because the untyped
// container has no slot for it. Generalize never fails.
func Generalize[T any](m Of[T]) Maybe {
	switch {
	case m.hasValue:
		return Maybe{id: m.id, createdAt: m.createdAt, hasValue: true}
	case m.hasMessage && m.isErr:
		return Maybe{id: m.id, createdAt: m.createdAt, message: m.message, hasMessage: true, err: m.err, isErr: true}
	case m.hasMessage:
		return Maybe{id: m.id, createdAt: m.createdAt, message: m.message, hasMessage: true}
	case m.hasFriendly:
		return Maybe{id: m.id, createdAt: m.createdAt, friendly: m.friendly, hasFriendly: true}
	case m.isErr && m.err != nil:
		return Maybe{id: m.id, createdAt: m.createdAt, err: m.err, isErr: true}
	case len(m.errs) > 0:
		return Maybe{id: m.id, createdAt: m.createdAt, errs: m.errs}
	case m.hasCode:
		return Maybe{id: m.id, createdAt: m.createdAt, code: m.code, hasCode: true}
	default:
		return Maybe{id: m.id, createdAt: m.createdAt}
	}
}
