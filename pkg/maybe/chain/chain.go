package chain

import (
	"context"
	"errors"

	"github.com/TeturactsWill/PatrynSolutions.Utilities/pkg/maybe"
)

type Chain[T any] struct {
	ctx context.Context
	res maybe.Of[T]
}

func Start[T any](ctx context.Context, m maybe.Of[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: m}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, maybe.Some(v))
}

func (c Chain[T]) Result() maybe.Of[T] {
	return c.res
}

// Then composes functions that already return maybe.Of[T]
func (c Chain[T]) Then(onValue func(ctx context.Context, t T) maybe.Of[T]) Chain[T] {
	if !c.res.HasValue() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onValue(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error); a non-nil error moves
// the chain into the error state
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.HasValue() {
		return c
	}
	u, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: maybe.OfErr[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: maybe.Some(u)}
}

// Map transforms the present value to a new value
func (c Chain[T]) Map(onValue func(ctx context.Context, t T) T) Chain[T] {
	if !c.res.HasValue() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: maybe.Some(onValue(c.ctx, c.res.Value()))}
}

// Or keeps c when it holds a value, otherwise the alternative when it
// does. With no value on either side, the side carrying any diagnostic
// wins over an empty one.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.HasValue() {
		return c
	}
	if alternative.res.HasValue() {
		return alternative
	}
	if c.res.IsEmpty() && !alternative.res.IsEmpty() {
		return alternative
	}
	return c
}

// Ensure triggers side effects for the current state without changing the
// result
func (c Chain[T]) Ensure(onValue func(context.Context, T), onAbsent func(context.Context, maybe.Of[T])) Chain[T] {
	if c.res.HasValue() {
		if onValue != nil {
			onValue(c.ctx, c.res.Value())
		}
		return c
	}
	if onAbsent != nil {
		onAbsent(c.ctx, c.res)
	}
	return c
}

// Handlers reduce a container to a concrete value, one handler per failure
// family. A nil handler yields Out's zero value for its family.
type Handlers[T, Out any] struct {
	OnValue      func(ctx context.Context, v T) Out
	OnDiagnostic func(ctx context.Context, text string) Out
	OnFault      func(ctx context.Context, err error) Out
	OnCode       func(ctx context.Context, code int) Out
	OnEmpty      func(ctx context.Context) Out
}

// Finally collapses a container through h. States route to handlers by
// failure family: message and friendly-message states are diagnostic, the
// error and aggregate states are faults (an aggregate is re-joined into a
// single error), a code state is coded, and an all-clear container is
// empty.
func Finally[T, Out any](ctx context.Context, m maybe.Of[T], h Handlers[T, Out]) Out {
	var zero Out
	switch {
	case m.HasValue():
		if h.OnValue == nil {
			return zero
		}
		return h.OnValue(ctx, m.Value())
	case m.HasMessage():
		if h.OnDiagnostic == nil {
			return zero
		}
		return h.OnDiagnostic(ctx, m.Message())
	case m.HasFriendlyMessage():
		if h.OnDiagnostic == nil {
			return zero
		}
		return h.OnDiagnostic(ctx, m.FriendlyMessage())
	case m.IsError() && m.Err() != nil:
		if h.OnFault == nil {
			return zero
		}
		return h.OnFault(ctx, m.Err())
	case len(m.Errs()) > 0:
		if h.OnFault == nil {
			return zero
		}
		return h.OnFault(ctx, errors.Join(m.Errs()...))
	case m.HasErrorCode():
		if h.OnCode == nil {
			return zero
		}
		return h.OnCode(ctx, m.ErrorCode())
	default:
		if h.OnEmpty == nil {
			return zero
		}
		return h.OnEmpty(ctx)
	}
}

// Finally collapses the chain to a final value of the same type,
// delegating to the package-level Finally
func (c Chain[T]) Finally(h Handlers[T, T]) T {
	return Finally(c.ctx, c.res, h)
}
