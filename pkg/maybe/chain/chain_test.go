package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/TeturactsWill/PatrynSolutions.Utilities/pkg/maybe"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, maybe.Some(5)).Result()
	if !out.HasValue() || out.Value() != 5 {
		t.Fatalf("expected value 5, got: %s", maybe.Describe(out))
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.HasValue() || out.Value() != 7 {
		t.Fatalf("expected value 7, got: %s", maybe.Describe(out))
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) maybe.Of[int] { return maybe.Some(v * 2) }).
		Result()

	if !out.HasValue() || out.Value() != 6 {
		t.Fatalf("expected value 6, got: %s", maybe.Describe(out))
	}
}

func TestThen_ShortCircuitOnAbsence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Start(ctx, maybe.OfMessage[int]("gone")).
		Then(func(ctx context.Context, v int) maybe.Of[int] {
			called = true
			return maybe.Some(v + 1)
		}).
		Result()

	if called {
		t.Fatalf("onValue must not run when the container holds no value")
	}
	if !out.HasMessage() || out.Message() != "gone" {
		t.Fatalf("expected the original message to travel through, got: %s", maybe.Describe(out))
	}
}

func TestThenTry_ErrorMovesChainToErrorState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cause := errors.New("try-error")

	out := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) { return 0, cause }).
		Result()

	if !out.IsError() || out.Err() != cause {
		t.Fatalf("expected error state with cause, got: %s", maybe.Describe(out))
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil }).
		Result()

	if !out.HasValue() || out.Value() != 16 {
		t.Fatalf("expected value 16, got: %s", maybe.Describe(out))
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 1).
		Map(func(ctx context.Context, v int) int { return v + 100 }).
		Result()

	if !out.HasValue() || out.Value() != 101 {
		t.Fatalf("expected value 101, got: %s", maybe.Describe(out))
	}
}

func TestOr_FirstValueWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 1).Or(FromValue(ctx, 2)).Result()
	if out.Value() != 1 {
		t.Fatalf("expected left side to win, got: %v", out.Value())
	}

	out = Start(ctx, maybe.OfMessage[int]("nope")).Or(FromValue(ctx, 2)).Result()
	if !out.HasValue() || out.Value() != 2 {
		t.Fatalf("expected alternative to win, got: %s", maybe.Describe(out))
	}
}

func TestOr_DiagnosticOutranksEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, maybe.None[int]()).
		Or(Start(ctx, maybe.OfMessage[int]("reason"))).
		Result()

	if !out.HasMessage() || out.Message() != "reason" {
		t.Fatalf("expected the diagnostic side, got: %s", maybe.Describe(out))
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	valueSeen := 0
	FromValue(ctx, 9).Ensure(
		func(ctx context.Context, v int) { valueSeen = v },
		func(ctx context.Context, m maybe.Of[int]) { t.Fatalf("onAbsent must not run") },
	)
	if valueSeen != 9 {
		t.Fatalf("expected onValue to observe 9, got: %d", valueSeen)
	}

	absentSeen := false
	Start(ctx, maybe.OfCode[int](4)).Ensure(
		func(ctx context.Context, v int) { t.Fatalf("onValue must not run") },
		func(ctx context.Context, m maybe.Of[int]) { absentSeen = m.HasErrorCode() },
	)
	if !absentSeen {
		t.Fatalf("expected onAbsent to observe the code state")
	}
}

func TestFinally_RoutesByFamily(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cause := errors.New("cause")

	h := Handlers[int, string]{
		OnValue:      func(ctx context.Context, v int) string { return "value" },
		OnDiagnostic: func(ctx context.Context, text string) string { return "diag:" + text },
		OnFault:      func(ctx context.Context, err error) string { return "fault:" + err.Error() },
		OnCode:       func(ctx context.Context, code int) string { return "code" },
		OnEmpty:      func(ctx context.Context) string { return "empty" },
	}

	cases := []struct {
		m    maybe.Of[int]
		want string
	}{
		{maybe.Some(1), "value"},
		{maybe.OfMessage[int]("m"), "diag:m"},
		{maybe.OfMessageErr[int]("m", cause), "diag:m"},
		{maybe.OfFriendly[int]("f"), "diag:f"},
		{maybe.OfErr[int](cause), "fault:cause"},
		{maybe.OfCode[int](1), "code"},
		{maybe.None[int](), "empty"},
	}

	for _, c := range cases {
		if got := Finally(ctx, c.m, h); got != c.want {
			t.Fatalf("want %q, got %q (state: %s)", c.want, got, maybe.Describe(c.m))
		}
	}
}

func TestFinally_AggregateRejoinsErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e1 := errors.New("one")
	e2 := errors.New("two")

	got := Finally(ctx, maybe.OfErrs[int](e1, e2), Handlers[int, bool]{
		OnFault: func(ctx context.Context, err error) bool {
			return errors.Is(err, e1) && errors.Is(err, e2)
		},
	})

	if !got {
		t.Fatalf("expected the joined fault to match both causes")
	}
}

func TestFinally_NilHandlerYieldsZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(ctx, maybe.Some(5), Handlers[int, string]{})
	if got != "" {
		t.Fatalf("expected zero value for a nil handler, got: %q", got)
	}
}
