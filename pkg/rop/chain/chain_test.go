package chain

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/erroror/pkg/rop"
)

type ctxKey string

var (
	errNegative = rop.Validation(rop.WithCode("Number.Negative"))
	errMissing  = rop.NotFound(rop.WithCode("Number.Missing"))
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Start(ctx, rop.From(5))
	require.Equal(t, 5, c.Result().Value())
	require.Equal(t, ctx, c.Context())

	require.Equal(t, 7, FromValue(ctx, 7).Result().Value())
}

func TestThen_PassesContext(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), ctxKey("factor"), 3)

	c := Then(FromValue(ctx, 4), func(ctx context.Context, v int) int {
		return v * ctx.Value(ctxKey("factor")).(int)
	})
	require.Equal(t, 12, c.Result().Value())
}

func TestPipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(_ context.Context, s string) rop.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rop.FromError[int](rop.Validation(rop.WithCode("Number.Invalid"), rop.WithDescription(err.Error())))
		}
		return rop.From(n)
	}

	run := func(input string) string {
		traced := 0
		c := ThenResult(FromValue(ctx, input), parse).
			FailIf(func(_ context.Context, v int) bool { return v < 0 }, errNegative).
			ThenDo(func(context.Context, int) { traced++ })
		out := Then(c, func(_ context.Context, v int) string { return "n=" + strconv.Itoa(v) })

		return Match(out,
			func(_ context.Context, s string) string { return s + " traced=" + strconv.Itoa(traced) },
			func(_ context.Context, errs []rop.Error) string { return errs[0].Code() })
	}

	assert.Equal(t, "n=12 traced=1", run("12"))
	assert.Equal(t, "Number.Negative", run("-3"))
	assert.Equal(t, "Number.Invalid", run("x"))
}

func TestElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	failed := Start(ctx, rop.FromError[int](errMissing))

	require.Equal(t, 42, failed.Else(42).Result().Value())
	require.Equal(t, 1, failed.ElseFunc(func(_ context.Context, errs []rop.Error) int { return len(errs) }).Result().Value())
	require.Equal(t, []rop.Error{errNegative}, failed.ElseError(errNegative).Result().ErrorsOrEmpty())

	logged := 0
	same := failed.ElseDo(func(context.Context, []rop.Error) { logged++ })
	require.Equal(t, 1, logged)
	require.True(t, rop.Equal(failed.Result(), same.Result()))

	probe := 0
	ok := FromValue(ctx, 5).
		ElseFunc(func(context.Context, []rop.Error) int { probe++; return 0 }).
		ElseDo(func(context.Context, []rop.Error) { probe++ }).
		Else(9)
	require.Zero(t, probe)
	require.Equal(t, 5, ok.Result().Value())
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var got []string
	onValue := func(_ context.Context, v int) { got = append(got, "value:"+strconv.Itoa(v)) }
	onError := func(_ context.Context, errs []rop.Error) { got = append(got, "errors:"+errs[0].Code()) }

	FromValue(ctx, 1).Switch(onValue, onError)
	Start(ctx, rop.FromError[int](errMissing)).Switch(onValue, onError)

	require.Equal(t, []string{"value:1", "errors:Number.Missing"}, got)
}
