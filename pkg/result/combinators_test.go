package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_Success(t *testing.T) {
	t.Parallel()

	r := Bind(Ok(5), func(v int) Result[int] {
		return Ok(v * 2)
	})
	require.True(t, r.IsOk())
	assert.Equal(t, 10, r.Value())
}

func TestBind_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	e := NewError("boom")
	called := false
	r := Bind(Fail[int](e), func(v int) Result[string] {
		called = true
		return Ok("never")
	})

	require.True(t, r.IsFailure())
	assert.Same(t, e, r.Err())
	assert.False(t, called, "next must not run on a failure")
}

func TestBind_NilNextPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Bind[int, int](Ok(1), nil)
	})
	// the contract holds on the failure path too
	assert.Panics(t, func() {
		Bind[int, int](FailWith[int]("boom"), nil)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	r := Map(Ok(10), strconv.Itoa)
	require.True(t, r.IsOk())
	assert.Equal(t, "10", r.Value())

	e := NewError("boom")
	f := Map(Fail[int](e), strconv.Itoa)
	require.True(t, f.IsFailure())
	assert.Same(t, e, f.Err())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	ok := Match(Ok(2),
		func(v int) string { return strconv.Itoa(v) },
		func(e *Error) string { return e.Message() })
	assert.Equal(t, "2", ok)

	fail := Match(FailWith[int]("boom"),
		func(v int) string { return strconv.Itoa(v) },
		func(e *Error) string { return e.Message() })
	assert.Equal(t, "boom", fail)
}

func TestMatchOk_FailureYieldsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2", MatchOk(Ok(2), strconv.Itoa))
	assert.Equal(t, "", MatchOk(FailWith[int]("boom"), strconv.Itoa))
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var seen *Error
	calls := 0
	r := Recover(FailWith[int]("boom"), func(e *Error) int {
		seen = e
		calls++
		return -1
	})

	require.True(t, r.IsOk())
	assert.Equal(t, -1, r.Value())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "boom", seen.Message())

	untouched := Recover(Ok(3), func(e *Error) int {
		calls++
		return -1
	})
	assert.Equal(t, 3, untouched.Value())
	assert.Equal(t, 1, calls, "fallback must not run on a success")
}

func TestTap_IdentityAndInvocation(t *testing.T) {
	t.Parallel()

	calls := 0
	ok := Ok(7)
	assert.Equal(t, ok, ok.Tap(func(v int) { calls++ }))
	assert.Equal(t, 1, calls)

	fail := FailWith[int]("boom")
	assert.Equal(t, fail, fail.Tap(func(v int) { calls++ }))
	assert.Equal(t, 1, calls, "action must not run on a failure")
}

func TestTapError_IdentityAndInvocation(t *testing.T) {
	t.Parallel()

	calls := 0
	fail := FailWith[int]("boom")
	assert.Equal(t, fail, fail.TapError(func(e *Error) { calls++ }))
	assert.Equal(t, 1, calls)

	ok := Ok(7)
	assert.Equal(t, ok, ok.TapError(func(e *Error) { calls++ }))
	assert.Equal(t, 1, calls, "action must not run on a success")
}

func TestTap_NilActionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Ok(1).Tap(nil)
	})
	assert.Panics(t, func() {
		Ok(1).TapError(nil)
	})
}

func TestTry(t *testing.T) {
	t.Parallel()

	r := Try(Ok("21"), strconv.Atoi)
	require.True(t, r.IsOk())
	assert.Equal(t, 21, r.Value())

	f := Try(Ok("nope"), strconv.Atoi)
	require.True(t, f.IsFailure())

	typed := NewError("typed", WithCode("conflict"))
	tf := Try(Ok(1), func(int) (int, error) {
		return 0, typed
	})
	assert.Same(t, typed, tf.Err(), "typed errors pass through AsError unchanged")

	called := false
	sc := Try(FailWith[string]("boom"), func(s string) (int, error) {
		called = true
		return strconv.Atoi(s)
	})
	require.True(t, sc.IsFailure())
	assert.False(t, called)
}

func TestChain_EndToEnd(t *testing.T) {
	t.Parallel()

	r := Map(
		Bind(Ok(5), func(v int) Result[int] {
			return Ok(v * 2)
		}),
		strconv.Itoa)

	require.True(t, r.IsOk())
	assert.Equal(t, "10", r.Value())
}

func TestChain_FailureRecovery(t *testing.T) {
	t.Parallel()

	var observed []*Error
	r := Recover(
		Bind(FailWith[Unit]("boom"), func(Unit) Result[Unit] {
			t.Fatal("bind must not run after a failure")
			return Done()
		}),
		func(e *Error) Unit {
			observed = append(observed, e)
			return Unit{}
		})

	require.True(t, r.IsOk())
	require.Len(t, observed, 1)
	assert.Equal(t, "boom", observed[0].Message())
}

func TestBind_PanicsPropagate(t *testing.T) {
	t.Parallel()

	boom := errors.New("callback exploded")
	assert.PanicsWithValue(t, boom, func() {
		Bind(Ok(1), func(int) Result[int] {
			panic(boom)
		})
	})
}
