package future

import (
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/result"
)

func TestGoAwait(t *testing.T) {
	t.Parallel()

	f := Go(func() result.Result[int] {
		return result.Ok(5)
	})
	r := f.Await()
	require.True(t, r.IsOk())
	assert.Equal(t, 5, r.Value())

	// Await is repeatable
	assert.Equal(t, 5, f.Await().Value())
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := Resolved(result.Ok("done"))
	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future must be complete immediately")
	}
	assert.Equal(t, "done", f.Await().Value())
}

func TestGo_PanicReRaisedOnAwait(t *testing.T) {
	t.Parallel()

	f := Go(func() result.Result[int] {
		panic("producer exploded")
	})
	assert.PanicsWithValue(t, "producer exploded", func() {
		f.Await()
	})
}

func TestStart_SuccessAndShortCircuit(t *testing.T) {
	t.Parallel()

	r := Start(result.Ok(2), func(v int) *Future[int] {
		return Resolved(result.Ok(v * 3))
	}).Await()
	assert.Equal(t, 6, r.Value())

	e := result.NewError("boom")
	var called atomic.Bool
	sc := Start(result.Fail[int](e), func(v int) *Future[int] {
		called.Store(true)
		return Resolved(result.Ok(0))
	})
	require.True(t, sc.Await().IsFailure())
	assert.Same(t, e, sc.Await().Err())
	assert.False(t, called.Load())
}

func TestBind_SuccessAndShortCircuit(t *testing.T) {
	t.Parallel()

	out := Bind(Go(func() result.Result[int] {
		time.Sleep(5 * time.Millisecond)
		return result.Ok(5)
	}), func(v int) *Future[string] {
		return Resolved(result.Ok(strconv.Itoa(v * 2)))
	}).Await()
	require.True(t, out.IsOk())
	assert.Equal(t, "10", out.Value())

	e := result.NewError("boom")
	var called atomic.Bool
	sc := Bind(Resolved(result.Fail[int](e)), func(v int) *Future[string] {
		called.Store(true)
		return Resolved(result.Ok(""))
	}).Await()
	require.True(t, sc.IsFailure())
	assert.Same(t, e, sc.Err())
	assert.False(t, called.Load())
}

func TestThenMap(t *testing.T) {
	t.Parallel()

	out := Map(
		Then(Resolved(result.Ok(5)), func(v int) result.Result[int] {
			return result.Ok(v * 2)
		}),
		strconv.Itoa).Await()

	require.True(t, out.IsOk())
	assert.Equal(t, "10", out.Value())
}

func TestTapTapError(t *testing.T) {
	t.Parallel()

	var taps, errTaps atomic.Int32
	ok := Tap(Resolved(result.Ok(1)), func(int) { taps.Add(1) })
	assert.Equal(t, 1, ok.Await().Value())
	assert.Equal(t, int32(1), taps.Load())

	fail := TapError(Resolved(result.FailWith[int]("boom")), func(*result.Error) { errTaps.Add(1) })
	assert.True(t, fail.Await().IsFailure())
	assert.Equal(t, int32(1), errTaps.Load())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	out := Recover(Resolved(result.FailWith[int]("boom")), func(e *result.Error) int {
		return -1
	}).Await()
	require.True(t, out.IsOk())
	assert.Equal(t, -1, out.Value())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	v := Match(Resolved(result.Ok(3)),
		func(v int) string { return strconv.Itoa(v) },
		func(e *result.Error) string { return e.Message() })
	assert.Equal(t, "3", v)

	m := Match(Resolved(result.FailWith[int]("boom")),
		func(v int) string { return strconv.Itoa(v) },
		func(e *result.Error) string { return e.Message() })
	assert.Equal(t, "boom", m)
}

func TestNilCallbacksPanicBeforeAnyWork(t *testing.T) {
	t.Parallel()

	f := Resolved(result.Ok(1))
	assert.Panics(t, func() { Go[int](nil) })
	assert.Panics(t, func() { Start[int, int](result.Ok(1), nil) })
	assert.Panics(t, func() { Bind[int, int](f, nil) })
	assert.Panics(t, func() { Then[int, int](f, nil) })
	assert.Panics(t, func() { Map[int, int](f, nil) })
	assert.Panics(t, func() { Tap(f, nil) })
	assert.Panics(t, func() { TapError(f, nil) })
	assert.Panics(t, func() { Recover(f, nil) })
}
