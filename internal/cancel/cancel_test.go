package cancel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dispatch/internal/cancel"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

var errUserAbort = errors.New("user abort")

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("timeout fires with timeout cause", func(t *testing.T) {
		t.Parallel()

		ctx, cancelFn := cancel.Compose(context.Background(), 20*time.Millisecond)
		defer cancelFn()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("timeout source never fired")
		}

		require.ErrorIs(t, context.Cause(ctx), dispatch.ErrRequestTimeout)
		assert.ErrorIs(t, context.Cause(ctx), context.DeadlineExceeded)
	})

	t.Run("already canceled caller fires synchronously", func(t *testing.T) {
		t.Parallel()

		caller, abort := context.WithCancelCause(context.Background())
		abort(errUserAbort)

		ctx, cancelFn := cancel.Compose(caller, 10*time.Second)
		defer cancelFn()

		require.Error(t, ctx.Err())
		assert.ErrorIs(t, context.Cause(ctx), errUserAbort)
	})

	t.Run("caller fires before timeout", func(t *testing.T) {
		t.Parallel()

		caller, abort := context.WithCancelCause(context.Background())

		ctx, cancelFn := cancel.Compose(caller, 10*time.Second)
		defer cancelFn()

		time.AfterFunc(20*time.Millisecond, func() { abort(errUserAbort) })

		start := time.Now()

		<-ctx.Done()

		assert.Less(t, time.Since(start), 5*time.Second)
		assert.ErrorIs(t, context.Cause(ctx), errUserAbort)
		assert.NotErrorIs(t, context.Cause(ctx), dispatch.ErrRequestTimeout)
	})

	t.Run("timeout fires before caller", func(t *testing.T) {
		t.Parallel()

		caller, abort := context.WithCancelCause(context.Background())
		defer abort(nil)

		ctx, cancelFn := cancel.Compose(caller, 20*time.Millisecond)
		defer cancelFn()

		<-ctx.Done()

		abort(errUserAbort)

		assert.ErrorIs(t, context.Cause(ctx), dispatch.ErrRequestTimeout)
	})

	t.Run("extra source cancels", func(t *testing.T) {
		t.Parallel()

		extra, abort := context.WithCancelCause(context.Background())

		ctx, cancelFn := cancel.Compose(context.Background(), 10*time.Second, extra)
		defer cancelFn()

		abort(errUserAbort)

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("extra source did not propagate")
		}

		assert.ErrorIs(t, context.Cause(ctx), errUserAbort)
	})

	t.Run("zero timeout disables timeout source", func(t *testing.T) {
		t.Parallel()

		ctx, cancelFn := cancel.Compose(context.Background(), 0)

		_, hasDeadline := ctx.Deadline()
		assert.False(t, hasDeadline)
		require.NoError(t, ctx.Err())

		cancelFn()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("nil caller context", func(t *testing.T) {
		t.Parallel()

		//nolint:staticcheck // nil context is accepted on purpose
		ctx, cancelFn := cancel.Compose(nil, time.Second)
		defer cancelFn()

		require.NoError(t, ctx.Err())
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("first source wins", func(t *testing.T) {
		t.Parallel()

		first, abortFirst := context.WithCancelCause(context.Background())
		second, abortSecond := context.WithCancelCause(context.Background())
		errFirst := errors.New("first")
		errSecond := errors.New("second")

		merged, release := cancel.Merge(context.Background(), first, second)
		defer release()

		abortFirst(errFirst)
		<-merged.Done()
		abortSecond(errSecond)

		assert.ErrorIs(t, context.Cause(merged), errFirst)
	})

	t.Run("release detaches sources", func(t *testing.T) {
		t.Parallel()

		source, abort := context.WithCancelCause(context.Background())

		merged, release := cancel.Merge(context.Background(), source)
		release()
		abort(errUserAbort)

		require.Error(t, merged.Err())
		assert.NotErrorIs(t, context.Cause(merged), errUserAbort)
	})

	t.Run("nil sources are skipped", func(t *testing.T) {
		t.Parallel()

		merged, release := cancel.Merge(context.Background(), nil)
		defer release()

		assert.NoError(t, merged.Err())
	})
}

func TestCause(t *testing.T) {
	t.Parallel()

	assert.NoError(t, cancel.Cause(context.Background()))

	ctx, abort := context.WithCancelCause(context.Background())
	abort(errUserAbort)
	assert.ErrorIs(t, cancel.Cause(ctx), errUserAbort)
}
