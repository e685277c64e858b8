// Package cancel composes the cancellation sources of a single request into
// one context.
package cancel

import (
	"context"
	"time"

	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// Compose returns a context that is canceled as soon as ctx is done, the
// timeout elapses, or any of extra is done. The first source to fire decides
// the cause reported by context.Cause; the timeout reports
// dispatch.ErrRequestTimeout. A non-positive timeout disables the timeout
// source.
//
// If ctx or any extra source is already done, the returned context is done
// before Compose returns.
func Compose(ctx context.Context, timeout time.Duration, extra ...context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	parent := ctx
	release := func() {}

	if len(extra) > 0 {
		parent, release = Merge(ctx, extra...)
	}

	if timeout <= 0 {
		merged, cancel := context.WithCancel(parent)

		return merged, func() {
			cancel()
			release()
		}
	}

	timed, cancel := context.WithTimeoutCause(parent, timeout, dispatch.ErrRequestTimeout)

	return timed, func() {
		cancel()
		release()
	}
}

// Merge returns a child of parent that is also canceled when any source is
// done, carrying that source's cause. Sources that fire after the first are
// no-ops. The returned CancelFunc detaches from every source.
func Merge(parent context.Context, sources ...context.Context) (context.Context, context.CancelFunc) {
	merged, cancel := context.WithCancelCause(parent)
	stops := make([]func() bool, 0, len(sources))

	for _, source := range sources {
		if source == nil {
			continue
		}

		if source.Err() != nil {
			cancel(context.Cause(source))

			break
		}

		stops = append(stops, context.AfterFunc(source, func() {
			cancel(context.Cause(source))
		}))
	}

	return merged, func() {
		for _, stop := range stops {
			stop()
		}

		cancel(context.Canceled)
	}
}

// Cause returns the reason ctx was canceled, or nil if it is still live.
func Cause(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}

	return context.Cause(ctx)
}
