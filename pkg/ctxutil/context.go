// Package ctxutil provides contexts carrying their own cancel function.
package ctxutil

import (
	"context"
	"time"
)

type key string

var cancelkey = key("cancel")

// CancelContext returns a context which can be cancelled by
// everybody having access to it by calling Cancel.
func CancelContext(ctx context.Context) context.Context {
	return cancelContext(context.WithCancel(ctx))
}

// TimeoutContext is CancelContext with a timeout.
func TimeoutContext(ctx context.Context, duration time.Duration) context.Context {
	return cancelContext(context.WithTimeout(ctx, duration))
}

func cancelContext(ctx context.Context, cancel context.CancelFunc) context.Context {
	return context.WithValue(ctx, cancelkey, cancel)
}

// Cancel cancels a context created by CancelContext or TimeoutContext.
// It is a noop for other contexts.
func Cancel(ctx context.Context) {
	if c, ok := ctx.Value(cancelkey).(context.CancelFunc); ok {
		c()
	}
}
